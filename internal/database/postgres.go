package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Config 為資料庫連線設定，於啟動時讀取一次
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// URL 組出 pgx 連線字串，密碼做 URL escape
func (c Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
	)
}

// pgxpoolNewWithConfig 用來建立連線池，測試可覆寫此變數
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// NewPool 依 Config 建立 pgxpool 連線池
// 連線取得與查詢以 context 與 pool 層級的 timeout 限制，不會無限期阻塞 handler
func NewPool(ctx context.Context, cfg Config) (DB, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, err
	}
	pc.MaxConnLifetime = time.Hour
	pc.ConnConfig.ConnectTimeout = 5 * time.Second
	pool, err := pgxpoolNewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
