// File: internal/service/throttle.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketdesk/internal/cache"

	"github.com/redis/go-redis/v9"
)

const (
	loginFailLimit  = 10
	loginFailWindow = 15 * time.Minute
)

// LoginThrottle 以 Redis 計數器限制同一帳號的連續登入失敗次數
// 計數器在第一次失敗時設定 TTL，窗口過後自動歸零
type LoginThrottle struct {
	cache cache.Cache
}

func NewLoginThrottle(c cache.Cache) *LoginThrottle {
	return &LoginThrottle{cache: c}
}

func failKey(username string) string {
	return fmt.Sprintf("login_fail:%s", username)
}

// Blocked 回報該帳號是否已超過失敗上限
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.cache.Get(ctx, failKey(username)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("Blocked: %w", err)
	}
	return n >= loginFailLimit, nil
}

// RecordFailure 累計一次登入失敗，首次失敗時啟動 TTL 窗口
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := failKey(username)
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("RecordFailure: %w", err)
	}
	if n == 1 {
		if err := t.cache.Expire(ctx, key, loginFailWindow).Err(); err != nil {
			return fmt.Errorf("RecordFailure: %w", err)
		}
	}
	return nil
}

// Reset 登入成功後清除失敗計數
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.cache.Del(ctx, failKey(username)).Err(); err != nil {
		return fmt.Errorf("Reset: %w", err)
	}
	return nil
}
