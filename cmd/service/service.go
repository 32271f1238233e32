package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"ticketdesk/internal/cache"
	"ticketdesk/internal/database"
	"ticketdesk/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "ticketdesk/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPool         = database.NewPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run() error {
	cfg := database.Config{
		Host:     envDefault("DB_HOST", "localhost"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
	if cfg.User == "" {
		return fmt.Errorf("環境變數 DB_USER 未設定")
	}
	if cfg.Password == "" {
		return fmt.Errorf("環境變數 DB_PASSWORD 未設定")
	}
	if cfg.Name == "" {
		return fmt.Errorf("環境變數 DB_NAME 未設定")
	}
	port, err := strconv.Atoi(envDefault("DB_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("無效的 DB_PORT: %v", err)
	}
	cfg.Port = port

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisIndex, err := strconv.Atoi(envDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	db, err := newPool(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.URL()); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}
