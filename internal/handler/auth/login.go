// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"ticketdesk/internal/api"
	"ticketdesk/internal/cache"
	"ticketdesk/internal/database"
	"ticketdesk/internal/model"
	"ticketdesk/internal/service"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByUsername = store.GetUserByUsername
	createUser        = store.CreateUser
	authenticateUser  = service.AuthenticateUser
	dummyCompare      = service.DummyCompare
	hashPassword      = service.HashPassword
	issueAccessToken  = service.IssueAccessToken
)

const accessTokenTTL = 24 * time.Hour

// @Summary     Authenticate a user
// @Description 使用 Username 與 Password 驗證，成功回傳角色與存取令牌
// @Description 未知帳號與錯誤密碼回覆一致，連續失敗過多次回 429
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	throttle := service.NewLoginThrottle(rdb)
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()

		blocked, err := throttle.Blocked(ctx, req.Username)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "login temporarily unavailable"})
		}
		if blocked {
			return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "too many failed attempts, try again later"})
		}

		user, err := getUserByUsername(ctx, db, req.Username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// 仍做一次哈希比對，避免以回應時間探測帳號是否存在
				dummyCompare(req.Password)
				_ = throttle.RecordFailure(ctx, req.Username)
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid username or password"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to authenticate"})
		}

		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			_ = throttle.RecordFailure(ctx, req.Username)
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid username or password"})
		}

		_ = throttle.Reset(ctx, req.Username)

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Success:     true,
			Username:    user.Username,
			Role:        user.Role,
			AccessToken: token,
		})
	}
}

// @Summary     Register a new user
// @Description 建立新帳號，密碼以 bcrypt 哈希後儲存，角色預設 user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       account body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already taken"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			Username: user.Username,
			Role:     user.Role,
		})
	}
}
