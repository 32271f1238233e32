package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketdesk/internal/model"
	"ticketdesk/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(t *testing.T, authorization string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("缺少 Authorization 標頭", func(t *testing.T) {
		err := RequireAuth(okHandler)(newCtx(t, ""))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("格式錯誤的標頭", func(t *testing.T) {
		err := RequireAuth(okHandler)(newCtx(t, "Basic abc123"))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("無效令牌", func(t *testing.T) {
		err := RequireAuth(okHandler)(newCtx(t, "Bearer not-a-token"))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("有效令牌放行並寫入 context", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{Username: "alice", Role: "staff"}, time.Hour)
		require.NoError(t, err)

		ctx := newCtx(t, "Bearer "+token)
		called := false
		err = RequireAuth(func(c echo.Context) error {
			called = true
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			require.Equal(t, "alice", claims.Username)
			return c.NoContent(http.StatusOK)
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
	})
}

func TestRequireStaff(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("一般使用者遭拒", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{Username: "bob", Role: model.RoleUser}, time.Hour)
		require.NoError(t, err)

		err = RequireStaff(okHandler)(newCtx(t, "Bearer "+token))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("工作人員放行", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{Username: "carol", Role: "staff"}, time.Hour)
		require.NoError(t, err)

		require.NoError(t, RequireStaff(okHandler)(newCtx(t, "Bearer "+token)))
	})

	t.Run("未附令牌遭拒", func(t *testing.T) {
		err := RequireStaff(okHandler)(newCtx(t, ""))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
