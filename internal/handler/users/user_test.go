package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketdesk/internal/database"
	"ticketdesk/internal/model"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newUserCtx(e *echo.Echo, username string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/user/"+username, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/:username")
	c.SetParamNames("username")
	c.SetParamValues(username)
	return c, rec
}

func restore() {
	getUserByUsername = store.GetUserByUsername
}

func TestGetUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newUserCtx(e, "ghost")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("down")
		}
		ctx, rec := newUserCtx(e, "alice")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(_ context.Context, _ database.DB, username string) (*model.User, error) {
			require.Equal(t, "alice", username)
			return &model.User{Username: "alice", Role: "staff", PasswordHash: "secret"}, nil
		}
		ctx, rec := newUserCtx(e, "alice")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"role\":\"staff\"")
		// 密碼哈希不得出現在回應中
		require.NotContains(t, rec.Body.String(), "secret")
	})
}
