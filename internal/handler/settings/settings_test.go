package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticketdesk/internal/database"
	"ticketdesk/internal/model"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newPutCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	upsertUserSettings = store.UpsertUserSettings
	getUserSettings = store.GetUserSettings
}

func TestUpdateSettingsHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newPutCtx(e, "{")
		require.NoError(t, UpdateSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("username is required")}
		ctx, rec := newPutCtx(e, `{"dark_mode":true}`)
		require.NoError(t, UpdateSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		upsertUserSettings = func(context.Context, database.DB, *model.UserSettings) error {
			return errors.New("down")
		}
		ctx, rec := newPutCtx(e, `{"username":"alice"}`)
		require.NoError(t, UpdateSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("defaults applied when fields omitted", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var got *model.UserSettings
		upsertUserSettings = func(_ context.Context, _ database.DB, s *model.UserSettings) error {
			got = s
			return nil
		}
		ctx, rec := newPutCtx(e, `{"username":"alice"}`)
		require.NoError(t, UpdateSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.False(t, got.DarkMode)
		require.True(t, got.Notifications)
		require.Contains(t, rec.Body.String(), "Settings updated")
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var got *model.UserSettings
		upsertUserSettings = func(_ context.Context, _ database.DB, s *model.UserSettings) error {
			got = s
			return nil
		}
		ctx, rec := newPutCtx(e, `{"username":"alice","dark_mode":true,"notifications":false}`)
		require.NoError(t, UpdateSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, got.DarkMode)
		require.False(t, got.Notifications)
	})
}

func TestGetSettingsHandler(t *testing.T) {
	e := echo.New()

	newGetCtx := func(username string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/settings/"+username, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/settings/:username")
		c.SetParamNames("username")
		c.SetParamValues(username)
		return c, rec
	}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserSettings = func(context.Context, database.DB, string) (*model.UserSettings, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newGetCtx("ghost")
		require.NoError(t, GetSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserSettings = func(context.Context, database.DB, string) (*model.UserSettings, error) {
			return nil, errors.New("down")
		}
		ctx, rec := newGetCtx("alice")
		require.NoError(t, GetSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserSettings = func(_ context.Context, _ database.DB, username string) (*model.UserSettings, error) {
			require.Equal(t, "alice", username)
			return &model.UserSettings{Username: "alice", DarkMode: true, Notifications: true}, nil
		}
		ctx, rec := newGetCtx("alice")
		require.NoError(t, GetSettingsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"dark_mode\":true")
	})
}
