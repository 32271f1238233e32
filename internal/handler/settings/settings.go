package settings

import (
	"errors"
	"net/http"

	"ticketdesk/internal/api"
	"ticketdesk/internal/database"
	"ticketdesk/internal/model"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	upsertUserSettings = store.UpsertUserSettings
	getUserSettings    = store.GetUserSettings
)

// @Summary     Upsert user settings
// @Description 以 username 為鍵 insert-or-update 使用者偏好設定
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       settings body api.UpdateSettingsRequest true "偏好設定"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /settings [put]
func UpdateSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		s := &model.UserSettings{
			Username:      req.Username,
			DarkMode:      false,
			Notifications: true,
		}
		if req.DarkMode != nil {
			s.DarkMode = *req.DarkMode
		}
		if req.Notifications != nil {
			s.Notifications = *req.Notifications
		}

		if err := upsertUserSettings(c.Request().Context(), db, s); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update settings"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Settings updated"})
	}
}

// @Summary     Get user settings
// @Description 查詢使用者偏好設定，從未寫入過時回 404
// @Tags        settings
// @Produce     json
// @Param       username path string true "使用者名稱"
// @Success     200 {object} api.SettingsResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /settings/{username} [get]
func GetSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := getUserSettings(c.Request().Context(), db, c.Param("username"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "settings not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch settings"})
		}
		return c.JSON(http.StatusOK, api.SettingsResponse{
			Username:      s.Username,
			DarkMode:      s.DarkMode,
			Notifications: s.Notifications,
		})
	}
}
