package users

import (
	"errors"
	"net/http"

	"ticketdesk/internal/api"
	"ticketdesk/internal/database"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
)

var getUserByUsername = store.GetUserByUsername

// @Summary     Get a user by username
// @Description 透過 username 查詢並回傳使用者公開資訊
// @Tags        users
// @Produce     json
// @Param       username path string true "使用者名稱"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{username} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := getUserByUsername(c.Request().Context(), db, c.Param("username"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch user"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			Username: user.Username,
			Role:     user.Role,
		})
	}
}
