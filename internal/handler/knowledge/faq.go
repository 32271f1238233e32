package knowledge

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
	listFAQs   = store.ListFAQs
	getFAQByID = store.GetFAQByID
)

func toResponse(f *model.FAQ) api.FAQResponse {
	return api.FAQResponse{
		ID:        f.ID,
		Title:     f.Title,
		Author:    f.Author,
		Content:   f.Content,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// @Summary     List all FAQs
// @Description 列出全部知識庫文章，完全沒有資料時回 404
// @Tags        knowledge
// @Produce     json
// @Success     200 {array} api.FAQResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /knowledge/faq [get]
func ListFAQsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		faqs, err := listFAQs(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list FAQs"})
		}
		if len(faqs) == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no FAQs found"})
		}
		out := make([]api.FAQResponse, 0, len(faqs))
		for i := range faqs {
			out = append(out, toResponse(&faqs[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get a FAQ by ID
// @Description 以字串鍵查詢單篇知識庫文章
// @Tags        knowledge
// @Produce     json
// @Param       faq_id path string true "文章 ID"
// @Success     200 {object} api.FAQResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /knowledge/faq/{faq_id} [get]
func GetFAQHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		faq, err := getFAQByID(c.Request().Context(), db, c.Param("faq_id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "FAQ not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch FAQ"})
		}
		return c.JSON(http.StatusOK, toResponse(faq))
	}
}
