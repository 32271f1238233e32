package tickets

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ticketdesk/internal/api"
	"ticketdesk/internal/database"
	"ticketdesk/internal/model"
	"ticketdesk/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createTicket        = store.CreateTicket
	getTicketByID       = store.GetTicketByID
	listTickets         = store.ListTickets
	listTicketsByStatus = store.ListTicketsByStatus
	updateTicket        = store.UpdateTicket
	assignTicket        = store.AssignTicket
	deleteTicket        = store.DeleteTicket
)

func toResponse(t *model.Ticket) api.TicketResponse {
	return api.TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		AssignedTo:    t.AssignedTo,
		Severity:      t.Severity,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// @Summary     Create a new ticket
// @Description 建立新工單，status 未帶時預設 open，回傳 store 產生的完整紀錄
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       ticket body api.CreateTicketRequest true "工單內容"
// @Success     201 {object} api.TicketResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/create [post]
func CreateTicketHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTicketRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if req.Status == "" {
			req.Status = model.StatusOpen
		}

		ticket, err := createTicket(c.Request().Context(), db, &model.Ticket{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			AssignedTo:  req.AssignedTo,
			Severity:    req.Severity,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create ticket"})
		}

		return c.JSON(http.StatusCreated, toResponse(ticket))
	}
}

// @Summary     Get a ticket by ID
// @Description 透過 ID 查詢並回傳工單詳細資料
// @Tags        tickets
// @Produce     json
// @Param       ticket_id path int true "工單 ID"
// @Success     200 {object} api.TicketResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/{ticket_id} [get]
func GetTicketHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("ticket_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ticket ID"})
		}
		ticket, err := getTicketByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ticket not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch ticket"})
		}
		return c.JSON(http.StatusOK, toResponse(ticket))
	}
}

// @Summary     List tickets
// @Description 列出所有工單，?user= 可依 created_by 過濾，無資料時回傳空陣列
// @Tags        tickets
// @Produce     json
// @Param       user query string false "依建立者過濾"
// @Success     200 {array} api.TicketResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets [get]
func ListTicketsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listTickets(c.Request().Context(), db, c.QueryParam("user"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list tickets"})
		}
		return c.JSON(http.StatusOK, toResponseList(list))
	}
}

// @Summary     List in-progress tickets
// @Description 列出 status 為 In-Process 的工單
// @Tags        tickets
// @Produce     json
// @Success     200 {array} api.TicketResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/in-progress [get]
func ListInProgressHandler(db database.DB) echo.HandlerFunc {
	return listByStatusHandler(db, model.StatusInProcess)
}

// @Summary     List resolved tickets
// @Description 列出 status 為 Resolved 的工單 (歷史紀錄)
// @Tags        tickets
// @Produce     json
// @Success     200 {array} api.TicketResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/history [get]
func ListHistoryHandler(db database.DB) echo.HandlerFunc {
	return listByStatusHandler(db, model.StatusResolved)
}

func listByStatusHandler(db database.DB, status string) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listTicketsByStatus(c.Request().Context(), db, status)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list tickets"})
		}
		return c.JSON(http.StatusOK, toResponseList(list))
	}
}

// @Summary     Update a ticket by ID
// @Description 更新工單的可變欄位並推進 last_updated_at
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       ticket_id path int true "工單 ID"
// @Param       ticket body api.UpdateTicketRequest true "更新內容"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/{ticket_id} [put]
func UpdateTicketHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("ticket_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ticket ID"})
		}

		var req api.UpdateTicketRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err = updateTicket(c.Request().Context(), db, &model.Ticket{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			AssignedTo:  req.AssignedTo,
			Severity:    req.Severity,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ticket not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update ticket"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Ticket #%d updated successfully", id)})
	}
}

// @Summary     Assign a ticket (staff)
// @Description 指派工單處理人員並變更 status，僅限 staff 角色
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       ticket_id path int true "工單 ID"
// @Param       assignment body api.AssignTicketRequest true "指派內容"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/tickets/{ticket_id} [put]
func AssignTicketHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("ticket_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ticket ID"})
		}

		var req api.AssignTicketRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := assignTicket(c.Request().Context(), db, id, req.Status, req.AssignedTo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ticket not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to assign ticket"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Ticket updated successfully"})
	}
}

// @Summary     Delete a ticket by ID
// @Description 刪除工單 (hard delete)
// @Tags        tickets
// @Produce     json
// @Param       ticket_id path int true "工單 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tickets/{ticket_id} [delete]
func DeleteTicketHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("ticket_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ticket ID"})
		}
		if err := deleteTicket(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ticket not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete ticket"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Ticket #%d deleted successfully", id)})
	}
}

func toResponseList(list []model.Ticket) []api.TicketResponse {
	out := make([]api.TicketResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}
