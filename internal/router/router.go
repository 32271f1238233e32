// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"ticketdesk/internal/cache"
	"ticketdesk/internal/database"
	"ticketdesk/internal/handler"
	"ticketdesk/internal/handler/auth"
	"ticketdesk/internal/handler/knowledge"
	"ticketdesk/internal/handler/settings"
	"ticketdesk/internal/handler/tickets"
	"ticketdesk/internal/handler/users"
	"ticketdesk/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	// 健康檢查
	e.GET("/ping", handler.PingHandler(db))

	// 登入與註冊
	e.POST("/auth", auth.LoginHandler(db, rdb))
	e.POST("/auth/register", auth.RegisterHandler(db))

	// 使用者公開資訊
	e.GET("/user/:username", users.GetUserHandler(db))

	// 工單 CRUD。literal 路徑先註冊，避免被 :ticket_id 吃掉
	t := e.Group("/tickets")
	t.POST("/create", tickets.CreateTicketHandler(db))
	t.GET("", tickets.ListTicketsHandler(db))
	t.GET("/in-progress", tickets.ListInProgressHandler(db))
	t.GET("/history", tickets.ListHistoryHandler(db))
	t.GET("/:ticket_id", tickets.GetTicketHandler(db))
	t.PUT("/:ticket_id", tickets.UpdateTicketHandler(db))
	t.DELETE("/:ticket_id", tickets.DeleteTicketHandler(db))

	// 管理端指派，僅限 staff
	e.PUT("/admin/tickets/:ticket_id", tickets.AssignTicketHandler(db), middleware.RequireStaff)

	// 知識庫 (唯讀)
	k := e.Group("/knowledge")
	k.GET("/faq", knowledge.ListFAQsHandler(db))
	k.GET("/faq/:faq_id", knowledge.GetFAQHandler(db))

	// 使用者偏好設定
	e.PUT("/settings", settings.UpdateSettingsHandler(db))
	e.GET("/settings/:username", settings.GetSettingsHandler(db))
}
