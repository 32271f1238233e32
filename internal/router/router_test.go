package router

import (
	"net/http"
	"testing"

	"ticketdesk/internal/cache"
	"ticketdesk/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRegistersRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{})

	want := map[string]string{
		http.MethodGet + " /ping":                     "",
		http.MethodPost + " /auth":                    "",
		http.MethodPost + " /auth/register":           "",
		http.MethodGet + " /user/:username":           "",
		http.MethodPost + " /tickets/create":          "",
		http.MethodGet + " /tickets":                  "",
		http.MethodGet + " /tickets/in-progress":      "",
		http.MethodGet + " /tickets/history":          "",
		http.MethodGet + " /tickets/:ticket_id":       "",
		http.MethodPut + " /tickets/:ticket_id":       "",
		http.MethodDelete + " /tickets/:ticket_id":    "",
		http.MethodPut + " /admin/tickets/:ticket_id": "",
		http.MethodGet + " /knowledge/faq":            "",
		http.MethodGet + " /knowledge/faq/:faq_id":    "",
		http.MethodPut + " /settings":                 "",
		http.MethodGet + " /settings/:username":       "",
	}

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	for route := range want {
		require.True(t, got[route], "missing route %s", route)
	}
}
