// File: internal/model/ticket.go
package model

import "time"

// Ticket 狀態列舉，僅驗證成員資格，不做狀態轉移檢查
const (
	StatusOpen      = "open"
	StatusInProcess = "In-Process"
	StatusResolved  = "Resolved"
)

type Ticket struct {
	ID            int       `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Status        string    `db:"status" json:"status"`
	AssignedTo    *string   `db:"assigned_to" json:"assigned_to"`
	Severity      *string   `db:"severity" json:"severity"`
	CreatedBy     *string   `db:"created_by" json:"created_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"last_updated_at"`
}
