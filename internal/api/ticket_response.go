package api

import "time"

// swagger:model api.TicketResponse
type TicketResponse struct {
	ID            int       `json:"id" example:"1"`
	Title         string    `json:"title" example:"Printer on 3F is down"`
	Description   string    `json:"description" example:"Paper jam error that will not clear"`
	Status        string    `json:"status" example:"open"`
	AssignedTo    *string   `json:"assigned_to" example:"bob"`
	Severity      *string   `json:"severity" example:"Low"`
	CreatedBy     *string   `json:"created_by" example:"alice"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
