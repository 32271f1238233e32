package api

// swagger:model api.CreateTicketRequest
type CreateTicketRequest struct {
	Title       string  `json:"title" validate:"required" example:"Printer on 3F is down"`
	Description string  `json:"description" validate:"required" example:"Paper jam error that will not clear"`
	Status      string  `json:"status" validate:"omitempty,oneof=open In-Process Resolved" example:"open"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty" example:"bob"`
	Severity    *string `json:"severity" validate:"omitempty" example:"Low"`
	CreatedBy   *string `json:"created_by" validate:"omitempty" example:"alice"`
}
