package api

// swagger:model api.UpdateTicketRequest
type UpdateTicketRequest struct {
	Title       string  `json:"title" validate:"required" example:"Printer on 3F is down"`
	Description string  `json:"description" validate:"required" example:"Paper jam error that will not clear"`
	Status      string  `json:"status" validate:"required,oneof=open In-Process Resolved" example:"In-Process"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty" example:"bob"`
	Severity    *string `json:"severity" validate:"omitempty" example:"Low"`
}
