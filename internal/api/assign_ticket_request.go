package api

// swagger:model api.AssignTicketRequest
type AssignTicketRequest struct {
	Status     string  `json:"status" validate:"required,oneof=open In-Process Resolved" example:"In-Process"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty" example:"bob"`
}
