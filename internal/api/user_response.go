package api

// swagger:model api.UserResponse
type UserResponse struct {
	Username string `json:"username" example:"alice"`
	Role     string `json:"role" example:"user"`
}
