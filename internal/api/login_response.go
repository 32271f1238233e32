package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Success     bool   `json:"success" example:"true"`
	Username    string `json:"username" example:"alice"`
	Role        string `json:"role" example:"user"`
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
