package api

// swagger:model api.SettingsResponse
type SettingsResponse struct {
	Username      string `json:"username" example:"alice"`
	DarkMode      bool   `json:"dark_mode" example:"false"`
	Notifications bool   `json:"notifications" example:"true"`
}
