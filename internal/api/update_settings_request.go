package api

// UpdateSettingsRequest 的布林欄位用指標區分「未帶」與 false，
// 未帶時由 handler 補預設值 (dark_mode=false, notifications=true)
// swagger:model api.UpdateSettingsRequest
type UpdateSettingsRequest struct {
	Username      string `json:"username" validate:"required" example:"alice"`
	DarkMode      *bool  `json:"dark_mode" validate:"omitempty" example:"false"`
	Notifications *bool  `json:"notifications" validate:"omitempty" example:"true"`
}
