package api

import "time"

// swagger:model api.FAQResponse
type FAQResponse struct {
	ID        string     `json:"id" example:"KA-0001"`
	Title     string     `json:"title" example:"How do I reset my password?"`
	Author    string     `json:"author" example:"helpdesk"`
	Content   string     `json:"content" example:"Open the settings page and ..."`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
