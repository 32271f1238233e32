// File: internal/model/settings.go
package model

type UserSettings struct {
	Username      string `db:"username" json:"username"`
	DarkMode      bool   `db:"dark_mode" json:"dark_mode"`
	Notifications bool   `db:"notifications" json:"notifications"`
}
