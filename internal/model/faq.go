// File: internal/model/faq.go
package model

import "time"

// FAQ 為知識庫文章，API 僅提供讀取
type FAQ struct {
	ID        string     `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Author    string     `db:"author" json:"author"`
	Content   string     `db:"content" json:"content"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}
