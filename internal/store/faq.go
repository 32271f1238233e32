package store

import (
	"context"
	"errors"
	"fmt"

	"ticketdesk/internal/database"
	"ticketdesk/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListFAQs(ctx context.Context, db database.DB) ([]model.FAQ, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, author, content, created_at, updated_at
		 FROM knowledge_articles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFAQs: %w", err)
	}
	defer rows.Close()

	faqs := []model.FAQ{}
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(
			&f.ID,
			&f.Title,
			&f.Author,
			&f.Content,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListFAQs: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFAQs: %w", err)
	}
	return faqs, nil
}

func GetFAQByID(ctx context.Context, db database.DB, id string) (*model.FAQ, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, author, content, created_at, updated_at
		 FROM knowledge_articles WHERE id = $1`,
		id,
	)
	f := &model.FAQ{}
	if err := row.Scan(
		&f.ID,
		&f.Title,
		&f.Author,
		&f.Content,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetFAQByID: %w", err)
	}
	return f, nil
}
