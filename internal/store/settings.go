package store

import (
	"context"
	"errors"
	"fmt"

	"ticketdesk/internal/database"
	"ticketdesk/internal/model"

	"github.com/jackc/pgx/v5"
)

// UpsertUserSettings 以 username 為鍵做 insert-or-update，整組欄位一次寫入
func UpsertUserSettings(ctx context.Context, db database.DB, s *model.UserSettings) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_settings (username, dark_mode, notifications)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE
		 SET dark_mode = EXCLUDED.dark_mode, notifications = EXCLUDED.notifications`,
		s.Username,
		s.DarkMode,
		s.Notifications,
	)
	if err != nil {
		return fmt.Errorf("UpsertUserSettings: %w", err)
	}
	return nil
}

func GetUserSettings(ctx context.Context, db database.DB, username string) (*model.UserSettings, error) {
	row := db.QueryRow(ctx,
		`SELECT username, dark_mode, notifications
		 FROM user_settings WHERE username = $1`,
		username,
	)
	s := &model.UserSettings{}
	if err := row.Scan(
		&s.Username,
		&s.DarkMode,
		&s.Notifications,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserSettings: %w", err)
	}
	return s, nil
}
