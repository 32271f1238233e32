package store

import (
	"context"
	"errors"
	"fmt"

	"ticketdesk/internal/database"
	"ticketdesk/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateTicket 新增 ticket 並以 RETURNING 取回 store 產生的欄位，
// 同一語句完成寫入與讀回，保證回傳的是 canonical 狀態
func CreateTicket(ctx context.Context, db database.DB, t *model.Ticket) (*model.Ticket, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tickets (title, description, status, assigned_to, severity, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, last_updated_at`,
		t.Title,
		t.Description,
		t.Status,
		t.AssignedTo,
		t.Severity,
		t.CreatedBy,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.LastUpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTicket: %w", err)
	}
	return t, nil
}

func GetTicketByID(ctx context.Context, db database.DB, id int) (*model.Ticket, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, status, assigned_to, severity, created_by, created_at, last_updated_at
		 FROM tickets WHERE id = $1`,
		id,
	)
	t := &model.Ticket{}
	if err := scanTicket(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetTicketByID: %w", err)
	}
	return t, nil
}

// ListTickets 列出所有 ticket，createdBy 非空時以 created_by 過濾
func ListTickets(ctx context.Context, db database.DB, createdBy string) ([]model.Ticket, error) {
	query := `SELECT id, title, description, status, assigned_to, severity, created_by, created_at, last_updated_at
		 FROM tickets ORDER BY id`
	args := []any{}
	if createdBy != "" {
		query = `SELECT id, title, description, status, assigned_to, severity, created_by, created_at, last_updated_at
		 FROM tickets WHERE created_by = $1 ORDER BY id`
		args = append(args, createdBy)
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListTickets: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

func ListTicketsByStatus(ctx context.Context, db database.DB, status string) ([]model.Ticket, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, status, assigned_to, severity, created_by, created_at, last_updated_at
		 FROM tickets WHERE status = $1 ORDER BY id`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTicketsByStatus: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

// UpdateTicket 更新可變欄位並把 last_updated_at 推進到 now()
// NotFound 由 UPDATE 的 affected-row count 判斷，單一 round trip
func UpdateTicket(ctx context.Context, db database.DB, t *model.Ticket) error {
	tag, err := db.Exec(ctx,
		`UPDATE tickets
		 SET title = $1, description = $2, status = $3, assigned_to = $4, severity = $5, last_updated_at = now()
		 WHERE id = $6`,
		t.Title,
		t.Description,
		t.Status,
		t.AssignedTo,
		t.Severity,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTicket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignTicket 僅更新 status 與 assigned_to，供管理端指派使用
func AssignTicket(ctx context.Context, db database.DB, id int, status string, assignedTo *string) error {
	tag, err := db.Exec(ctx,
		`UPDATE tickets
		 SET status = $1, assigned_to = $2, last_updated_at = now()
		 WHERE id = $3`,
		status,
		assignedTo,
		id,
	)
	if err != nil {
		return fmt.Errorf("AssignTicket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTicket(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tickets WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteTicket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTicket(row pgx.Row, t *model.Ticket) error {
	return row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.AssignedTo,
		&t.Severity,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
}

func collectTickets(rows pgx.Rows) ([]model.Ticket, error) {
	tickets := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, fmt.Errorf("collectTickets: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collectTickets: %w", err)
	}
	return tickets, nil
}
