// File: internal/store/store.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound 表示查無資料列，handler 據此回 404 而非 500
var ErrNotFound = errors.New("not found")

// ErrDuplicate 表示唯一鍵衝突 (unique_violation)
var ErrDuplicate = errors.New("already exists")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
