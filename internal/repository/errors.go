// File: internal/repository/errors.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when an identifier resolves to no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("already exists")

	// ErrInsufficientStock is returned when a purchase asks for more than
	// the current quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// uniqueViolation 判斷是否為 PostgreSQL unique constraint 錯誤 (23505)
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
