// File: internal/repository/sweet.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sweetshop/internal/database"
	"sweetshop/internal/model"

	"github.com/jackc/pgx/v5"
)

const sweetColumns = `id, name, category, price, quantity, description, created_at, updated_at`

// SweetFilter 搜尋條件，零值欄位不加入查詢
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func CreateSweet(ctx context.Context, db database.DB, s *model.Sweet) (*model.Sweet, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO sweets (name, category, price, quantity, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Name,
		s.Category,
		s.Price,
		s.Quantity,
		s.Description,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSweet: %w", err)
	}
	return s, nil
}

func GetSweetByID(ctx context.Context, db database.DB, id int) (*model.Sweet, error) {
	row := db.QueryRow(ctx,
		`SELECT `+sweetColumns+` FROM sweets WHERE id = $1`,
		id,
	)
	s := &model.Sweet{}
	if err := scanSweet(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetSweetByID: %w", err)
	}
	return s, nil
}

// ListSweets returns the whole catalog, newest first.
func ListSweets(ctx context.Context, db database.DB) ([]model.Sweet, error) {
	rows, err := db.Query(ctx,
		`SELECT `+sweetColumns+` FROM sweets ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSweets: %w", err)
	}
	defer rows.Close()
	return collectSweets(rows)
}

// SearchSweets builds a conjunctive filter; absent fields impose no
// constraint. Name matches as a case-insensitive substring.
func SearchSweets(ctx context.Context, db database.DB, f SweetFilter) ([]model.Sweet, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Name != "" {
		conds = append(conds, "name ILIKE "+arg("%"+f.Name+"%"))
	}
	if f.Category != "" {
		conds = append(conds, "category = "+arg(f.Category))
	}
	if f.MinPrice != nil {
		conds = append(conds, "price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "price <= "+arg(*f.MaxPrice))
	}

	query := `SELECT ` + sweetColumns + ` FROM sweets`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchSweets: %w", err)
	}
	defer rows.Close()
	return collectSweets(rows)
}

// UpdateSweet writes every field of s and refreshes updated_at.
func UpdateSweet(ctx context.Context, db database.DB, s *model.Sweet) (*model.Sweet, error) {
	row := db.QueryRow(ctx,
		`UPDATE sweets SET
		     name = $1,
		     category = $2,
		     price = $3,
		     quantity = $4,
		     description = $5,
		     updated_at = now()
		 WHERE id = $6
		 RETURNING `+sweetColumns,
		s.Name,
		s.Category,
		s.Price,
		s.Quantity,
		s.Description,
		s.ID,
	)
	if err := scanSweet(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateSweet: %w", err)
	}
	return s, nil
}

func DeleteSweet(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteSweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PurchaseSweet decrements quantity by qty as a single conditional update,
// so stock can never go negative under concurrent purchases. Requesting
// exactly the current quantity succeeds and empties the stock.
func PurchaseSweet(ctx context.Context, db database.DB, id, qty int) (*model.Sweet, error) {
	row := db.QueryRow(ctx,
		`UPDATE sweets SET
		     quantity = quantity - $2,
		     updated_at = now()
		 WHERE id = $1 AND quantity >= $2
		 RETURNING `+sweetColumns,
		id, qty,
	)
	s := &model.Sweet{}
	if err := scanSweet(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row updated: either the sweet is gone or stock was short.
			if _, gerr := GetSweetByID(ctx, db, id); gerr != nil {
				return nil, gerr
			}
			return nil, ErrInsufficientStock
		}
		return nil, fmt.Errorf("PurchaseSweet: %w", err)
	}
	return s, nil
}

// RestockSweet increments quantity by qty. The caller validates qty > 0.
func RestockSweet(ctx context.Context, db database.DB, id, qty int) (*model.Sweet, error) {
	row := db.QueryRow(ctx,
		`UPDATE sweets SET
		     quantity = quantity + $2,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+sweetColumns,
		id, qty,
	)
	s := &model.Sweet{}
	if err := scanSweet(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("RestockSweet: %w", err)
	}
	return s, nil
}

func scanSweet(row pgx.Row, s *model.Sweet) error {
	return row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Price,
		&s.Quantity,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

func collectSweets(rows pgx.Rows) ([]model.Sweet, error) {
	sweets := []model.Sweet{}
	for rows.Next() {
		var s model.Sweet
		if err := scanSweet(rows, &s); err != nil {
			return nil, fmt.Errorf("collectSweets: %w", err)
		}
		sweets = append(sweets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collectSweets: %w", err)
	}
	return sweets, nil
}
