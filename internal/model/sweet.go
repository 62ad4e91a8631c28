// File: internal/model/sweet.go
package model

import "time"

// Valid sweet categories. The sweets table carries a matching CHECK constraint.
const (
	CategoryChocolate = "chocolate"
	CategoryCandy     = "candy"
	CategoryDessert   = "dessert"
	CategoryBiscuit   = "biscuit"
	CategoryOther     = "other"
)

type Sweet struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Price       float64   `db:"price" json:"price"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
