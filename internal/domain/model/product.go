package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with a stock level. Products are never removed
// physically: Deleted marks them unavailable for new orders.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
