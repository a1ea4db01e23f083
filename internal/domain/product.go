package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a point-of-sale item (minibar, kiosk, services).
// Price may be negative for predefined adjustments.
type Product struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
