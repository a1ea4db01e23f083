package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// ConsumptionOrigin tells whether a folio row came from the product catalog or was typed in
type ConsumptionOrigin string

const (
	OriginProduct ConsumptionOrigin = "PRODUCTO"
	OriginManual  ConsumptionOrigin = "MANUAL"
)

// Consumption is a charge line on a reservation folio.
// UnitPrice is a snapshot taken when the line was added; negative values are
// discounts or legacy payment rows.
type Consumption struct {
	ID            int64
	ReservationID int64
	ProductID     *int64
	Concept       string
	Origin        ConsumptionOrigin
	Quantity      int
	UnitPrice     decimal.Decimal
	ConsumedOn    types.Date

	CreatedAt time.Time
}

// Subtotal returns quantity * unit price, sign preserved
func (c *Consumption) Subtotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
