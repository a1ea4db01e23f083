package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was settled at the desk
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Payment is money received against a reservation folio. Amount is always positive.
type Payment struct {
	ID            int64
	ReservationID int64
	Amount        decimal.Decimal
	Method        PaymentMethod
	Note          *string
	PaidAt        time.Time
}
