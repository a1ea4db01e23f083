package domain

import "github.com/shopspring/decimal"

// FolioStatus is the payment classification of a folio
type FolioStatus string

const (
	FolioUnpaid  FolioStatus = "PENDIENTE_DE_PAGO"
	FolioPartial FolioStatus = "PARCIAL"
	FolioPaid    FolioStatus = "PAGADO"
)

// ManualItem is an ad-hoc line not persisted yet. Price may be negative.
type ManualItem struct {
	Concept   string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity * unit price, sign preserved
func (m ManualItem) Subtotal() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// FolioInput is everything the calculator needs
type FolioInput struct {
	Nights       int
	NightlyRate  decimal.Decimal
	Consumptions []*Consumption
	ManualItems  []ManualItem
	Payments     []*Payment
}

// Folio is the computed account of a reservation
type Folio struct {
	Nights      int
	NightlyRate decimal.Decimal

	RoomSubtotal         decimal.Decimal
	ConsumptionsSubtotal decimal.Decimal
	ManualSubtotal       decimal.Decimal
	GrandTotal           decimal.Decimal

	// Charges is the sum of positive rows; RowPayments the absolute sum of negative rows
	Charges           decimal.Decimal
	RowPayments       decimal.Decimal
	DedicatedPayments decimal.Decimal
	Paid              decimal.Decimal

	Due         decimal.Decimal
	Outstanding decimal.Decimal
	Status      FolioStatus
}

// CalculateFolio computes room, consumption and payment totals.
// All sums are order independent.
func CalculateFolio(in FolioInput) Folio {
	f := Folio{
		Nights:      in.Nights,
		NightlyRate: in.NightlyRate,
	}

	f.RoomSubtotal = StayPrice(in.Nights, in.NightlyRate)

	charges := decimal.Zero
	negatives := decimal.Zero

	for _, c := range in.Consumptions {
		sub := c.Subtotal()
		f.ConsumptionsSubtotal = f.ConsumptionsSubtotal.Add(sub)
		if sub.IsPositive() {
			charges = charges.Add(sub)
		} else {
			negatives = negatives.Add(sub)
		}
	}

	for _, m := range in.ManualItems {
		sub := m.Subtotal()
		f.ManualSubtotal = f.ManualSubtotal.Add(sub)
		if sub.IsPositive() {
			charges = charges.Add(sub)
		} else {
			negatives = negatives.Add(sub)
		}
	}

	for _, p := range in.Payments {
		f.DedicatedPayments = f.DedicatedPayments.Add(p.Amount)
	}

	f.GrandTotal = f.RoomSubtotal.Add(f.ConsumptionsSubtotal).Add(f.ManualSubtotal)
	f.Charges = charges
	f.RowPayments = negatives.Abs()
	f.Paid = f.RowPayments.Add(f.DedicatedPayments)
	f.Due = f.RoomSubtotal.Add(f.Charges)
	f.Outstanding = f.Due.Sub(f.Paid)

	switch {
	case f.Paid.IsZero():
		f.Status = FolioUnpaid
	case !f.Outstanding.IsPositive():
		f.Status = FolioPaid
	default:
		f.Status = FolioPartial
	}

	return f
}
