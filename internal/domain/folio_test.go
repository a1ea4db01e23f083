package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestCalculateFolio_RoomOnly(t *testing.T) {
	f := CalculateFolio(FolioInput{Nights: 3, NightlyRate: dec("100")})

	assertDecimal(t, "300", f.RoomSubtotal)
	assertDecimal(t, "300", f.GrandTotal)
	assertDecimal(t, "300", f.Outstanding)
	assert.Equal(t, FolioUnpaid, f.Status)
}

func TestCalculateFolio_PartialPaymentFromNegativeRow(t *testing.T) {
	f := CalculateFolio(FolioInput{
		Nights:      3,
		NightlyRate: dec("100"),
		Consumptions: []*Consumption{
			{Concept: "Agua mineral", Quantity: 2, UnitPrice: dec("15")},
			{Concept: "Seña", Origin: OriginManual, Quantity: 1, UnitPrice: dec("-100")},
		},
	})

	assertDecimal(t, "230", f.GrandTotal)
	assertDecimal(t, "30", f.Charges)
	assertDecimal(t, "330", f.Due)
	assertDecimal(t, "100", f.Paid)
	assertDecimal(t, "230", f.Outstanding)
	assert.Equal(t, FolioPartial, f.Status)
}

func TestCalculateFolio_DedicatedPaymentsSettleAccount(t *testing.T) {
	f := CalculateFolio(FolioInput{
		Nights:      2,
		NightlyRate: dec("80.50"),
		Consumptions: []*Consumption{
			{Quantity: 1, UnitPrice: dec("9.00")},
		},
		Payments: []*Payment{
			{Amount: dec("100"), Method: PaymentCash},
			{Amount: dec("70"), Method: PaymentCard},
		},
	})

	assertDecimal(t, "170", f.Due)
	assertDecimal(t, "170", f.Paid)
	assertDecimal(t, "0", f.Outstanding)
	assert.Equal(t, FolioPaid, f.Status)
}

func TestCalculateFolio_OverpaidIsPaid(t *testing.T) {
	f := CalculateFolio(FolioInput{
		Nights:      1,
		NightlyRate: dec("50"),
		Payments:    []*Payment{{Amount: dec("60")}},
	})

	assertDecimal(t, "-10", f.Outstanding)
	assert.Equal(t, FolioPaid, f.Status)
}

func TestCalculateFolio_ManualItemsIncluded(t *testing.T) {
	f := CalculateFolio(FolioInput{
		Nights:      1,
		NightlyRate: dec("100"),
		ManualItems: []ManualItem{
			{Concept: "Late checkout", Quantity: 1, UnitPrice: dec("20")},
			{Concept: "Descuento", Quantity: 1, UnitPrice: dec("-10")},
		},
	})

	assertDecimal(t, "10", f.ManualSubtotal)
	assertDecimal(t, "110", f.GrandTotal)
	assertDecimal(t, "120", f.Due)
	assertDecimal(t, "10", f.Paid)
	assert.Equal(t, FolioPartial, f.Status)
}

func TestCalculateFolio_OrderIndependent(t *testing.T) {
	rows := []*Consumption{
		{Quantity: 3, UnitPrice: dec("2.35")},
		{Quantity: 1, UnitPrice: dec("-40")},
		{Quantity: 2, UnitPrice: dec("11.10")},
	}
	reversed := []*Consumption{rows[2], rows[1], rows[0]}

	a := CalculateFolio(FolioInput{Nights: 2, NightlyRate: dec("99.99"), Consumptions: rows})
	b := CalculateFolio(FolioInput{Nights: 2, NightlyRate: dec("99.99"), Consumptions: reversed})

	assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
	assert.True(t, a.Outstanding.Equal(b.Outstanding))
	assert.Equal(t, a.Status, b.Status)
	assertDecimal(t, "189.23", a.GrandTotal)
}
