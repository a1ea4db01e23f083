package render_invoice

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeFolios struct {
	folio *get_folio.Folio
	err   error
}

func (f fakeFolios) Load(context.Context, *get_folio.Request) (*get_folio.Folio, error) {
	return f.folio, f.err
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleFolio() *get_folio.Folio {
	dec := decimal.RequireFromString
	res := &domain.Reservation{
		ID: 7, RoomID: 1, ClientID: 1, Status: domain.StatusFinalized,
		EntryDate:   types.MustParseDate("2024-06-01"),
		ExitDate:    types.MustParseDate("2024-06-04"),
		NightlyRate: dec("100"),
		TotalPrice:  dec("300"),
		ClientName:  "María Núñez",
		ClientDNI:   "30111222",
		RoomNumber:  "101",
	}
	consumptions := []*domain.Consumption{
		{ID: 1, ReservationID: 7, Concept: "Café", Quantity: 2, UnitPrice: dec("15"), ConsumedOn: res.EntryDate},
	}
	payments := []*domain.Payment{
		{ID: 1, ReservationID: 7, Amount: dec("100"), Method: domain.PaymentCard, Note: ptr.Ptr("seña"), PaidAt: time.Now()},
	}
	return &get_folio.Folio{
		Reservation:  res,
		Consumptions: consumptions,
		Payments:     payments,
		Result: domain.CalculateFolio(domain.FolioInput{
			Nights: 3, NightlyRate: dec("100"), Consumptions: consumptions, Payments: payments,
		}),
	}
}

func TestUseCase_Execute_RendersPDF(t *testing.T) {
	uc := NewUseCase(fakeFolios{folio: sampleFolio()}, Hotel{Name: "Puente Hotel", CurrencySymbol: "$"}, nopLogger{})
	uc.timeProvider = fixedClock(time.Date(2024, 6, 4, 11, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 7})

	require.NoError(t, err)
	assert.Equal(t, "factura-7.pdf", resp.FileName)
	assert.True(t, bytes.HasPrefix(resp.Content, []byte("%PDF-")))
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(fakeFolios{err: get_folio.ErrReservationNotFound}, Hotel{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 7})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	uc = NewUseCase(fakeFolios{err: errors.New("db down")}, Hotel{}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{ReservationID: 7})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
