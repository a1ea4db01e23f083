package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeReservations struct {
	stay    *domain.Reservation
	updated []*domain.Reservation
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.stay == nil || f.stay.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *f.stay
	return &cp, nil
}

func (f *fakeReservations) Update(_ context.Context, res *domain.Reservation) error {
	f.updated = append(f.updated, res)
	return nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type eventLog []string

func (e *eventLog) IncEvent(event string) { *e = append(*e, event) }

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fiveNightStay(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID: 1, RoomID: 1, ClientID: 1, Status: status,
		EntryDate:   types.MustParseDate("2024-06-01"),
		ExitDate:    types.MustParseDate("2024-06-06"),
		NightlyRate: decimal.RequireFromString("120"),
		TotalPrice:  decimal.RequireFromString("600"),
	}
}

func newUseCase(repo *fakeReservations, events *eventLog, now time.Time) *UseCase {
	uc := NewUseCase(repo, inlineTx{}, events, nopLogger{})
	uc.timeProvider = fixedClock(now)
	return uc
}

func TestUseCase_Execute_EarlyCheckout(t *testing.T) {
	repo := &fakeReservations{stay: fiveNightStay(domain.StatusCheckedIn)}
	events := &eventLog{}

	resp, err := newUseCase(repo, events, time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)).
		Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.True(t, resp.EarlyCheckout)
	assert.Equal(t, "FINALIZADA", resp.Status)
	assert.Equal(t, "2024-06-03", resp.ExitDate.String())
	assert.Equal(t, 2, resp.Nights)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("240")))
	require.NotNil(t, resp.CheckOutAt)
	assert.Equal(t, []string{metrics.EventCheckout}, []string(*events))
}

func TestUseCase_Execute_SameDayChargesOneNight(t *testing.T) {
	repo := &fakeReservations{stay: fiveNightStay(domain.StatusCheckedIn)}

	resp, err := newUseCase(repo, &eventLog{}, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)).
		Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, "2024-06-02", resp.ExitDate.String())
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("120")))
}

func TestUseCase_Execute_OnTimeKeepsTotal(t *testing.T) {
	repo := &fakeReservations{stay: fiveNightStay(domain.StatusCheckedIn)}

	resp, err := newUseCase(repo, &eventLog{}, time.Date(2024, 6, 6, 10, 0, 0, 0, time.UTC)).
		Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.False(t, resp.EarlyCheckout)
	assert.Equal(t, "2024-06-06", resp.ExitDate.String())
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("600")))
}

func TestUseCase_Execute_WrongStatus(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending, domain.StatusFinalized, domain.StatusCheckedOut, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeReservations{stay: fiveNightStay(status)}
			_, err := newUseCase(repo, &eventLog{}, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)).
				Execute(context.Background(), &Request{ReservationID: 1})
			assert.ErrorIs(t, err, ErrInvalidStatus)
			assert.Empty(t, repo.updated)
		})
	}
}
