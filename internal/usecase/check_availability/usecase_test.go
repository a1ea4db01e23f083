package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeReservations []*domain.Reservation

func (f fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f {
		if filter.RoomID != nil && r.RoomID != *filter.RoomID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeRooms []*domain.Room

func (f fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	for _, r := range f {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f fakeRooms) List(_ context.Context, _ *domain.RoomState) ([]*domain.Room, error) {
	return f, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func d(s string) types.Date { return types.MustParseDate(s) }

func newUseCase() *UseCase {
	rooms := fakeRooms{
		{ID: 1, Number: "101", State: domain.RoomAvailable},
		{ID: 2, Number: "102", State: domain.RoomAvailable},
		{ID: 3, Number: "103", State: domain.RoomCleaning},
	}
	reservations := fakeReservations{
		{ID: 20, RoomID: 1, Status: domain.StatusPending, EntryDate: d("2024-06-11"), ExitDate: d("2024-06-13")},
		{ID: 21, RoomID: 2, Status: domain.StatusCancelled, EntryDate: d("2024-06-10"), ExitDate: d("2024-06-12")},
	}
	return NewUseCase(reservations, rooms, nopLogger{})
}

func TestUseCase_Execute_AllRooms(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{EntryDate: d("2024-06-10"), ExitDate: d("2024-06-12")})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	require.Len(t, resp.FreeRooms, 1)
	assert.Equal(t, "102", resp.FreeRooms[0].Number)
	assert.Equal(t, "1 habitaciones disponibles", resp.Message)
}

func TestUseCase_Execute_SingleRoomConflict(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		EntryDate: d("2024-06-10"), ExitDate: d("2024-06-12"), RoomID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "2024-06-11", resp.Conflict.Date.String())
	assert.Equal(t, int64(20), resp.Conflict.ReservationID)
	assert.Empty(t, resp.FreeRooms)
}

func TestUseCase_Execute_CheckoutDayIsFree(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		EntryDate: d("2024-06-13"), ExitDate: d("2024-06-14"), RoomID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Len(t, resp.FreeRooms, 1)
}

func TestUseCase_Execute_BlockedRoomIsNeverFree(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		EntryDate: d("2024-07-01"), ExitDate: d("2024-07-02"), RoomID: ptr.Ptr(int64(3)),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	_, err := newUseCase().Execute(context.Background(), &Request{EntryDate: d("2024-06-12"), ExitDate: d("2024-06-12")})
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, err = newUseCase().Execute(context.Background(), &Request{
		EntryDate: d("2024-06-12"), ExitDate: d("2024-06-13"), RoomID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
