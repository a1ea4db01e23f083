package check_in

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	clientRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeReservations struct {
	byID    map[int64]*domain.Reservation
	updated []*domain.Reservation
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservations) Update(_ context.Context, res *domain.Reservation) error {
	f.updated = append(f.updated, res)
	return nil
}

type fakeRooms map[int64]*domain.Room

func (f fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r, ok := f[id]; ok {
		return r, nil
	}
	return nil, roomRepo.ErrRoomNotFound
}

type fakeClients struct {
	byID    map[int64]*domain.Client
	updated []*domain.Client
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	f.updated = append(f.updated, c)
	return c, nil
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

var checkInTime = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

type fixture struct {
	uc           *UseCase
	reservations *fakeReservations
	clients      *fakeClients
	events       *eventLog
}

func newFixture(status domain.ReservationStatus, roomState domain.RoomState) fixture {
	f := fixture{
		reservations: &fakeReservations{byID: map[int64]*domain.Reservation{
			1: {
				ID: 1, RoomID: 1, ClientID: 7, Status: status, ClientName: "Ana Torres", RoomNumber: "101",
				EntryDate: types.MustParseDate("2024-06-10"), ExitDate: types.MustParseDate("2024-06-12"),
			},
		}},
		clients: &fakeClients{byID: map[int64]*domain.Client{
			7: {ID: 7, FullName: "Ana Torres", DNI: "30111222"},
		}},
		events: &eventLog{},
	}
	rooms := fakeRooms{1: {ID: 1, Number: "101", State: roomState}}
	f.uc = NewUseCase(f.reservations, rooms, f.clients, inlineTx{}, f.events, nopLogger{})
	f.uc.timeProvider = fixedClock(checkInTime)
	return f
}

func TestUseCase_Execute_ChecksIn(t *testing.T) {
	f := newFixture(domain.StatusPending, domain.RoomAvailable)

	resp, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.Equal(t, "CHECKIN", resp.Status)
	require.NotNil(t, resp.CheckInAt)
	assert.True(t, resp.CheckInAt.Equal(checkInTime))
	require.Len(t, f.reservations.updated, 1)
	assert.Empty(t, f.clients.updated)
	assert.Equal(t, []string{metrics.EventCheckIn}, []string(*f.events))
}

func TestUseCase_Execute_UpdatesContact(t *testing.T) {
	f := newFixture(domain.StatusPending, domain.RoomAvailable)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		Contact: &domain.ClientContactUpdate{
			FullName: ptr.Ptr("  Ana María Torres "),
			Phone:    ptr.Ptr("+34 600 000 000"),
		},
	})

	require.NoError(t, err)
	require.Len(t, f.clients.updated, 1)
	assert.Equal(t, "Ana María Torres", f.clients.updated[0].FullName)
	assert.Equal(t, "+34 600 000 000", ptr.Value(f.clients.updated[0].Phone))
	assert.Equal(t, "Ana María Torres", resp.ClientName)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.ReservationStatus
		roomState domain.RoomState
		id        int64
		wantErr   error
	}{
		{name: "already checked in", status: domain.StatusCheckedIn, roomState: domain.RoomAvailable, id: 1, wantErr: ErrInvalidStatus},
		{name: "cancelled", status: domain.StatusCancelled, roomState: domain.RoomAvailable, id: 1, wantErr: ErrInvalidStatus},
		{name: "finalized", status: domain.StatusFinalized, roomState: domain.RoomAvailable, id: 1, wantErr: ErrInvalidStatus},
		{name: "room in maintenance", status: domain.StatusPending, roomState: domain.RoomMaintenance, id: 1, wantErr: ErrRoomBlocked},
		{name: "room in cleaning", status: domain.StatusPending, roomState: domain.RoomCleaning, id: 1, wantErr: ErrRoomBlocked},
		{name: "unknown reservation", status: domain.StatusPending, roomState: domain.RoomAvailable, id: 2, wantErr: ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status, tt.roomState)
			_, err := f.uc.Execute(context.Background(), &Request{ReservationID: tt.id})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.reservations.updated)
			assert.Empty(t, *f.events)
		})
	}
}

func TestUseCase_Execute_ShortName(t *testing.T) {
	f := newFixture(domain.StatusPending, domain.RoomAvailable)
	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		Contact:       &domain.ClientContactUpdate{FullName: ptr.Ptr("A")},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
