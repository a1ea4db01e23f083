package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if r, ok := args.Get(0).(*domain.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*domain.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, state *domain.RoomState) ([]*domain.Room, error) {
	args := m.Called(ctx, state)
	if r, ok := args.Get(0).([]*domain.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if r, ok := args.Get(0).(*domain.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Count(ctx context.Context, filter domain.ReservationFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func money(s string) types.Money {
	return types.NewMoney(decimal.RequireFromString(s))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to available state", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("Create", ctx, mock.MatchedBy(func(r *domain.Room) bool {
			return r.Number == "101" && r.State == domain.RoomAvailable
		})).Return(&domain.Room{ID: 1, Number: "101", Category: domain.CategoryDouble, BaseRate: decimal.NewFromInt(100), State: domain.RoomAvailable}, nil)

		svc := NewService(repo, &mockCounter{}, nopLogger{})
		resp, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Category: "DOBLE", BaseRate: money("100")})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "DISPONIBLE", resp.State)
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive rate", func(t *testing.T) {
		svc := NewService(&mockRoomRepo{}, &mockCounter{}, nopLogger{})
		_, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Category: "DOBLE", BaseRate: money("0")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects sub-cent rate", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, &mockCounter{}, nopLogger{})
		_, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Category: "DOBLE", BaseRate: money("99.999")})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("Create", ctx, mock.Anything).Return(nil, roomRepo.ErrRoomNumberTaken)

		svc := NewService(repo, &mockCounter{}, nopLogger{})
		_, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Category: "SUITE", BaseRate: money("250")})
		assert.ErrorIs(t, err, ErrRoomNumberTaken)
	})
}

func TestService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	repo.On("GetByID", ctx, int64(7)).Return(&domain.Room{ID: 7, Number: "201", Category: domain.CategorySingle, BaseRate: decimal.NewFromInt(80), State: domain.RoomAvailable}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Number == "201" && r.State == domain.RoomMaintenance && r.BaseRate.Equal(decimal.NewFromInt(80))
	})).Return(&domain.Room{ID: 7, Number: "201", Category: domain.CategorySingle, BaseRate: decimal.NewFromInt(80), State: domain.RoomMaintenance}, nil)

	svc := NewService(repo, &mockCounter{}, nopLogger{})
	resp, err := svc.Update(ctx, 7, &models.UpdateRoomRequest{State: ptr.Ptr("MANTENIMIENTO")})

	require.NoError(t, err)
	assert.Equal(t, "MANTENIMIENTO", resp.State)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected with reservations", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("GetByID", ctx, int64(3)).Return(&domain.Room{ID: 3}, nil)
		counter := &mockCounter{}
		counter.On("Count", ctx, mock.MatchedBy(func(f domain.ReservationFilter) bool {
			return f.RoomID != nil && *f.RoomID == 3 && len(f.Statuses) == 4
		})).Return(2, nil)

		svc := NewService(repo, counter, nopLogger{})
		err := svc.Delete(ctx, 3)

		assert.ErrorIs(t, err, ErrRoomHasReservations)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes free room", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("GetByID", ctx, int64(3)).Return(&domain.Room{ID: 3}, nil)
		repo.On("Delete", ctx, int64(3)).Return(nil)
		counter := &mockCounter{}
		counter.On("Count", ctx, mock.Anything).Return(0, nil)

		svc := NewService(repo, counter, nopLogger{})
		require.NoError(t, svc.Delete(ctx, 3))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("GetByID", ctx, int64(9)).Return(nil, roomRepo.ErrRoomNotFound)

		svc := NewService(repo, &mockCounter{}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrRoomNotFound)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := &mockRoomRepo{}
		repo.On("GetByID", ctx, int64(9)).Return(nil, errors.New("connection reset"))

		svc := NewService(repo, &mockCounter{}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrInternal)
	})
}
