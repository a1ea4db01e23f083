package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// nonCancelledStatuses статусы, которые запрещают удаление номера или гостя
var nonCancelledStatuses = []domain.ReservationStatus{
	domain.StatusPending,
	domain.StatusCheckedIn,
	domain.StatusCheckedOut,
	domain.StatusFinalized,
}

// Service сервис для работы с номерами
type Service struct {
	roomRepo        RoomRepository
	reservationRepo ReservationCounter
	logger          Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, reservationRepo ReservationCounter, logger Logger) *Service {
	return &Service{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create создает номер. Состояние по умолчанию DISPONIBLE
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room number=%s category=%s", req.Number, req.Category)

	if !req.BaseRate.IsPositive() {
		s.logger.Warn("Create: non-positive base rate %s for room %s", req.BaseRate.String(), req.Number)
		return nil, fmt.Errorf("%w: base rate must be positive", ErrInvalidInput)
	}
	if !types.FitsMoneyScale(req.BaseRate.Decimal) {
		return nil, fmt.Errorf("%w: base rate has sub-cent precision", ErrInvalidInput)
	}

	room := &domain.Room{
		Number:   req.Number,
		Category: domain.RoomCategory(req.Category),
		BaseRate: req.BaseRate.Decimal,
		State:    domain.RoomAvailable,
	}
	if req.State != nil {
		room.State = domain.RoomState(*req.State)
	}
	if !room.Category.IsValid() || !room.State.IsValid() {
		return nil, fmt.Errorf("%w: invalid category or state", ErrInvalidInput)
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("Create: room number %s already exists", req.Number)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%d created", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// List возвращает номера, опционально только в заданном состоянии
func (s *Service) List(ctx context.Context, state *string) ([]models.RoomResponse, error) {
	var domainState *domain.RoomState
	if state != nil {
		st := domain.RoomState(*state)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: invalid state", ErrInvalidInput)
		}
		domainState = &st
	}

	rooms, err := s.roomRepo.List(ctx, domainState)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// Update частично обновляет номер
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	room, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Category != nil {
		room.Category = domain.RoomCategory(*req.Category)
	}
	if req.BaseRate != nil {
		if !req.BaseRate.IsPositive() || !types.FitsMoneyScale(req.BaseRate.Decimal) {
			return nil, fmt.Errorf("%w: base rate must be positive with at most two decimals", ErrInvalidInput)
		}
		room.BaseRate = req.BaseRate.Decimal
	}
	if req.State != nil {
		room.State = domain.RoomState(*req.State)
	}
	if !room.Category.IsValid() || !room.State.IsValid() {
		return nil, fmt.Errorf("%w: invalid category or state", ErrInvalidInput)
	}

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomNumberTaken):
			s.logger.Warn("Update: room number %s already exists", room.Number)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room id=%d updated, state=%s", id, updated.State)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет номер, если у него нет неотмененных бронирований.
// Отмененные бронирования удаляются вместе с номером
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if _, err := s.get(ctx, "Delete", id); err != nil {
		return err
	}

	count, err := s.reservationRepo.Count(ctx, domain.ReservationFilter{
		RoomID:   &id,
		Statuses: nonCancelledStatuses,
	})
	if err != nil {
		s.logger.Error("Delete: count reservations for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count reservations: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: room id=%d has %d reservations", id, count)
		return ErrRoomHasReservations
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%d deleted", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}
