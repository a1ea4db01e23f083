package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UseCase use case снимка доступности номеров на дату
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute классифицирует каждый номер на дату:
// BLOQUEADA > OCUPADA > DISPONIBLE_CON_ALERTA > DISPONIBLE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем дату
	today := types.DateOf(uc.timeProvider.Now())
	date := today
	if req != nil && req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	uc.logger.Info("GetAvailability: date=%s", date)

	// 2. Закрываем просроченные заселения, ошибка не прерывает чтение
	if n, err := uc.reservationRepo.FinalizeOverdue(ctx, today); err != nil {
		uc.logger.Error("GetAvailability: failed to finalize overdue stays: %v", err)
	} else if n > 0 {
		uc.logger.Info("GetAvailability: %d overdue stays finalized", n)
	}

	// 3. Все номера
	rooms, err := uc.roomRepo.List(ctx, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Активные бронирования, которые заканчиваются после даты:
	// текущие и будущие
	active, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		Statuses: domain.ActiveStatuses,
		From:     &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Reservation, len(rooms))
	for _, r := range active {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	// 5. Классификация
	resp := &Response{
		Date:  date,
		Rooms: make([]RoomStatus, 0, len(rooms)),
	}
	for _, room := range rooms {
		availability := domain.BuildRoomAvailability(room, byRoom[room.ID], date)
		resp.Rooms = append(resp.Rooms, toRoomStatus(availability))
		resp.Summary.add(availability.Tier)
	}

	uc.logger.Info("GetAvailability: %d rooms, %d occupied, %d blocked",
		resp.Summary.Total, resp.Summary.Occupied, resp.Summary.Blocked)

	return resp, nil
}
