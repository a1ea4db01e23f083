package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgRoomAvailable = "Habitación disponible"
	msgRoomTaken     = "Habitación no disponible en esas fechas"
	msgRoomBlocked   = "Habitación bloqueada por limpieza o mantenimiento"
	msgRoomsFree     = "%d habitaciones disponibles"
)

// UseCase use case проверки свободных номеров на период [entrada, salida)
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// Execute проверяет период. Заблокированные номера никогда не считаются свободными
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: entry=%s, exit=%s, room=%v", req.EntryDate, req.ExitDate, req.RoomID)

	if err := domain.ValidateStayRange(req.EntryDate, req.ExitDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}

	active, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		RoomID:   req.RoomID,
		Statuses: domain.ActiveStatuses,
		From:     &req.EntryDate,
		To:       &req.ExitDate,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Reservation)
	for _, r := range active {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	if req.RoomID != nil {
		return uc.checkRoom(ctx, *req.RoomID, byRoom[*req.RoomID], req)
	}

	rooms, err := uc.roomRepo.List(ctx, nil)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	free := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsBlocked() {
			continue
		}
		if _, taken := domain.FindConflict(byRoom[room.ID], req.EntryDate, req.ExitDate); taken {
			continue
		}
		free = append(free, room)
	}

	return &Response{
		Available: len(free) > 0,
		Message:   fmt.Sprintf(msgRoomsFree, len(free)),
		FreeRooms: roomModels.FromDomainRoomList(free),
	}, nil
}

func (uc *UseCase) checkRoom(ctx context.Context, roomID int64, reservations []*domain.Reservation, req *Request) (*Response, error) {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	resp := &Response{FreeRooms: []roomModels.RoomResponse{}}

	if room.IsBlocked() {
		resp.Message = msgRoomBlocked
		return resp, nil
	}

	if conflict, taken := domain.FindConflict(reservations, req.EntryDate, req.ExitDate); taken {
		resp.Message = msgRoomTaken
		resp.Conflict = &Conflict{ReservationID: conflict.ReservationID, Date: conflict.Date}
		return resp, nil
	}

	resp.Available = true
	resp.Message = msgRoomAvailable
	resp.FreeRooms = append(resp.FreeRooms, *roomModels.FromDomainRoom(room))
	return resp, nil
}
