package change_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/pgerrors"
)

// UseCase use case смены номера до заселения
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	events          EventRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute переносит бронирование PENDIENTE в свободный номер.
// Тариф и сумма пересчитываются по базовому тарифу нового номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("ChangeRoom: reservation id=%d -> room id=%d", req.ReservationID, req.RoomID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result *domain.Reservation

	// 2. Сериализуемая транзакция, как при создании
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ChangeRoom: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !res.CanChangeRoom() {
			uc.logger.Warn("ChangeRoom: reservation id=%d has status %s", res.ID, res.Status)
			return fmt.Errorf("%w: current status %s", ErrInvalidStatus, res.Status)
		}

		if res.RoomID == req.RoomID {
			return fmt.Errorf("%w: reservation is already in room id=%d", ErrInvalidInput, req.RoomID)
		}

		// 2.2. Новый номер с блокировкой
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ChangeRoom: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if room.State != domain.RoomAvailable {
			uc.logger.Warn("ChangeRoom: room id=%d is %s", room.ID, room.State)
			return fmt.Errorf("%w: state %s", ErrRoomNotAvailable, room.State)
		}

		// 2.3. Новый номер должен быть свободен на весь период
		active, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			RoomID:   &room.ID,
			Statuses: domain.ActiveStatuses,
			From:     &res.EntryDate,
			To:       &res.ExitDate,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict, found := domain.FindConflict(active, res.EntryDate, res.ExitDate); found {
			uc.logger.Warn("ChangeRoom: room id=%d occupied on %s by reservation id=%d",
				room.ID, conflict.Date, conflict.ReservationID)
			return fmt.Errorf("%w: occupied on %s", ErrOverlap, conflict.Date)
		}

		// 2.4. Переносим и пересчитываем
		res.RoomID = room.ID
		res.RoomNumber = room.Number
		res.NightlyRate = room.BaseRate
		res.TotalPrice = domain.StayPrice(res.BilledNights(), room.BaseRate)

		if err := uc.reservationRepo.Update(txCtx, res); err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) || errors.Is(err, reservationRepo.ErrSerialization) {
				return fmt.Errorf("%w: %v", ErrOverlap, err)
			}
			uc.logger.Error("ChangeRoom: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			err = fmt.Errorf("%w: %v", ErrOverlap, err)
		}
		if errors.Is(err, ErrOverlap) {
			uc.events.IncEvent(metrics.EventConflict)
		}
		return nil, err
	}

	uc.events.IncEvent(metrics.EventMoved)
	uc.logger.Info("ChangeRoom: reservation id=%d moved to room %s, total=%s",
		result.ID, result.RoomNumber, result.TotalPrice.StringFixed(2))

	return models.FromDomainReservation(result), nil
}
