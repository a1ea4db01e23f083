package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	clientRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

// UseCase use case заселения гостя
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	events          EventRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute переводит бронирование PENDIENTE в CHECKIN
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CheckIn: reservation id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckIn: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Все изменения в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckIn: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Заселить можно только ожидающее бронирование
		if !res.CanCheckIn() {
			uc.logger.Warn("CheckIn: reservation id=%d has status %s", res.ID, res.Status)
			return fmt.Errorf("%w: current status %s", ErrInvalidStatus, res.Status)
		}

		// 2.3. Номер должен быть готов
		room, err := uc.roomRepo.GetByID(txCtx, res.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return fmt.Errorf("%w: room id=%d is gone", ErrInternal, res.RoomID)
			}
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		if room.IsBlocked() {
			uc.logger.Warn("CheckIn: room id=%d is %s", room.ID, room.State)
			return fmt.Errorf("%w: state %s", ErrRoomBlocked, room.State)
		}

		// 2.4. Обновляем контактные данные гостя
		if !req.Contact.IsEmpty() {
			client, err := uc.clientRepo.GetByID(txCtx, res.ClientID)
			if err != nil {
				if errors.Is(err, clientRepo.ErrClientNotFound) {
					return ErrClientNotFound
				}
				return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
			}

			req.Contact.Apply(client)
			if _, err := uc.clientRepo.Update(txCtx, client); err != nil {
				return fmt.Errorf("%w: failed to update client: %v", ErrInternal, err)
			}
			res.ClientName = client.FullName
		}

		// 2.5. Фиксируем заселение
		now := uc.timeProvider.Now()
		res.Status = domain.StatusCheckedIn
		res.CheckInAt = &now

		if err := uc.reservationRepo.Update(txCtx, res); err != nil {
			uc.logger.Error("CheckIn: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.IncEvent(metrics.EventCheckIn)
	uc.logger.Info("CheckIn: reservation id=%d checked in to room %s", result.ID, result.RoomNumber)

	return models.FromDomainReservation(result), nil
}
