package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	clientRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
// с блокировкой строки номера; ограничение БД страхует от гонок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: room=%d, entry=%s, exit=%s", req.RoomID, req.EntryDate, req.ExitDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация периода относительно сегодняшней даты
	today := types.DateOf(uc.timeProvider.Now())
	if err := validateStay(req.EntryDate, req.ExitDate, today); err != nil {
		uc.logger.Warn("CreateReservation: stay validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Заблокированный номер не принимает бронирования
		if room.IsBlocked() {
			uc.logger.Warn("CreateReservation: room id=%d is blocked, state=%s", room.ID, room.State)
			return fmt.Errorf("%w: state %s", ErrRoomBlocked, room.State)
		}

		// 3.3. Находим или регистрируем гостя
		client, err := uc.resolveClient(txCtx, req)
		if err != nil {
			return err
		}

		// 3.4. Проверяем пересечение с активными бронированиями номера
		active, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			RoomID:   &room.ID,
			Statuses: domain.ActiveStatuses,
			From:     &req.EntryDate,
			To:       &req.ExitDate,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict, found := domain.FindConflict(active, req.EntryDate, req.ExitDate); found {
			uc.logger.Warn("CreateReservation: room id=%d occupied on %s by reservation id=%d",
				room.ID, conflict.Date, conflict.ReservationID)
			return fmt.Errorf("%w: occupied on %s", ErrOverlap, conflict.Date)
		}

		// 3.5. Тариф: переопределение из запроса или базовый тариф номера
		rate := room.BaseRate
		if req.NightlyRate != nil {
			rate = *req.NightlyRate
		}

		nights := req.EntryDate.DaysUntil(req.ExitDate)
		reservation := &domain.Reservation{
			RoomID:      room.ID,
			ClientID:    client.ID,
			EntryDate:   req.EntryDate,
			ExitDate:    req.ExitDate,
			NightlyRate: rate,
			TotalPrice:  domain.StayPrice(nights, rate),
			Status:      domain.StatusPending,
		}

		// 3.6. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) || errors.Is(err, reservationRepo.ErrSerialization) {
				uc.logger.Warn("CreateReservation: concurrent booking for room id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: %v", ErrOverlap, err)
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		created.ClientName = client.FullName
		created.ClientDNI = client.DNI
		created.RoomNumber = room.Number
		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации может проявиться только при коммите
		if pgerrors.IsSerializationFailure(err) {
			err = fmt.Errorf("%w: %v", ErrOverlap, err)
		}
		if errors.Is(err, ErrOverlap) {
			uc.events.IncEvent(metrics.EventConflict)
		}
		return nil, err
	}

	uc.events.IncEvent(metrics.EventCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%s",
		result.ID, result.TotalPrice.StringFixed(2))

	return models.FromDomainReservation(result), nil
}

// resolveClient возвращает гостя по ID или по DNI, регистрируя нового при отсутствии
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*domain.Client, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateReservation: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		return client, nil
	}

	dni := strings.TrimSpace(req.Client.DNI)
	client, err := uc.clientRepo.GetByDNI(ctx, dni)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		return nil, fmt.Errorf("%w: failed to get client by dni: %v", ErrInternal, err)
	}

	created, err := uc.clientRepo.Create(ctx, &domain.Client{
		FullName: strings.TrimSpace(req.Client.FullName),
		DNI:      dni,
		Email:    req.Client.Email,
		Phone:    req.Client.Phone,
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrDNITaken) || errors.Is(err, clientRepo.ErrSerialization) {
			uc.logger.Warn("CreateReservation: client dni=%s registered concurrently: %v", dni, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentRequest, err)
		}
		return nil, fmt.Errorf("%w: failed to register client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: registered client id=%d dni=%s", created.ID, dni)
	return created, nil
}
