package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UseCase use case выезда гостя
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	events          EventRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute закрывает проживание CHECKIN -> FINALIZADA.
// При раннем выезде дата выезда сдвигается на сегодня, ночей не меньше одной,
// сумма = ночи * зафиксированный тариф
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: reservation id=%d", req.ReservationID)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := types.DateOf(now)

	var (
		result     *domain.Reservation
		settlement domain.Settlement
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("Checkout: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Выезд только из CHECKIN
		if !res.CanCheckout() {
			uc.logger.Warn("Checkout: reservation id=%d has status %s", res.ID, res.Status)
			return fmt.Errorf("%w: current status %s", ErrInvalidStatus, res.Status)
		}

		// 3. Расчет фактического проживания
		settlement = res.SettleAt(today)
		if settlement.Early {
			uc.logger.Info("Checkout: early checkout for reservation id=%d, exit %s -> %s, nights=%d",
				res.ID, res.ExitDate, settlement.ExitDate, settlement.Nights)
		}

		res.NightlyRate = res.EffectiveNightlyRate()
		res.ExitDate = settlement.ExitDate
		res.TotalPrice = settlement.TotalPrice
		res.Status = domain.StatusFinalized
		res.CheckOutAt = &now

		// 4. Сохраняем
		if err := uc.reservationRepo.Update(txCtx, res); err != nil {
			uc.logger.Error("Checkout: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.IncEvent(metrics.EventCheckout)
	uc.logger.Info("Checkout: reservation id=%d finalized, total=%s", result.ID, result.TotalPrice.StringFixed(2))

	return &Response{
		ReservationResponse: *models.FromDomainReservation(result),
		EarlyCheckout:       settlement.Early,
	}, nil
}
