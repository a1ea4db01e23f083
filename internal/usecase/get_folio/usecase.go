package get_folio

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
)

// UseCase use case расчета счета бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	consumptionRepo ConsumptionRepository
	paymentRepo     PaymentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	consumptionRepo ConsumptionRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		consumptionRepo: consumptionRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
	}
}

// Execute возвращает счет в JSON представлении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	folio, err := uc.Load(ctx, req)
	if err != nil {
		return nil, err
	}
	return toResponse(folio), nil
}

// Load собирает данные и считает счет.
// Ночи считаются по датам бронирования (не меньше одной), тариф берется из снимка
func (uc *UseCase) Load(ctx context.Context, req *Request) (*Folio, error) {
	uc.logger.Info("GetFolio: reservation id=%d, manual items=%d", req.ReservationID, len(req.ManualItems))

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Бронирование
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("GetFolio: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("GetFolio: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Строки счета и оплаты
	consumptions, err := uc.consumptionRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		uc.logger.Error("GetFolio: failed to list consumptions for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: failed to list consumptions: %v", ErrInternal, err)
	}

	payments, err := uc.paymentRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		uc.logger.Error("GetFolio: failed to list payments for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	manual := make([]domain.ManualItem, 0, len(req.ManualItems))
	for _, item := range req.ManualItems {
		manual = append(manual, item.toDomain())
	}

	// 4. Расчет
	result := domain.CalculateFolio(domain.FolioInput{
		Nights:       res.BilledNights(),
		NightlyRate:  res.EffectiveNightlyRate(),
		Consumptions: consumptions,
		ManualItems:  manual,
		Payments:     payments,
	})

	uc.logger.Info("GetFolio: reservation id=%d, total=%s, outstanding=%s, status=%s",
		res.ID, result.GrandTotal.StringFixed(2), result.Outstanding.StringFixed(2), result.Status)

	return &Folio{
		Reservation:  res,
		Consumptions: consumptions,
		ManualItems:  manual,
		Payments:     payments,
		Result:       result,
	}, nil
}
