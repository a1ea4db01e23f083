package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	consumptionRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/consumption"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	productRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/product"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelService/internal/service/billing/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Service сервис начислений и оплат по бронированию
type Service struct {
	reservationRepo ReservationRepository
	productRepo     ProductRepository
	consumptionRepo ConsumptionRepository
	paymentRepo     PaymentRepository
	logger          Logger
	timeProvider    TimeProvider
}

// NewService создает новый экземпляр сервиса начислений
func NewService(
	reservationRepo ReservationRepository,
	productRepo ProductRepository,
	consumptionRepo ConsumptionRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		productRepo:     productRepo,
		consumptionRepo: consumptionRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
		timeProvider:    &RealTimeProvider{},
	}
}

// AddConsumption добавляет строку счета.
// С producto_id цена и название фиксируются из каталога, товар должен быть активен.
// Без producto_id строка ручная: нужны concepto и precio_unitario (может быть отрицательной)
func (s *Service) AddConsumption(ctx context.Context, reservationID int64, req *models.AddConsumptionRequest) (*models.ConsumptionResponse, error) {
	s.logger.Info("AddConsumption: reservation id=%d product=%v qty=%d", reservationID, req.ProductID, req.Quantity)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	if err := s.checkReservationOpen(ctx, "AddConsumption", reservationID); err != nil {
		return nil, err
	}

	consumption := &domain.Consumption{
		ReservationID: reservationID,
		Quantity:      req.Quantity,
		ConsumedOn:    types.DateOf(s.timeProvider.Now()),
	}
	if req.Date != nil && !req.Date.IsZero() {
		consumption.ConsumedOn = *req.Date
	}

	if req.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, productRepo.ErrProductNotFound) {
				s.logger.Warn("AddConsumption: product id=%d not found", *req.ProductID)
				return nil, ErrProductNotFound
			}
			s.logger.Error("AddConsumption: product repository error: %v", err)
			return nil, fmt.Errorf("%w: AddConsumption - get product: %v", ErrInternal, err)
		}
		if !product.Active {
			s.logger.Warn("AddConsumption: product id=%d is inactive", product.ID)
			return nil, ErrProductInactive
		}

		consumption.ProductID = &product.ID
		consumption.Concept = product.Name
		consumption.UnitPrice = product.Price
		consumption.Origin = domain.OriginProduct
	} else {
		if req.Concept == nil || strings.TrimSpace(*req.Concept) == "" || req.UnitPrice == nil {
			return nil, fmt.Errorf("%w: manual item requires concepto and precio_unitario", ErrInvalidInput)
		}
		if !types.FitsMoneyScale(req.UnitPrice.Decimal) {
			return nil, fmt.Errorf("%w: precio_unitario %s has sub-cent precision", ErrInvalidInput, req.UnitPrice.String())
		}

		consumption.Concept = strings.TrimSpace(*req.Concept)
		consumption.UnitPrice = req.UnitPrice.Decimal
		consumption.Origin = domain.OriginManual
	}

	created, err := s.consumptionRepo.Create(ctx, consumption)
	if err != nil {
		switch {
		case errors.Is(err, consumptionRepo.ErrConstraint):
			s.logger.Warn("AddConsumption: rejected by database: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, consumptionRepo.ErrInvalidReference):
			// бронирование удалили между проверкой и вставкой
			return nil, ErrReservationNotFound
		}
		s.logger.Error("AddConsumption: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: AddConsumption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddConsumption: consumption id=%d added, subtotal=%s", created.ID, created.Subtotal().StringFixed(2))
	return models.FromDomainConsumption(created), nil
}

// ListConsumptions возвращает строки счета бронирования
func (s *Service) ListConsumptions(ctx context.Context, reservationID int64) ([]models.ConsumptionResponse, error) {
	if _, err := s.getReservation(ctx, "ListConsumptions", reservationID); err != nil {
		return nil, err
	}

	list, err := s.consumptionRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListConsumptions: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListConsumptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConsumptionList(list), nil
}

// DeleteConsumption удаляет строку счета
func (s *Service) DeleteConsumption(ctx context.Context, id int64) error {
	consumption, err := s.consumptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consumptionRepo.ErrConsumptionNotFound) {
			s.logger.Warn("DeleteConsumption: consumption id=%d not found", id)
			return ErrConsumptionNotFound
		}
		s.logger.Error("DeleteConsumption: repository error for consumption id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteConsumption - get consumption: %v", ErrInternal, err)
	}

	if err := s.consumptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, consumptionRepo.ErrConsumptionNotFound) {
			return ErrConsumptionNotFound
		}
		s.logger.Error("DeleteConsumption: repository error for consumption id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteConsumption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteConsumption: consumption id=%d (%s) removed from reservation id=%d", id, consumption.Concept, consumption.ReservationID)
	return nil
}

// AddPayment регистрирует оплату. Сумма строго положительная
func (s *Service) AddPayment(ctx context.Context, reservationID int64, req *models.AddPaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("AddPayment: reservation id=%d amount=%s method=%s", reservationID, req.Amount.StringFixed(2), req.Method)

	method := domain.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !types.FitsMoneyScale(req.Amount.Decimal) {
		return nil, fmt.Errorf("%w: amount %s has sub-cent precision", ErrInvalidInput, req.Amount.String())
	}

	if err := s.checkReservationOpen(ctx, "AddPayment", reservationID); err != nil {
		return nil, err
	}

	created, err := s.paymentRepo.Create(ctx, &domain.Payment{
		ReservationID: reservationID,
		Amount:        req.Amount.Decimal,
		Method:        method,
		Note:          req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrConstraint):
			s.logger.Warn("AddPayment: rejected by database: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, paymentRepo.ErrInvalidReference):
			return nil, ErrReservationNotFound
		}
		s.logger.Error("AddPayment: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: AddPayment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(created), nil
}

// ListPayments возвращает оплаты бронирования
func (s *Service) ListPayments(ctx context.Context, reservationID int64) ([]models.PaymentResponse, error) {
	if _, err := s.getReservation(ctx, "ListPayments", reservationID); err != nil {
		return nil, err
	}

	list, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListPayments: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(list), nil
}

func (s *Service) checkReservationOpen(ctx context.Context, op string, id int64) error {
	res, err := s.getReservation(ctx, op, id)
	if err != nil {
		return err
	}
	if res.Status == domain.StatusCancelled {
		s.logger.Warn("%s: reservation id=%d is cancelled", op, id)
		return ErrReservationClosed
	}
	return nil
}

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get reservation: %v", ErrInternal, op, err)
	}
	return res, nil
}
