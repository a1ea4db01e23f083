package reservations

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

// Service сервис чтения и простых переходов бронирований.
// Заселение, выезд и смена номера реализованы в usecase
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	events          EventRecorder
	logger          Logger
	timeProvider    TimeProvider
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		events:          events,
		logger:          logger,
		timeProvider:    &RealTimeProvider{},
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(res), nil
}

// List возвращает бронирования по фильтру.
// Перед чтением закрываются просроченные заселения
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: fecha_fin before fecha_inicio", ErrInvalidInput)
	}

	s.finalizeOverdue(ctx)

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// History возвращает завершенные и отмененные бронирования, новые первыми
func (s *Service) History(ctx context.Context) ([]models.ReservationResponse, error) {
	s.finalizeOverdue(ctx)

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		Statuses:    domain.HistoryStatuses,
		NewestFirst: true,
	})
	if err != nil {
		s.logger.Error("History: repository error: %v", err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронирование. Допускается только из PENDIENTE:
// заселенное бронирование закрывается через checkout
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	var res *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.get(ctx, "Cancel", id)
		if err != nil {
			return err
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
			return fmt.Errorf("%w: status %s", ErrCannotCancel, res.Status)
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: update status for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}
		res.Status = domain.StatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.IncEvent(metrics.EventCancelled)
	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(res), nil
}

// Delete удаляет бронирование вместе с расходами и оплатами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

// finalizeOverdue ошибка не прерывает чтение, только логируется
func (s *Service) finalizeOverdue(ctx context.Context) {
	today := types.DateOf(s.timeProvider.Now())
	n, err := s.reservationRepo.FinalizeOverdue(ctx, today)
	if err != nil {
		s.logger.Error("finalizeOverdue: %v", err)
		return
	}
	if n > 0 {
		s.logger.Info("finalizeOverdue: %d overdue stays finalized", n)
	}
}
