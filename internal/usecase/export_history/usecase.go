package export_history

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case выгрузки истории бронирований в Excel
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выгружает завершенные и отмененные бронирования, новые сверху
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportHistory: from=%v, to=%v", req.From, req.To)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: fecha_fin before fecha_inicio", ErrInvalidInput)
	}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		From:        req.From,
		To:          req.To,
		Statuses:    domain.HistoryStatuses,
		NewestFirst: true,
	})
	if err != nil {
		uc.logger.Error("ExportHistory: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	content, err := writeXLSX(reservations)
	if err != nil {
		uc.logger.Error("ExportHistory: failed to write xlsx: %v", err)
		return nil, fmt.Errorf("%w: failed to write xlsx: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportHistory: %d reservations exported", len(reservations))

	return &Response{
		FileName: fmt.Sprintf("historial-%s.xlsx", uc.timeProvider.Now().Format("20060102")),
		Content:  content,
	}, nil
}
