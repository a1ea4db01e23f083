package get_folio

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// ConsumptionRepository интерфейс репозитория расходов
type ConsumptionRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Consumption, error)
}

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
