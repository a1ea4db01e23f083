package billing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// ConsumptionRepository интерфейс репозитория расходов
type ConsumptionRepository interface {
	Create(ctx context.Context, c *domain.Consumption) (*domain.Consumption, error)
	GetByID(ctx context.Context, id int64) (*domain.Consumption, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Consumption, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Payment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
