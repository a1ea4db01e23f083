package clients

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ClientRepository интерфейс репозитория гостей
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, search string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationCounter считает бронирования гостя перед удалением
type ReservationCounter interface {
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
