package reservations

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
	List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error)
	History(ctx context.Context) ([]models.ReservationResponse, error)
	Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
