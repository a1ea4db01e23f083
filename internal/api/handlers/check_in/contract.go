package check_in

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

type CheckInUseCase interface {
	Execute(ctx context.Context, req *checkIn.Request) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
