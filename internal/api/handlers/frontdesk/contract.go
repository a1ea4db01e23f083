package frontdesk

import (
	"context"

	reservationModels "github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type FrontDeskService interface {
	ArrivalsToday(ctx context.Context) ([]reservationModels.ReservationResponse, error)
	Search(ctx context.Context, query string) ([]reservationModels.ReservationResponse, error)
	AvailableRooms(ctx context.Context) ([]roomModels.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
