package check_availability

import (
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request проверка периода для одного номера или для всех
type Request struct {
	EntryDate types.Date
	ExitDate  types.Date
	RoomID    *int64
}

// Response результат проверки
type Response struct {
	Available bool                      `json:"disponible"`
	Message   string                    `json:"mensaje"`
	FreeRooms []roomModels.RoomResponse `json:"habitaciones_libres"`
	Conflict  *Conflict                 `json:"conflicto,omitempty"`
}

// Conflict первая занятая ночь в запрошенном периоде
type Conflict struct {
	ReservationID int64      `json:"reserva_id"`
	Date          types.Date `json:"fecha"`
}
