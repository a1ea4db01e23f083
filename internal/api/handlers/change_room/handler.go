package change_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	changeRoom "github.com/m04kA/SMC-HotelService/internal/usecase/change_room"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgInvalidRoomID        = "ID de habitación inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgRoomNotFound         = "habitación no encontrada"
	msgInvalidStatus        = "solo se puede cambiar la habitación antes del check-in"
	msgRoomNotAvailable     = "la nueva habitación no está disponible"
	msgOverlap              = "la nueva habitación está reservada en esas fechas"
	msgInvalidInput         = "la reserva ya está en esa habitación"
)

type Handler struct {
	useCase ChangeRoomUseCase
	logger  Logger
}

func NewHandler(useCase ChangeRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/checkin/{id}/cambiar-habitacion/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &changeRoom.Request{ReservationID: reservationID, RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, changeRoom.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, changeRoom.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, changeRoom.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, changeRoom.ErrRoomNotAvailable):
			h.logger.Warn("PUT /checkin/{id}/cambiar-habitacion - Room not available: room_id=%d", roomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, changeRoom.ErrOverlap):
			h.logger.Warn("PUT /checkin/{id}/cambiar-habitacion - Overlap: reservation_id=%d, room_id=%d", reservationID, roomID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, changeRoom.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /checkin/{id}/cambiar-habitacion - Failed: reservation_id=%d, room_id=%d, error=%v",
				reservationID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /checkin/{id}/cambiar-habitacion - Reservation id=%d moved to room %s", result.ID, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
