package check_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgInvalidStatus        = "solo se puede hacer check-in de reservas pendientes"
	msgRoomBlocked          = "la habitación está en limpieza o mantenimiento"
	msgClientNotFound       = "cliente de la reserva no encontrado"
	msgInvalidInput         = "datos del cliente inválidos"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkin/{id}
// Тело необязательно: nombre_completo, email, telefono
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /checkin/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CheckInRequest
	present, err := handlers.DecodeOptionalJSON(r, &req)
	if err == nil && present {
		err = handlers.Validate(&req)
	}
	if err != nil {
		h.logger.Warn("POST /checkin/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, checkIn.ErrInvalidStatus):
			h.logger.Warn("POST /checkin/{id} - Invalid status: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, checkIn.ErrRoomBlocked):
			h.logger.Warn("POST /checkin/{id} - Room blocked: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgRoomBlocked)

		case errors.Is(err, checkIn.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, checkIn.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /checkin/{id} - Failed to check in: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkin/{id} - Checked in: reservation_id=%d, room=%s", result.ID, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
