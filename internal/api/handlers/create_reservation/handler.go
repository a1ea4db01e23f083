package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
)

const (
	msgRoomNotFound   = "habitación no encontrada"
	msgRoomBlocked    = "la habitación está en limpieza o mantenimiento"
	msgClientNotFound = "cliente no encontrado"
	msgInvalidDates   = "la fecha de salida debe ser posterior a la de entrada"
	msgEntryInPast    = "la fecha de entrada no puede ser anterior a hoy"
	msgOverlap        = "la habitación ya está reservada en esas fechas"
	msgConcurrent     = "el huésped se registró en otra operación simultánea, reintente"
	msgInvalidInput   = "datos de la reserva inválidos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrOverlap):
			h.logger.Warn("POST /reservas - Overlap: room_id=%d, %s..%s", req.RoomID, req.EntryDate, req.ExitDate)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, createReservation.ErrConcurrentRequest):
			h.logger.Warn("POST /reservas - Concurrent client registration: %v", err)
			handlers.RespondConflict(w, msgConcurrent)

		case errors.Is(err, createReservation.ErrRoomBlocked):
			h.logger.Warn("POST /reservas - Room blocked: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomBlocked)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createReservation.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createReservation.ErrEntryInPast):
			handlers.RespondBadRequest(w, msgEntryInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservas - Failed to create reservation: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas - Reservation created: id=%d, room_id=%d", result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
