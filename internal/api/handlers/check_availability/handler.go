package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
)

const (
	msgInvalidDates = "la fecha de salida debe ser posterior a la de entrada"
	msgRoomNotFound = "habitación no encontrada"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/disponibilidad
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /disponibilidad - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /disponibilidad - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /disponibilidad - %s..%s available=%t", req.EntryDate, req.ExitDate, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
