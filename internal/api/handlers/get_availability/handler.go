package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/get_availability"
)

const msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/disponibilidad?fecha=YYYY-MM-DD
// Снимок всех номеров на дату (по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, ok := h.snapshot(w, r, "GET /disponibilidad")
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRooms GET /api/v1/habitaciones
// Список номеров с производным статусом на сегодня
func (h *Handler) HandleRooms(w http.ResponseWriter, r *http.Request) {
	result, ok := h.snapshot(w, r, "GET /habitaciones")
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request, op string) (*getAvailability.Response, bool) {
	date, err := handlers.QueryDate(r, "fecha")
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("%s - Failed to build availability: %v", op, err)
		handlers.RespondInternalError(w)
		return nil, false
	}

	h.logger.Info("%s - %d rooms on %s", op, len(result.Rooms), result.Date)
	return result, true
}
