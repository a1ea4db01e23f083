package frontdesk

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	frontdeskService "github.com/m04kA/SMC-HotelService/internal/service/frontdesk"
)

const msgQueryTooShort = "la búsqueda requiere al menos 2 caracteres"

// Handler экраны стойки регистрации
type Handler struct {
	service FrontDeskService
	logger  Logger
}

func NewHandler(service FrontDeskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ArrivalsToday GET /api/v1/checkin/llegadas-hoy
func (h *Handler) ArrivalsToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ArrivalsToday(r.Context())
	if err != nil {
		h.logger.Error("GET /checkin/llegadas-hoy - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Search GET /api/v1/checkin/buscar?q=texto
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var query string
	if q := handlers.QueryString(r, "q"); q != nil {
		query = *q
	}

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, frontdeskService.ErrQueryTooShort) {
			handlers.RespondBadRequest(w, msgQueryTooShort)
			return
		}
		h.logger.Error("GET /checkin/buscar - Failed: q=%s, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AvailableRooms GET /api/v1/checkin/habitaciones-disponibles
func (h *Handler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AvailableRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /checkin/habitaciones-disponibles - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
