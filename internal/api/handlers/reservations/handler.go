package reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgCannotCancel         = "solo se pueden cancelar reservas pendientes"
	msgInvalidFilter        = "filtros inválidos"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/reservas?fecha_inicio=&fecha_fin=&cliente_id=&habitacion_id=&estado=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r)
	if err != nil {
		h.logger.Warn("GET /reservas - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservas - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// History GET /api/v1/reservas/historial
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.History(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas/historial - Failed to load history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/reservas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /reservas/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Cancel PUT /api/v1/reservas/{id}/cancelar
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		h.respondError(w, "PUT /reservas/{id}/cancelar", id, err)
		return
	}

	h.logger.Info("PUT /reservas/{id}/cancelar - Reservation cancelled: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/reservas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /reservas/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reservation deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, reservationsService.ErrReservationNotFound):
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservationsService.ErrCannotCancel):
		h.logger.Warn("%s - Cannot cancel reservation: id=%d", op, id)
		handlers.RespondBadRequest(w, msgCannotCancel)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}

func parseListRequest(r *http.Request) (*models.ListReservationsRequest, error) {
	from, err := handlers.QueryDate(r, "fecha_inicio")
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryDate(r, "fecha_fin")
	if err != nil {
		return nil, err
	}
	clientID, err := handlers.QueryInt64(r, "cliente_id")
	if err != nil {
		return nil, err
	}
	roomID, err := handlers.QueryInt64(r, "habitacion_id")
	if err != nil {
		return nil, err
	}

	return &models.ListReservationsRequest{
		From:     from,
		To:       to,
		ClientID: clientID,
		RoomID:   roomID,
		Status:   handlers.QueryString(r, "estado"),
	}, nil
}
