package rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID       = "ID de habitación inválido"
	msgRoomNotFound        = "habitación no encontrada"
	msgRoomNumberTaken     = "ya existe una habitación con ese número"
	msgRoomHasReservations = "no se puede eliminar: la habitación tiene reservas activas o históricas"
	msgInvalidInput        = "datos de la habitación inválidos"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/habitaciones?estado=DISPONIBLE
// Без фильтра маршрут обслуживает снимок доступности
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	state := handlers.QueryString(r, "estado")

	result, err := h.service.List(r.Context(), state)
	if err != nil {
		if errors.Is(err, roomsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /habitaciones - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/habitaciones
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /habitaciones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /habitaciones", 0, err)
		return
	}

	h.logger.Info("POST /habitaciones - Room created: id=%d, numero=%s", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/habitaciones/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /habitaciones/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/habitaciones/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /habitaciones/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /habitaciones/{id}", id, err)
		return
	}

	h.logger.Info("PUT /habitaciones/{id} - Room updated: id=%d, estado=%s", id, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/habitaciones/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /habitaciones/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /habitaciones/{id} - Room deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, roomsService.ErrRoomNotFound):
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, roomsService.ErrRoomNumberTaken):
		handlers.RespondConflict(w, msgRoomNumberTaken)

	case errors.Is(err, roomsService.ErrRoomHasReservations):
		h.logger.Warn("%s - Room has reservations: id=%d", op, id)
		handlers.RespondBadRequest(w, msgRoomHasReservations)

	case errors.Is(err, roomsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
