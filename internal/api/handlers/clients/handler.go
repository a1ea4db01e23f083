package clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	clientsService "github.com/m04kA/SMC-HotelService/internal/service/clients"
	"github.com/m04kA/SMC-HotelService/internal/service/clients/models"
)

const (
	msgInvalidClientID       = "ID de cliente inválido"
	msgClientNotFound        = "cliente no encontrado"
	msgDNITaken              = "ya existe un cliente con ese DNI"
	msgClientHasReservations = "no se puede eliminar: el cliente tiene reservas registradas"
	msgInvalidInput          = "datos del cliente inválidos"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/clientes?q=texto
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var query string
	if q := handlers.QueryString(r, "q"); q != nil {
		query = *q
	}

	result, err := h.service.List(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /clientes - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/clientes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /clientes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /clientes", 0, err)
		return
	}

	h.logger.Info("POST /clientes - Client created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/clientes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /clientes/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/clientes/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /clientes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /clientes/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/clientes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /clientes/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /clientes/{id} - Client deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, clientsService.ErrClientNotFound):
		handlers.RespondNotFound(w, msgClientNotFound)

	case errors.Is(err, clientsService.ErrDNITaken):
		h.logger.Warn("%s - DNI already registered", op)
		handlers.RespondConflict(w, msgDNITaken)

	case errors.Is(err, clientsService.ErrClientHasReservations):
		h.logger.Warn("%s - Client has reservations: id=%d", op, id)
		handlers.RespondBadRequest(w, msgClientHasReservations)

	case errors.Is(err, clientsService.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
