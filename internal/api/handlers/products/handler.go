package products

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	productsService "github.com/m04kA/SMC-HotelService/internal/service/products"
	"github.com/m04kA/SMC-HotelService/internal/service/products/models"
)

const (
	msgInvalidProductID = "ID de producto inválido"
	msgProductNotFound  = "producto no encontrado"
	msgNameTaken        = "ya existe un producto con ese nombre"
	msgNegativePrice    = "el precio no puede ser negativo"
	msgInvalidFilter    = "parámetro solo_activos inválido"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/productos?solo_activos=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "solo_activos", false)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /productos - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/productos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /productos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	if req.Price.IsNegative() {
		handlers.RespondBadRequest(w, msgNegativePrice)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /productos", 0, err)
		return
	}

	h.logger.Info("POST /productos - Product created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/productos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /productos/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/productos/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req models.UpdateProductRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /productos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		handlers.RespondBadRequest(w, msgNegativePrice)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /productos/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/productos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /productos/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /productos/{id} - Product deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, productsService.ErrProductNotFound):
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, productsService.ErrNameTaken):
		handlers.RespondConflict(w, msgNameTaken)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
