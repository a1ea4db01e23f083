package billing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	billingService "github.com/m04kA/SMC-HotelService/internal/service/billing"
	"github.com/m04kA/SMC-HotelService/internal/service/billing/models"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgInvalidConsumptionID = "ID de consumo inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgReservationClosed    = "la reserva está cancelada"
	msgProductNotFound      = "producto no encontrado"
	msgProductInactive      = "el producto no está activo"
	msgConsumptionNotFound  = "consumo no encontrado"
	msgInvalidConsumption   = "indique un producto o un concepto con precio"
	msgInvalidPayment       = "el monto debe ser mayor que cero"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListConsumptions GET /api/v1/reservas/{id}/consumos
func (h *Handler) ListConsumptions(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.ListConsumptions(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /reservas/{id}/consumos", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddConsumption POST /api/v1/reservas/{id}/consumos
func (h *Handler) AddConsumption(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.AddConsumptionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservas/{id}/consumos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.AddConsumption(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "POST /reservas/{id}/consumos", id, err)
		return
	}

	h.logger.Info("POST /reservas/{id}/consumos - Consumption added: reserva=%d, id=%d", id, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// DeleteConsumption DELETE /api/v1/consumos/{id}
func (h *Handler) DeleteConsumption(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidConsumptionID)
		return
	}

	if err := h.service.DeleteConsumption(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /consumos/{id}", id, err)
		return
	}

	handlers.RespondNoContent(w)
}

// ListPayments GET /api/v1/reservas/{id}/pagos
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.ListPayments(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /reservas/{id}/pagos", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddPayment POST /api/v1/reservas/{id}/pagos
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.AddPaymentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservas/{id}/pagos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.AddPayment(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "POST /reservas/{id}/pagos", id, err)
		return
	}

	h.logger.Info("POST /reservas/{id}/pagos - Payment registered: reserva=%d, monto=%s", id, result.Amount.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, billingService.ErrReservationNotFound):
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, billingService.ErrConsumptionNotFound):
		handlers.RespondNotFound(w, msgConsumptionNotFound)

	case errors.Is(err, billingService.ErrProductNotFound):
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, billingService.ErrReservationClosed):
		h.logger.Warn("%s - Reservation is cancelled: id=%d", op, id)
		handlers.RespondBadRequest(w, msgReservationClosed)

	case errors.Is(err, billingService.ErrProductInactive):
		handlers.RespondBadRequest(w, msgProductInactive)

	case errors.Is(err, billingService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		if op == "POST /reservas/{id}/pagos" {
			handlers.RespondBadRequest(w, msgInvalidPayment)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidConsumption)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
