package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkoutUC "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgInvalidStatus        = "solo se puede hacer checkout de reservas con check-in"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservas/{id}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, checkoutUC.ErrInvalidStatus):
			h.logger.Warn("PUT /reservas/{id}/checkout - Invalid status: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /reservas/{id}/checkout - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id}/checkout - Reservation id=%d finalized, early=%t", result.ID, result.EarlyCheckout)
	handlers.RespondJSON(w, http.StatusOK, result)
}
