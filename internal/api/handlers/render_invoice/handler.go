package render_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	renderInvoice "github.com/m04kA/SMC-HotelService/internal/usecase/render_invoice"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
)

type Handler struct {
	useCase RenderInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase RenderInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/{id}/factura
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &renderInvoice.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, renderInvoice.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservas/{id}/factura - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondFile(w, "application/pdf", result.FileName, result.Content)
}
