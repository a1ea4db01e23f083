package get_folio

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	getFolio "github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgInvalidItems         = "ítems manuales inválidos"
)

type Handler struct {
	useCase GetFolioUseCase
	logger  Logger
}

func NewHandler(useCase GetFolioUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/{id}/cuenta
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	h.respond(w, r, "GET /reservas/{id}/cuenta", &getFolio.Request{ReservationID: reservationID})
}

// HandlePreview POST /api/v1/reservas/{id}/cuenta/preview
// Ничего не сохраняет: ручные строки участвуют только в расчете
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req PreviewRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservas/{id}/cuenta/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	h.respond(w, r, "POST /reservas/{id}/cuenta/preview", &getFolio.Request{
		ReservationID: reservationID,
		ManualItems:   req.ManualItems,
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, req *getFolio.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFolio.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, getFolio.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidItems)

		default:
			h.logger.Error("%s - Failed: reservation_id=%d, error=%v", op, req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - reservation_id=%d, status=%s", op, req.ReservationID, result.Totals.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
