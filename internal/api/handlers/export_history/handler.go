package export_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	exportHistory "github.com/m04kA/SMC-HotelService/internal/usecase/export_history"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgInvalidDate  = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidRange = "fecha_fin no puede ser anterior a fecha_inicio"
)

type Handler struct {
	useCase ExportHistoryUseCase
	logger  Logger
}

func NewHandler(useCase ExportHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/historial/export?fecha_inicio=&fecha_fin=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "fecha_inicio")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "fecha_fin")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportHistory.Request{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, exportHistory.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /reservas/historial/export - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondFile(w, xlsxContentType, result.FileName, result.Content)
}
