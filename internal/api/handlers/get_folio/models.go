package get_folio

import getFolio "github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"

// PreviewRequest строки, которые нужно добавить к счету без сохранения
type PreviewRequest struct {
	ManualItems []getFolio.ManualItem `json:"items_manuales" validate:"dive"`
}
