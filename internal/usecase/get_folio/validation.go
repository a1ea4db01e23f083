package get_folio

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	for i, item := range req.ManualItems {
		concept := strings.TrimSpace(item.Concept)
		if concept == "" || len(concept) > domain.MaxConceptLength {
			return fmt.Errorf("%w: manual item %d: concept is required", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: manual item %d: quantity must be positive", ErrInvalidInput, i)
		}
	}

	return nil
}
