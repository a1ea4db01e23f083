package check_in

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	if req.Contact.IsEmpty() {
		return nil
	}

	if req.Contact.FullName != nil {
		name := strings.TrimSpace(*req.Contact.FullName)
		if n := utf8.RuneCountInString(name); n < domain.MinClientNameLength || n > domain.MaxClientNameLength {
			return fmt.Errorf("%w: nombre_completo must be %d-%d characters", ErrInvalidInput,
				domain.MinClientNameLength, domain.MaxClientNameLength)
		}
		req.Contact.FullName = &name
	}

	if req.Contact.Phone != nil && len(*req.Contact.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: telefono is too long", ErrInvalidInput)
	}

	return nil
}
