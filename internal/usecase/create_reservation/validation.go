package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: habitacion_id must be positive", ErrInvalidInput)
	}

	if req.ClientID == nil && req.Client == nil {
		return fmt.Errorf("%w: cliente_id or cliente is required", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: cliente_id must be positive", ErrInvalidInput)
	}

	if req.ClientID == nil {
		dni := strings.TrimSpace(req.Client.DNI)
		if len(dni) < domain.MinDNILength || len(dni) > domain.MaxDNILength {
			return fmt.Errorf("%w: dni must be %d-%d characters", ErrInvalidInput, domain.MinDNILength, domain.MaxDNILength)
		}
		if len(strings.TrimSpace(req.Client.FullName)) < domain.MinClientNameLength {
			return fmt.Errorf("%w: nombre_completo is too short", ErrInvalidInput)
		}
	}

	if req.EntryDate.IsZero() || req.ExitDate.IsZero() {
		return fmt.Errorf("%w: fecha_entrada and fecha_salida are required", ErrInvalidInput)
	}

	if req.NightlyRate != nil && !req.NightlyRate.IsPositive() {
		return fmt.Errorf("%w: precio_noche must be positive", ErrInvalidInput)
	}

	// иначе БД округлит тариф и итог по отдельности, и счет разойдется с precio_total
	if req.NightlyRate != nil && !types.FitsMoneyScale(*req.NightlyRate) {
		return fmt.Errorf("%w: precio_noche has sub-cent precision", ErrInvalidInput)
	}

	return nil
}

// validateStay проверяет период проживания относительно сегодняшней даты
func validateStay(entry, exit, today types.Date) error {
	err := domain.ValidateNewStay(entry, exit, today)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrEntryInPast):
		return fmt.Errorf("%w: %s", ErrEntryInPast, entry)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
}
