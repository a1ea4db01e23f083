package change_room

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}
	return nil
}
