package check_in

import "github.com/m04kA/SMC-HotelService/internal/domain"

// Request запрос на заселение. Contact позволяет поправить данные гостя у стойки
type Request struct {
	ReservationID int64
	Contact       *domain.ClientContactUpdate
}
