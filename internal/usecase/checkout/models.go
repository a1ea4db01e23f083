package checkout

import "github.com/m04kA/SMC-HotelService/internal/service/reservations/models"

// Request запрос на выезд
type Request struct {
	ReservationID int64
}

// Response бронирование после выезда. EarlyCheckout истинно,
// если гость уехал раньше и сумма пересчитана
type Response struct {
	models.ReservationResponse
	EarlyCheckout bool `json:"salida_anticipada"`
}
