package create_reservation

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request запрос на создание бронирования.
// Гость задается либо ClientID, либо данными Client (поиск по DNI, создание при отсутствии)
type Request struct {
	RoomID      int64
	ClientID    *int64
	Client      *ClientData
	EntryDate   types.Date
	ExitDate    types.Date
	NightlyRate *decimal.Decimal // переопределение тарифа номера
}

// ClientData данные гостя для регистрации вместе с бронированием
type ClientData struct {
	FullName string
	DNI      string
	Email    *string
	Phone    *string
}
