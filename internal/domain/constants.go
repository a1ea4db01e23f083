package domain

import "github.com/m04kA/SMC-HotelService/pkg/types"

// Date format used on the wire and in storage
const DateFormat = types.DateLayout

// Business validation constants
const (
	MinStayNights = 1
	MaxStayNights = 365

	MinDNILength        = 5
	MaxDNILength        = 20
	MinClientNameLength = 3
	MaxClientNameLength = 100
	MaxPhoneLength      = 20

	MaxRoomNumberLength  = 10
	MaxProductNameLength = 100
	MaxConceptLength     = 200

	MinSearchQueryLength = 2
)

// UnknownClientName is shown when a reservation references a client that no longer exists
const UnknownClientName = "Cliente desconocido"

// ActiveStatuses список статусов, которые занимают номер
// Используется в проверке пересечений и в ограничении БД
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusCheckedIn,
}

// HistoryStatuses список терминальных статусов для истории
var HistoryStatuses = []ReservationStatus{
	StatusFinalized,
	StatusCheckedOut,
	StatusCancelled,
}
