package change_room

// Request запрос на перенос бронирования в другой номер
type Request struct {
	ReservationID int64
	RoomID        int64
}
