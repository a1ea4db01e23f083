package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNumberTaken возвращается при дублировании номера комнаты
	ErrRoomNumberTaken = errors.New("room number already exists")

	// ErrRoomHasReservations возвращается при удалении номера с неотмененными бронированиями
	ErrRoomHasReservations = errors.New("room has non-cancelled reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
