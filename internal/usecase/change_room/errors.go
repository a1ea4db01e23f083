package change_room

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("change_room: reservation not found")

	// ErrRoomNotFound возвращается, когда новый номер не найден
	ErrRoomNotFound = errors.New("change_room: room not found")

	// ErrInvalidStatus возвращается, когда гость уже заселен или бронирование закрыто
	ErrInvalidStatus = errors.New("change_room: room can only be changed before check-in")

	// ErrRoomNotAvailable возвращается, когда новый номер не в состоянии DISPONIBLE
	ErrRoomNotAvailable = errors.New("change_room: target room is not available")

	// ErrOverlap возвращается, когда новый номер занят в период бронирования
	ErrOverlap = errors.New("change_room: target room is booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_room: internal error")
)
