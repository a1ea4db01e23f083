package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlap возвращается, когда ограничение БД обнаружило пересечение активных бронирований
	ErrOverlap = errors.New("reservation.repository: overlapping active reservation")

	// ErrSerialization возвращается при конфликте сериализуемых транзакций
	ErrSerialization = errors.New("reservation.repository: concurrent update conflict")

	// ErrInvalidReference возвращается, если номер или гость не существуют
	ErrInvalidReference = errors.New("reservation.repository: room or client does not exist")

	ErrBuildQuery = errors.New("reservation.repository: failed to build query")
	ErrExecQuery  = errors.New("reservation.repository: failed to execute query")
	ErrScanRow    = errors.New("reservation.repository: failed to scan row")
)
