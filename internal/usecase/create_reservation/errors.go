package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomBlocked возвращается, когда номер на уборке или обслуживании
	ErrRoomBlocked = errors.New("create_reservation: room is blocked")

	// ErrClientNotFound возвращается, когда гость с указанным ID не найден
	ErrClientNotFound = errors.New("create_reservation: client not found")

	// ErrInvalidDates возвращается при пустом или слишком длинном периоде
	ErrInvalidDates = errors.New("create_reservation: invalid stay dates")

	// ErrEntryInPast возвращается при дате заезда в прошлом
	ErrEntryInPast = errors.New("create_reservation: entry date is in the past")

	// ErrOverlap возвращается, когда номер уже занят в этот период
	ErrOverlap = errors.New("create_reservation: room is already booked for these dates")

	// ErrConcurrentRequest возвращается, когда тот же гость регистрируется параллельным запросом.
	// Повтор запроса найдет гостя по DNI
	ErrConcurrentRequest = errors.New("create_reservation: concurrent request, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
