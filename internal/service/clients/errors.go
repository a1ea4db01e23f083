package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда гость не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrDNITaken возвращается, когда DNI уже зарегистрирован
	ErrDNITaken = errors.New("dni already registered")

	// ErrClientHasReservations возвращается при удалении гостя с неотмененными бронированиями
	ErrClientHasReservations = errors.New("client has non-cancelled reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
