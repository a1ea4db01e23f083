package billing

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationClosed возвращается при начислении на отмененное бронирование
	ErrReservationClosed = errors.New("reservation is cancelled")

	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive возвращается, когда товар выведен из продажи
	ErrProductInactive = errors.New("product is inactive")

	// ErrConsumptionNotFound возвращается, когда расход не найден
	ErrConsumptionNotFound = errors.New("consumption not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
