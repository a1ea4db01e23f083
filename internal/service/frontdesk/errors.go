package frontdesk

import "errors"

var (
	// ErrQueryTooShort возвращается, когда строка поиска короче двух символов
	ErrQueryTooShort = errors.New("search query too short")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
