package pmsclient

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

var (
	// ErrConflict номер занят: найдено предварительной проверкой или сервер ответил 409
	ErrConflict = errors.New("pmsclient: room is not available for the requested dates")

	// ErrNotFound сервер ответил 404
	ErrNotFound = errors.New("pmsclient: resource not found")

	// ErrBadRequest сервер отклонил запрос (400): неверные данные или недопустимый переход статуса
	ErrBadRequest = errors.New("pmsclient: request rejected")

	ErrInternal        = errors.New("pmsclient: internal error")
	ErrInvalidResponse = errors.New("pmsclient: invalid response")
)

// ConflictError результат предварительной проверки на клиенте
type ConflictError struct {
	ReservationID int64
	Date          types.Date
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: reservation %d occupies %s", ErrConflict, e.ReservationID, e.Date)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// APIError ответ сервера с кодом ошибки
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }
