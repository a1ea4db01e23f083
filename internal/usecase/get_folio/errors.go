package get_folio

import "errors"

var (
	ErrReservationNotFound = errors.New("get_folio: reservation not found")
	ErrInvalidInput        = errors.New("get_folio: invalid input data")
	ErrInternal            = errors.New("get_folio: internal error")
)
