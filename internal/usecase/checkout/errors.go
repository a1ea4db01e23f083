package checkout

import "errors"

var (
	ErrReservationNotFound = errors.New("checkout: reservation not found")
	ErrInvalidStatus       = errors.New("checkout: only checked-in reservations can be checked out")
	ErrInvalidInput        = errors.New("checkout: invalid input data")
	ErrInternal            = errors.New("checkout: internal error")
)
