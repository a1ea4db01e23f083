package render_invoice

import "errors"

var (
	ErrReservationNotFound = errors.New("render_invoice: reservation not found")
	ErrInvalidInput        = errors.New("render_invoice: invalid input data")
	ErrInternal            = errors.New("render_invoice: internal error")
)
