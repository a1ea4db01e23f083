package check_in

import "errors"

var (
	ErrReservationNotFound = errors.New("check_in: reservation not found")
	ErrInvalidStatus       = errors.New("check_in: only pending reservations can be checked in")
	ErrRoomBlocked         = errors.New("check_in: room is in cleaning or maintenance")
	ErrClientNotFound      = errors.New("check_in: client not found")
	ErrInvalidInput        = errors.New("check_in: invalid input data")
	ErrInternal            = errors.New("check_in: internal error")
)
