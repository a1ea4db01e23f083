package check_availability

import "errors"

var (
	ErrRoomNotFound = errors.New("check_availability: room not found")
	ErrInvalidDates = errors.New("check_availability: invalid date range")
	ErrInternal     = errors.New("check_availability: internal error")
)
