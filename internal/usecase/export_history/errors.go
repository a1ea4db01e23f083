package export_history

import "errors"

var (
	ErrInvalidInput = errors.New("export_history: invalid input data")
	ErrInternal     = errors.New("export_history: internal error")
)
