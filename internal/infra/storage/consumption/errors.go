package consumption

import "errors"

var (
	// ErrConsumptionNotFound возвращается, когда строка расхода не найдена
	ErrConsumptionNotFound = errors.New("consumption.repository: consumption not found")

	// ErrInvalidReference бронирование или товар строки не существует
	ErrInvalidReference = errors.New("consumption.repository: referenced row does not exist")

	// ErrConstraint значение нарушает CHECK ограничение таблицы
	ErrConstraint = errors.New("consumption.repository: check constraint violated")

	ErrBuildQuery = errors.New("consumption.repository: failed to build query")
	ErrExecQuery  = errors.New("consumption.repository: failed to execute query")
	ErrScanRow    = errors.New("consumption.repository: failed to scan row")
)
