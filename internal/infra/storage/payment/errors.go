package payment

import "errors"

var (
	// ErrInvalidReference бронирование оплаты не существует
	ErrInvalidReference = errors.New("payment.repository: reservation does not exist")

	// ErrConstraint сумма или метод нарушают CHECK ограничение
	ErrConstraint = errors.New("payment.repository: check constraint violated")

	ErrBuildQuery = errors.New("payment.repository: failed to build query")
	ErrExecQuery  = errors.New("payment.repository: failed to execute query")
	ErrScanRow    = errors.New("payment.repository: failed to scan row")
)
