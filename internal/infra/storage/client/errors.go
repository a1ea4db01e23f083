package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда гость не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrDNITaken возвращается при дублировании документа
	ErrDNITaken = errors.New("client.repository: dni already registered")

	// ErrSerialization конфликт сериализуемой транзакции, запрос можно повторить
	ErrSerialization = errors.New("client.repository: serialization failure")

	ErrBuildQuery = errors.New("client.repository: failed to build query")
	ErrExecQuery  = errors.New("client.repository: failed to execute query")
	ErrScanRow    = errors.New("client.repository: failed to scan row")
)
