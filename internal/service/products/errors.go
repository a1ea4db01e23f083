package products

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameTaken       = errors.New("product name already exists")
	ErrInternal        = errors.New("service: internal error")
)
