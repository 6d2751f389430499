package ordersource

import "errors"

var (
	ErrInvalidOrderRef = errors.New("invalid order reference")
	ErrOrderNotFound   = errors.New("order not found")
)
