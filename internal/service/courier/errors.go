package courier

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrCourierNotFound  = errors.New("courier not found")
	ErrCourierInactive  = errors.New("courier is not active")
	ErrNoActiveSchedule = errors.New("order has no active delivery schedule")
)
