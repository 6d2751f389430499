package scheduling

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("delivery date must be today or later")

	ErrScheduleNotFound      = errors.New("delivery schedule not found")
	ErrOrderAlreadyScheduled = errors.New("order already has an active schedule")
)
