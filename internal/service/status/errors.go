package status

import (
	"errors"
	"fmt"

	"sevenfour/internal/entities"
)

var (
	ErrInvalidTransition = errors.New("illegal delivery status transition")
	ErrUndefinedStatus   = errors.New("unknown delivery status")
)

// InvalidTransitionError names the current and requested status so the HTTP
// layer can explain the rejection.
type InvalidTransitionError struct {
	From entities.DeliveryStatusType
	To   entities.DeliveryStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal delivery status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
