package capacity

import (
	"errors"
	"fmt"
	"time"
)

var ErrCapacityExceeded = errors.New("daily delivery capacity exceeded")

// CapacityExceededError carries the exact counts so callers can surface
// "3/3, fully booked" to the user.
type CapacityExceededError struct {
	Date    time.Time
	Current int
	Max     int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("daily delivery capacity exceeded for %s: %d/%d",
		e.Date.Format("2006-01-02"), e.Current, e.Max)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
