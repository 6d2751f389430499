package capacity

import (
	"context"
	"fmt"
	"time"

	"sevenfour/internal/entities"
)

// DefaultMaxPerDay is the hard cap on active deliveries per calendar date.
const DefaultMaxPerDay = 3

// Ledger answers how many deliveries are committed for a date and gates new
// bookings. Only the ledger mutates the per-date counter, and only within
// the scheduling or cancellation transaction boundary.
type Ledger struct {
	repository Repository
	cache      Cache
	maxPerDay  int
}

// New builds a Ledger. cache may be nil; the calendar view then always
// reads from the repository.
func New(repository Repository, cache Cache, maxPerDay int) *Ledger {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return &Ledger{
		repository: repository,
		cache:      cache,
		maxPerDay:  maxPerDay,
	}
}

func (l *Ledger) MaxPerDay() int {
	return l.maxPerDay
}

// CountActiveDeliveries returns the exact, unclamped count of schedules on
// date whose status still consumes a slot. Display capping belongs to the
// presentation layer.
func (l *Ledger) CountActiveDeliveries(ctx context.Context, date time.Time) (int, error) {
	count, err := l.repository.CountActiveByDate(ctx, entities.DateOnly(date))
	if err != nil {
		return 0, fmt.Errorf("count active deliveries: %w", err)
	}
	return count, nil
}

func (l *Ledger) CanBook(ctx context.Context, date time.Time) (bool, error) {
	count, err := l.CountActiveDeliveries(ctx, date)
	if err != nil {
		return false, err
	}
	return count < l.maxPerDay, nil
}

// Reserve is the check half of check-and-insert: it locks the date, counts
// committed slots and rejects with CapacityExceededError when the cap is
// reached. It must run inside the same transaction as the schedule write;
// the advisory lock serializes concurrent bookings for the date.
//
// excludeScheduleID skips the caller's own row, so a reschedule to the same
// date does not count twice against itself. Zero means no exclusion.
func (l *Ledger) Reserve(ctx context.Context, date time.Time, excludeScheduleID int64) error {
	day := entities.DateOnly(date)

	if err := l.repository.LockDate(ctx, day); err != nil {
		return fmt.Errorf("lock capacity date: %w", err)
	}

	var (
		count int
		err   error
	)
	if excludeScheduleID > 0 {
		count, err = l.repository.CountActiveByDateExcluding(ctx, day, excludeScheduleID)
	} else {
		count, err = l.repository.CountActiveByDate(ctx, day)
	}
	if err != nil {
		return fmt.Errorf("count active deliveries: %w", err)
	}

	if count >= l.maxPerDay {
		return &CapacityExceededError{
			Date:    day,
			Current: count,
			Max:     l.maxPerDay,
		}
	}

	return nil
}

// Calendar returns one CapacityDay per day of the month with the exact
// active count. Results may come from the cache; ledger decisions never do.
func (l *Ledger) Calendar(ctx context.Context, year int, month time.Month) ([]entities.CapacityDay, error) {
	if l.cache != nil {
		days, found, err := l.cache.GetCalendar(ctx, year, month)
		if err == nil && found {
			return days, nil
		}
	}

	counts, err := l.repository.MonthlyActiveCounts(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("monthly active counts: %w", err)
	}

	byDay := make(map[int]int, len(counts))
	for _, day := range counts {
		byDay[day.Date.Day()] = day.Count
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]entities.CapacityDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, entities.CapacityDay{
			Date:  time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
			Count: byDay[d],
			Max:   l.maxPerDay,
		})
	}

	if l.cache != nil {
		// best effort, the calendar is a convenience view
		_ = l.cache.SetCalendar(ctx, year, month, days)
	}

	return days, nil
}
