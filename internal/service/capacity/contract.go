//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_test
package capacity

import (
	"context"
	"time"

	"sevenfour/internal/entities"
)

type Repository interface {
	// LockDate takes a per-date advisory lock held until the enclosing
	// transaction commits. Callers must be inside a transaction.
	LockDate(ctx context.Context, date time.Time) error

	CountActiveByDate(ctx context.Context, date time.Time) (int, error)
	CountActiveByDateExcluding(ctx context.Context, date time.Time, scheduleID int64) (int, error)
	MonthlyActiveCounts(ctx context.Context, year int, month time.Month) ([]entities.CapacityDay, error)
}

type Cache interface {
	GetCalendar(ctx context.Context, year int, month time.Month) ([]entities.CapacityDay, bool, error)
	SetCalendar(ctx context.Context, year int, month time.Month, days []entities.CapacityDay) error
}
