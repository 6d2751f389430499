//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

import (
	"context"
	"time"

	"sevenfour/internal/entities"
)

type Repository interface {
	// GetCurrentByRef returns the active schedule for ref, or the most
	// recently touched cancelled one when no active row exists, so a
	// cancelled delivery can be restored or hard-hidden.
	GetCurrentByRef(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error)

	Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
	MarkOverdueDelayed(ctx context.Context) (int64, error)
}

type CapacityLedger interface {
	Reserve(ctx context.Context, date time.Time, excludeScheduleID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
