//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scheduling_test
package scheduling

import (
	"context"
	"time"

	"sevenfour/internal/entities"
)

type Repository interface {
	GetActiveByRef(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error)
	Insert(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
	Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
}

type OrderSource interface {
	ResolveOrigin(ctx context.Context, ref entities.OrderRef) (*entities.DeliverableOrder, error)
}

type CapacityLedger interface {
	Reserve(ctx context.Context, date time.Time, excludeScheduleID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
