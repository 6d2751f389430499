//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"sevenfour/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
}

type ScheduleRepository interface {
	GetActiveByRef(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error)
	Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
