//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_assign_post_test
package courier_assign_post

import (
	"context"

	"sevenfour/internal/entities"
	"sevenfour/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignCourier(ctx context.Context, ref entities.OrderRef, courierID int64) (*entities.Schedule, error)
}
