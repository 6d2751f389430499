//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_post_test
package status_post

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
	Transition(ctx context.Context, ref entities.OrderRef, newStatus entities.DeliveryStatusType, notes *string) (*entities.Schedule, error)
}
