package order_status_changed

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
