package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"sevenfour/internal/entities"
	"sevenfour/internal/service/scheduling"
	"sevenfour/internal/service/status"
	"sevenfour/pkg/logger"
)

type Handler struct {
	statusMachine            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statusMachine Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statusMachine:            statusMachine,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled); the unmarked message is
// reprocessed after the rebalance.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("origin", event.OriginType),
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	// Only upstream cancellations concern delivery scheduling.
	if event.Status != upstreamCancelled {
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed processing")

	ref := entities.OrderRef{
		Origin: entities.OriginType(event.OriginType),
		ID:     event.OrderID,
	}

	schedule, err := h.statusMachine.Transition(ctx, ref, entities.DeliveryCancelled, nil)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, scheduling.ErrScheduleNotFound):
			msgLog.Info("order.status.changed: order has no delivery schedule, nothing to cancel")

		case errors.Is(err, status.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed: schedule not cancellable from its current status")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to cancel schedule")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", ref.String()),
		logger.NewField("schedule", schedule.ID),
		logger.NewField("current_status", schedule.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: schedule cancelled")

	sess.MarkMessage(message, "")
	return false
}
