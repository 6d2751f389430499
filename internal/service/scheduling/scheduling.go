package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sevenfour/internal/entities"
)

// Scheduler books and rebooks deliveries. Scheduling is idempotent per
// order: an existing active schedule is updated in place, never duplicated.
type Scheduler struct {
	repository  Repository
	orderSource OrderSource
	ledger      CapacityLedger
	txManager   TxManager
}

func New(
	repository Repository,
	orderSource OrderSource,
	ledger CapacityLedger,
	txManager TxManager,
) *Scheduler {
	return &Scheduler{
		repository:  repository,
		orderSource: orderSource,
		ledger:      ledger,
		txManager:   txManager,
	}
}

// Schedule books req.OrderRef for req.DeliveryDate, or reschedules the
// existing active schedule. The capacity check and the schedule write commit
// in one transaction; the old date's slot frees implicitly because the
// ledger derives counts from schedule rows.
func (s *Scheduler) Schedule(ctx context.Context, req entities.ScheduleRequest) (*entities.Schedule, error) {
	if !isValidRequest(req) {
		return nil, ErrMissingRequiredFields
	}

	day := entities.DateOnly(req.DeliveryDate)
	if day.Before(entities.DateOnly(time.Now().UTC())) {
		return nil, ErrInvalidDate
	}

	order, err := s.orderSource.ResolveOrigin(ctx, req.OrderRef)
	if err != nil {
		return nil, fmt.Errorf("resolve order: %w", err)
	}

	var scheduled *entities.Schedule
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetActiveByRef(ctx, req.OrderRef)
		switch {
		case err == nil:
			scheduled, err = s.reschedule(ctx, existing, req)
			return err
		case errors.Is(err, ErrScheduleNotFound):
			scheduled, err = s.book(ctx, order, req, day)
			return err
		default:
			return fmt.Errorf("get active schedule: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return scheduled, nil
}

func (s *Scheduler) book(ctx context.Context, order *entities.DeliverableOrder, req entities.ScheduleRequest, day time.Time) (*entities.Schedule, error) {
	if err := s.ledger.Reserve(ctx, day, 0); err != nil {
		return nil, err
	}

	status := entities.DeliveryScheduled
	scheduleModify := entities.ScheduleModify{
		OrderRef:     &req.OrderRef,
		OrderNumber:  &order.OrderNumber,
		DeliveryDate: &day,
		TimeSlot:     req.TimeSlot,
		Status:       &status,
		CourierID:    req.CourierID,
		Address:      &req.Address,
		Notes:        &req.Notes,
	}

	schedule, err := s.repository.Insert(ctx, scheduleModify)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	return schedule, nil
}

func (s *Scheduler) reschedule(ctx context.Context, existing *entities.Schedule, req entities.ScheduleRequest) (*entities.Schedule, error) {
	day := entities.DateOnly(req.DeliveryDate)

	// Excluding the row itself keeps a same-date reschedule from counting
	// twice against its own slot.
	if err := s.ledger.Reserve(ctx, day, existing.ID); err != nil {
		return nil, err
	}

	scheduleModify := entities.ScheduleModify{
		DeliveryDate: &day,
		TimeSlot:     req.TimeSlot,
		CourierID:    req.CourierID,
		Address:      &req.Address,
		Notes:        &req.Notes,
	}

	if existing.Status == entities.DeliveryPending || existing.Status == entities.DeliveryDelayed {
		status := entities.DeliveryScheduled
		scheduleModify.Status = &status
	}

	schedule, err := s.repository.Update(ctx, existing.ID, scheduleModify)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}
	return schedule, nil
}
