package status

import (
	"context"
	"fmt"
	"time"

	"sevenfour/internal/entities"
)

// Machine governs legal delivery status transitions and their side effects.
type Machine struct {
	repository Repository
	ledger     CapacityLedger
	txManager  TxManager
}

func New(repository Repository, ledger CapacityLedger, txManager TxManager) *Machine {
	return &Machine{
		repository: repository,
		ledger:     ledger,
		txManager:  txManager,
	}
}

// Transition moves the order's schedule to newStatus.
//
// Side effects per target status:
//   - delivered: stamps DeliveredAt, schedule becomes terminal.
//   - cancelled: frees the date's capacity slot (counts derive from status),
//     courier reference stays for history.
//   - delayed: keeps the slot consumed until rescheduled or cancelled.
//   - scheduled (restore/reschedule): re-validates capacity for the
//     schedule's date before committing.
func (m *Machine) Transition(ctx context.Context, ref entities.OrderRef, newStatus entities.DeliveryStatusType, notes *string) (*entities.Schedule, error) {
	if !isKnownStatus(newStatus) {
		return nil, ErrUndefinedStatus
	}

	var updated *entities.Schedule
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		schedule, err := m.repository.GetCurrentByRef(ctx, ref)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		if !isLegalTransition(schedule.Status, newStatus) {
			return &InvalidTransitionError{From: schedule.Status, To: newStatus}
		}

		scheduleModify := entities.ScheduleModify{
			Status: &newStatus,
			Notes:  notes,
		}

		switch newStatus {
		case entities.DeliveryDelivered:
			now := time.Now().UTC()
			scheduleModify.DeliveredAt = &now

		case entities.DeliveryScheduled:
			// Restores from cancelled and reschedules from delayed must not
			// oversubscribe the day they land on.
			if err := m.ledger.Reserve(ctx, schedule.DeliveryDate, schedule.ID); err != nil {
				return err
			}
		}

		updated, err = m.repository.Update(ctx, schedule.ID, scheduleModify)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkOverdueDelayed flags scheduled deliveries whose date has passed as
// delayed. Ran periodically; replaces the manual patch scripts.
func (m *Machine) MarkOverdueDelayed(ctx context.Context) (int64, error) {
	rowsAffected, err := m.repository.MarkOverdueDelayed(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark overdue delayed: %w", err)
	}
	return rowsAffected, nil
}
