package courier

import (
	"context"
	"errors"
	"fmt"

	"sevenfour/internal/entities"
	"sevenfour/internal/service/scheduling"
)

// Courier binds and unbinds couriers on active delivery schedules.
// Assignment never touches delivery status or capacity.
type Courier struct {
	repository   Repository
	scheduleRepo ScheduleRepository
	txManager    TxManager
}

func New(repository Repository, scheduleRepo ScheduleRepository, txManager TxManager) *Courier {
	return &Courier{
		repository:   repository,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
	}
}

func (s *Courier) AssignCourier(ctx context.Context, ref entities.OrderRef, courierID int64) (*entities.Schedule, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.Schedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		if courier.Status != entities.CourierActive {
			return ErrCourierInactive
		}

		schedule, err := s.scheduleRepo.GetActiveByRef(ctx, ref)
		if err != nil {
			if errors.Is(err, scheduling.ErrScheduleNotFound) {
				return ErrNoActiveSchedule
			}
			return fmt.Errorf("get active schedule: %w", err)
		}

		updated, err = s.scheduleRepo.Update(ctx, schedule.ID, entities.ScheduleModify{
			CourierID: &courier.ID,
		})
		if err != nil {
			return fmt.Errorf("assign courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UnassignCourier clears the courier reference. Calling it on a schedule
// without a courier is a no-op.
func (s *Courier) UnassignCourier(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error) {
	schedule, err := s.scheduleRepo.GetActiveByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, scheduling.ErrScheduleNotFound) {
			return nil, ErrNoActiveSchedule
		}
		return nil, fmt.Errorf("get active schedule: %w", err)
	}

	if schedule.CourierID == nil {
		return schedule, nil
	}

	updated, err := s.scheduleRepo.Update(ctx, schedule.ID, entities.ScheduleModify{
		ClearCourier: true,
	})
	if err != nil {
		return nil, fmt.Errorf("unassign courier: %w", err)
	}
	return updated, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}
	return couriers, nil
}
