package schedule_overdue

import (
	"context"
	"time"

	"sevenfour/pkg/logger"
)

type Service interface {
	MarkOverdueDelayed(ctx context.Context) (int64, error)
}

// ScheduleOverdue periodically flags scheduled deliveries whose date has
// passed as delayed.
type ScheduleOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewScheduleOverdue(log logger.Logger, service Service, interval time.Duration) *ScheduleOverdue {
	return &ScheduleOverdue{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ScheduleOverdue) TTL() time.Duration {
	return s.interval
}

func (s *ScheduleOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.MarkOverdueDelayed(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("delayed_schedules", rowsAffected),
		).Info("overdue schedules marked delayed")
	}

	return err
}

func (s *ScheduleOverdue) Info() string {
	return "schedule overdue marking"
}
