package app

import (
	"context"
	"time"

	"sevenfour/internal/handlers/rest/calendar_get"
	"sevenfour/internal/handlers/rest/courier_assign_post"
	"sevenfour/internal/handlers/rest/courier_unassign_post"
	"sevenfour/internal/handlers/rest/couriers_get"
	"sevenfour/internal/handlers/rest/deliveries_get"
	"sevenfour/internal/handlers/rest/schedule_post"
	"sevenfour/internal/handlers/rest/status_post"
	"sevenfour/internal/handlers/tasks/schedule_overdue"
	"sevenfour/internal/pkg/config"
	"sevenfour/internal/pkg/redisclient"

	courierRepo "sevenfour/internal/repository/courier"
	orderRepo "sevenfour/internal/repository/order"
	scheduleRepo "sevenfour/internal/repository/schedule"
	capacityService "sevenfour/internal/service/capacity"
	courierService "sevenfour/internal/service/courier"
	ordersourceService "sevenfour/internal/service/ordersource"
	schedulingService "sevenfour/internal/service/scheduling"
	statusService "sevenfour/internal/service/status"

	"sevenfour/pkg/background"
	"sevenfour/pkg/logger"
	"sevenfour/pkg/querier"
	"sevenfour/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueInterval time.Duration
)

type Application struct {
	ServiceOrderSource ServiceOrderSource
	ServiceScheduler   ServiceScheduler
	ServiceStatus      ServiceStatus
	ServiceCourier     ServiceCourier
	ServiceCapacity    ServiceCapacity
	BackgroundWorkers  *background.Worker
}

type ServiceOrderSource interface {
	deliveries_get.Service
}

type ServiceScheduler interface {
	schedule_post.Service
}

type ServiceStatus interface {
	status_post.Service
}

type ServiceCourier interface {
	courier_assign_post.Service
	courier_unassign_post.Service
	couriers_get.Service
}

type ServiceCapacity interface {
	calendar_get.Service
}

// KafkaWorkerApp carries the status machine for the order-status worker.
// The worker cancels schedules only, so its ledger runs without the Redis
// cache.
type KafkaWorkerApp struct {
	StatusMachine *statusService.Machine
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideCalendarCache(redisClient *redis.Client, cfg *config.Config) *redisclient.CalendarCache {
	return redisclient.NewCalendarCache(redisClient, cfg.Redis.CalendarTTL)
}

func provideCapacityLedger(
	repository capacityService.Repository,
	cache capacityService.Cache,
	cfg *config.Config,
) *capacityService.Ledger {
	return capacityService.New(repository, cache, cfg.Delivery.MaxPerDay)
}

func provideWorkerCapacityLedger(
	repository capacityService.Repository,
	cfg *config.Config,
) *capacityService.Ledger {
	return capacityService.New(repository, nil, cfg.Delivery.MaxPerDay)
}

func provideServiceOrderSource(repository ordersourceService.Repository) *ordersourceService.OrderSource {
	return ordersourceService.New(repository)
}

func provideServiceScheduler(
	repository schedulingService.Repository,
	orderSource schedulingService.OrderSource,
	ledger schedulingService.CapacityLedger,
	txManager schedulingService.TxManager,
) *schedulingService.Scheduler {
	return schedulingService.New(repository, orderSource, ledger, txManager)
}

func provideServiceStatus(
	repository statusService.Repository,
	ledger statusService.CapacityLedger,
	txManager statusService.TxManager,
) *statusService.Machine {
	return statusService.New(repository, ledger, txManager)
}

func provideServiceCourier(
	repository courierService.Repository,
	scheduleRepository courierService.ScheduleRepository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, scheduleRepository, txManager)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.ScheduleOverdueInterval)
}

func provideScheduleOverdueTask(
	log logger.Logger,
	statusMachine schedule_overdue.Service,
	interval OverdueInterval,
) *schedule_overdue.ScheduleOverdue {
	return schedule_overdue.NewScheduleOverdue(log, statusMachine, time.Duration(interval))
}

func provideTaskList(
	scheduleOverdueTask *schedule_overdue.ScheduleOverdue,
) []background.Task {
	return []background.Task{
		scheduleOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
