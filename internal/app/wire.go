//go:build wireinject
// +build wireinject

package app

import (
	"context"

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

	"sevenfour/pkg/logger"
	"sevenfour/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueInterval,

		provideOrderRepository,
		provideScheduleRepository,
		provideCourierRepository,
		provideCalendarCache,

		provideCapacityLedger,
		provideServiceOrderSource,
		provideServiceScheduler,
		provideServiceStatus,
		provideServiceCourier,

		provideScheduleOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrderSource), new(*ordersourceService.OrderSource)),
		wire.Bind(new(ServiceScheduler), new(*schedulingService.Scheduler)),
		wire.Bind(new(ServiceStatus), new(*statusService.Machine)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceCapacity), new(*capacityService.Ledger)),

		wire.Bind(new(ordersourceService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(capacityService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(capacityService.Cache), new(*redisclient.CalendarCache)),
		wire.Bind(new(schedulingService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(schedulingService.OrderSource), new(*ordersourceService.OrderSource)),
		wire.Bind(new(schedulingService.CapacityLedger), new(*capacityService.Ledger)),
		wire.Bind(new(statusService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(statusService.CapacityLedger), new(*capacityService.Ledger)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.ScheduleRepository), new(*scheduleRepo.Repository)),

		wire.Bind(new(schedulingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statusService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(schedule_overdue.Service), new(*statusService.Machine)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideScheduleRepository,
		provideWorkerCapacityLedger,
		provideServiceStatus,

		wire.Bind(new(capacityService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(statusService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(statusService.CapacityLedger), new(*capacityService.Ledger)),
		wire.Bind(new(statusService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
