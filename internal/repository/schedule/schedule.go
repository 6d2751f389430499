package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"sevenfour/internal/entities"
	"sevenfour/internal/repository"
	"sevenfour/internal/service/scheduling"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const scheduleColumns = `id, origin_type, order_id, order_number, delivery_date, time_slot,
	       delivery_status, courier_id, street, city, province, postal_code,
	       notes, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	query := `
		INSERT INTO delivery_schedules_enhanced
			(origin_type, order_id, order_number, delivery_date, time_slot,
			 delivery_status, courier_id, street, city, province, postal_code, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + scheduleColumns

	var (
		originType string
		orderID    int64
	)
	if scheduleModify.OrderRef != nil {
		originType = scheduleModify.OrderRef.Origin.String()
		orderID = scheduleModify.OrderRef.ID
	}

	var status *string
	if scheduleModify.Status != nil {
		s := scheduleModify.Status.String()
		status = &s
	}

	var street, city, province, postalCode *string
	if scheduleModify.Address != nil {
		street = &scheduleModify.Address.Street
		city = &scheduleModify.Address.City
		province = &scheduleModify.Address.Province
		if scheduleModify.Address.PostalCode != "" {
			postalCode = &scheduleModify.Address.PostalCode
		}
	}

	var deliveryDate *time.Time
	if scheduleModify.DeliveryDate != nil {
		d := entities.DateOnly(*scheduleModify.DeliveryDate)
		deliveryDate = &d
	}

	row := r.querier.QueryRow(
		ctx,
		query,
		originType,
		orderID,
		scheduleModify.OrderNumber,
		deliveryDate,
		scheduleModify.TimeSlot,
		status,
		scheduleModify.CourierID,
		street,
		city,
		province,
		postalCode,
		scheduleModify.Notes,
	)

	scheduleDB, err := scanSchedule(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, scheduling.ErrOrderAlreadyScheduled
		}
		return nil, fmt.Errorf("unexpected schedule repository insert error: %w", err)
	}

	return ToDomain(scheduleDB), nil
}

func (r *Repository) Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	builder := qb.
		Update("delivery_schedules_enhanced").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + scheduleColumns)

	if scheduleModify.OrderNumber != nil {
		builder = builder.Set("order_number", *scheduleModify.OrderNumber)
	}
	if scheduleModify.DeliveryDate != nil {
		builder = builder.Set("delivery_date", entities.DateOnly(*scheduleModify.DeliveryDate))
	}
	if scheduleModify.TimeSlot != nil {
		builder = builder.Set("time_slot", *scheduleModify.TimeSlot)
	}
	if scheduleModify.Status != nil {
		builder = builder.Set("delivery_status", scheduleModify.Status.String())
	}
	if scheduleModify.ClearCourier {
		builder = builder.Set("courier_id", nil)
	} else if scheduleModify.CourierID != nil {
		builder = builder.Set("courier_id", *scheduleModify.CourierID)
	}
	if scheduleModify.Address != nil {
		builder = builder.
			Set("street", scheduleModify.Address.Street).
			Set("city", scheduleModify.Address.City).
			Set("province", scheduleModify.Address.Province).
			Set("postal_code", scheduleModify.Address.PostalCode)
	}
	if scheduleModify.Notes != nil {
		builder = builder.Set("notes", *scheduleModify.Notes)
	}
	if scheduleModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *scheduleModify.DeliveredAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	scheduleDB, err := scanSchedule(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scheduling.ErrScheduleNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, scheduling.ErrOrderAlreadyScheduled
		}
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	return ToDomain(scheduleDB), nil
}

func (r *Repository) GetActiveByRef(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules_enhanced
		WHERE origin_type = $1
		  AND order_id = $2
		  AND delivery_status NOT IN ('cancelled', 'removed')
	`

	scheduleDB, err := scanSchedule(r.querier.QueryRow(ctx, query, ref.Origin.String(), ref.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scheduling.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get active error: %w", err)
	}

	return ToDomain(scheduleDB), nil
}

// GetCurrentByRef prefers the active row and falls back to the most
// recently touched cancelled one. Removed rows stay hidden for good.
func (r *Repository) GetCurrentByRef(ctx context.Context, ref entities.OrderRef) (*entities.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules_enhanced
		WHERE origin_type = $1
		  AND order_id = $2
		  AND delivery_status <> 'removed'
		ORDER BY (delivery_status <> 'cancelled') DESC, updated_at DESC
		LIMIT 1
	`

	scheduleDB, err := scanSchedule(r.querier.QueryRow(ctx, query, ref.Origin.String(), ref.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scheduling.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get current error: %w", err)
	}

	return ToDomain(scheduleDB), nil
}

// LockDate serializes capacity checks for one calendar date. The advisory
// lock is released when the surrounding transaction ends.
func (r *Repository) LockDate(ctx context.Context, date time.Time) error {
	query := `
		SELECT pg_advisory_xact_lock(hashtext($1))
	`

	_, err := r.querier.Exec(ctx, query, entities.DateOnly(date).Format(time.DateOnly))
	if err != nil {
		return fmt.Errorf("unexpected schedule repository lock date error: %w", err)
	}

	return nil
}

func (r *Repository) CountActiveByDate(ctx context.Context, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_schedules_enhanced
		WHERE delivery_date = $1
		  AND delivery_status NOT IN ('cancelled', 'removed')
	`

	var count int
	err := r.querier.QueryRow(ctx, query, entities.DateOnly(date)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountActiveByDateExcluding(ctx context.Context, date time.Time, scheduleID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_schedules_enhanced
		WHERE delivery_date = $1
		  AND delivery_status NOT IN ('cancelled', 'removed')
		  AND id <> $2
	`

	var count int
	err := r.querier.QueryRow(ctx, query, entities.DateOnly(date), scheduleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) MonthlyActiveCounts(ctx context.Context, year int, month time.Month) ([]entities.CapacityDay, error) {
	query := `
		SELECT delivery_date, COUNT(*)
		FROM delivery_schedules_enhanced
		WHERE delivery_date >= $1
		  AND delivery_date < $2
		  AND delivery_status NOT IN ('cancelled', 'removed')
		GROUP BY delivery_date
		ORDER BY delivery_date
	`

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := r.querier.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository monthly counts error: %w", err)
	}
	defer rows.Close()

	var days []entities.CapacityDay
	for rows.Next() {
		var day entities.CapacityDay
		if err := rows.Scan(&day.Date, &day.Count); err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan error: %w", err)
		}
		day.Date = entities.DateOnly(day.Date)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository rows error: %w", err)
	}

	return days, nil
}

func (r *Repository) MarkOverdueDelayed(ctx context.Context) (int64, error) {
	query := `
		UPDATE delivery_schedules_enhanced
		SET delivery_status = 'delayed',
		    updated_at = NOW()
		WHERE delivery_date < CURRENT_DATE
		  AND delivery_status = 'scheduled'
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository mark overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanSchedule(row pgx.Row) (*ScheduleDB, error) {
	var s ScheduleDB
	err := row.Scan(
		&s.ID, &s.OriginType, &s.OrderID, &s.OrderNumber, &s.DeliveryDate,
		&s.TimeSlot, &s.DeliveryStatus, &s.CourierID, &s.Street, &s.City,
		&s.Province, &s.PostalCode, &s.Notes, &s.DeliveredAt, &s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
