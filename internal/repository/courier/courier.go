package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"sevenfour/internal/entities"
	"sevenfour/internal/service/courier"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `
		SELECT id, name, phone, vehicle_type, status, created_at, updated_at
		FROM couriers
		WHERE id = $1
	`

	var c CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.VehicleType, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&c), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `
		SELECT id, name, phone, vehicle_type, status, created_at, updated_at
		FROM couriers
		ORDER BY name ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}
	defer rows.Close()

	var couriers []entities.Courier
	for rows.Next() {
		var c CourierDB
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.VehicleType, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository scan error: %w", err)
		}
		couriers = append(couriers, *ToDomain(&c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository rows error: %w", err)
	}

	return couriers, nil
}
