package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"sevenfour/internal/entities"
	"sevenfour/internal/service/ordersource"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository reads the three origin tables the shop backend owns. This
// service never writes them.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListRegularOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error) {
	builder := qb.
		Select(
			"id", "order_number", "customer_name", "email", "contact_number",
			"total_amount", "status", "shipping_address", "city", "province",
			"zip_code", "notes", "custom_order_ref", "created_at",
		).
		From("orders")

	builder = applyFilter(builder, filter, "orders", entities.OriginRegular, "order_number", "customer_name")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list regular error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list regular error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliverableOrder
	for rows.Next() {
		var o RegularOrderDB
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.Email, &o.ContactNumber,
			&o.TotalAmount, &o.Status, &o.ShippingAddr, &o.City, &o.Province,
			&o.ZipCode, &o.Notes, &o.CustomOrderRef, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, ToRegularDomain(&o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func (r *Repository) ListCustomOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error) {
	builder := qb.
		Select(
			"id", "custom_order_number", "customer_name", "customer_email",
			"customer_phone", "final_price", "status", "street_address",
			"city_municipality", "province", "postal_code", "created_at",
		).
		From("custom_orders")

	builder = applyFilter(builder, filter, "custom_orders", entities.OriginCustomOrder, "custom_order_number", "customer_name")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list custom orders error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list custom orders error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliverableOrder
	for rows.Next() {
		var o CustomOrderDB
		err := rows.Scan(
			&o.ID, &o.CustomOrderNumber, &o.CustomerName, &o.CustomerEmail,
			&o.CustomerPhone, &o.FinalPrice, &o.Status, &o.StreetAddress,
			&o.CityMunicipality, &o.Province, &o.PostalCode, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, ToCustomOrderDomain(&o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func (r *Repository) ListCustomDesigns(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error) {
	builder := qb.
		Select(
			"id", "design_number", "client_name", "client_email", "client_phone",
			"quoted_price", "status", "delivery_street", "delivery_city",
			"delivery_province", "delivery_postcode", "created_at",
		).
		From("custom_designs")

	builder = applyFilter(builder, filter, "custom_designs", entities.OriginCustomDesign, "design_number", "client_name")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list custom designs error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list custom designs error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliverableOrder
	for rows.Next() {
		var o CustomDesignDB
		err := rows.Scan(
			&o.ID, &o.DesignNumber, &o.ClientName, &o.ClientEmail, &o.ClientPhone,
			&o.QuotedPrice, &o.Status, &o.DeliveryStreet, &o.DeliveryCity,
			&o.DeliveryProvince, &o.DeliveryPostcode, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, ToCustomDesignDomain(&o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func (r *Repository) GetByRef(ctx context.Context, ref entities.OrderRef) (*entities.DeliverableOrder, error) {
	switch ref.Origin {
	case entities.OriginRegular:
		return r.getRegular(ctx, ref.ID)
	case entities.OriginCustomOrder:
		return r.getCustomOrder(ctx, ref.ID)
	case entities.OriginCustomDesign:
		return r.getCustomDesign(ctx, ref.ID)
	default:
		return nil, ordersource.ErrOrderNotFound
	}
}

func (r *Repository) getRegular(ctx context.Context, id int64) (*entities.DeliverableOrder, error) {
	query := `
		SELECT id, order_number, customer_name, email, contact_number,
		       total_amount, status, shipping_address, city, province,
		       zip_code, notes, custom_order_ref, created_at
		FROM orders
		WHERE id = $1
	`

	var o RegularOrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.Email, &o.ContactNumber,
		&o.TotalAmount, &o.Status, &o.ShippingAddr, &o.City, &o.Province,
		&o.ZipCode, &o.Notes, &o.CustomOrderRef, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordersource.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderDomain := ToRegularDomain(&o)
	return &orderDomain, nil
}

func (r *Repository) getCustomOrder(ctx context.Context, id int64) (*entities.DeliverableOrder, error) {
	query := `
		SELECT id, custom_order_number, customer_name, customer_email,
		       customer_phone, final_price, status, street_address,
		       city_municipality, province, postal_code, created_at
		FROM custom_orders
		WHERE id = $1
	`

	var o CustomOrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomOrderNumber, &o.CustomerName, &o.CustomerEmail,
		&o.CustomerPhone, &o.FinalPrice, &o.Status, &o.StreetAddress,
		&o.CityMunicipality, &o.Province, &o.PostalCode, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordersource.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderDomain := ToCustomOrderDomain(&o)
	return &orderDomain, nil
}

func (r *Repository) getCustomDesign(ctx context.Context, id int64) (*entities.DeliverableOrder, error) {
	query := `
		SELECT id, design_number, client_name, client_email, client_phone,
		       quoted_price, status, delivery_street, delivery_city,
		       delivery_province, delivery_postcode, created_at
		FROM custom_designs
		WHERE id = $1
	`

	var o CustomDesignDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.DesignNumber, &o.ClientName, &o.ClientEmail, &o.ClientPhone,
		&o.QuotedPrice, &o.Status, &o.DeliveryStreet, &o.DeliveryCity,
		&o.DeliveryProvince, &o.DeliveryPostcode, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordersource.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderDomain := ToCustomDesignDomain(&o)
	return &orderDomain, nil
}

// applyFilter adds the shared list predicates. The delivery date filter
// matches orders whose active schedule lands on that date.
func applyFilter(builder sq.SelectBuilder, filter entities.OrderFilter, table string, origin entities.OriginType, numberCol, nameCol string) sq.SelectBuilder {
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{numberCol: pattern},
			sq.ILike{nameCol: pattern},
		})
	}

	if filter.DeliveryDate != nil {
		builder = builder.Where(sq.Expr(
			`EXISTS (
				SELECT 1 FROM delivery_schedules_enhanced s
				WHERE s.origin_type = ?
				  AND s.order_id = `+table+`.id
				  AND s.delivery_date = ?
				  AND s.delivery_status NOT IN ('cancelled', 'removed')
			)`,
			origin.String(), entities.DateOnly(*filter.DeliveryDate),
		))
	}

	return builder.OrderBy("created_at DESC")
}
