package ordersource

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"sevenfour/internal/entities"
)

// backRefPattern matches the legacy free-text annotation linking an orders
// row to its canonical custom_orders counterpart, e.g. "Reference: CUSTOM-0042".
// New rows carry the reference in the custom_order_ref column instead; the
// pattern stays for rows the one-time backfill could not parse.
var backRefPattern = regexp.MustCompile(`Reference:\s*([A-Za-z0-9-]+)`)

// OrderSource merges the three origin tables into one deduplicated view of
// deliverable orders. A logical order must never appear twice: a regular
// orders row back-referencing a custom order is a duplicate of that custom
// order, and the custom_orders record is authoritative.
type OrderSource struct {
	repository Repository
}

func New(repository Repository) *OrderSource {
	return &OrderSource{
		repository: repository,
	}
}

func (s *OrderSource) ListDeliverableOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error) {
	customOrders, err := s.repository.ListCustomOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list custom orders: %w", err)
	}

	customDesigns, err := s.repository.ListCustomDesigns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list custom designs: %w", err)
	}

	regularOrders, err := s.repository.ListRegularOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list regular orders: %w", err)
	}

	canonical := make(map[string]struct{}, len(customOrders))
	for _, order := range customOrders {
		canonical[order.OrderNumber] = struct{}{}
	}

	merged := make([]entities.DeliverableOrder, 0, len(customOrders)+len(customDesigns)+len(regularOrders))
	merged = append(merged, customOrders...)
	merged = append(merged, customDesigns...)

	for _, order := range regularOrders {
		if ref, ok := customOrderReference(order); ok {
			if _, exists := canonical[ref]; exists {
				continue
			}
		}
		merged = append(merged, order)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}

// ResolveOrigin maps a global order key back to its origin row.
func (s *OrderSource) ResolveOrigin(ctx context.Context, ref entities.OrderRef) (*entities.DeliverableOrder, error) {
	if !isValidRef(ref) {
		return nil, ErrInvalidOrderRef
	}

	order, err := s.repository.GetByRef(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve origin %s: %w", ref, err)
	}

	return order, nil
}

// customOrderReference extracts the custom order number an orders row points
// at, preferring the explicit column over the legacy notes annotation.
func customOrderReference(order entities.DeliverableOrder) (string, bool) {
	if order.Ref.Origin != entities.OriginRegular {
		return "", false
	}

	if order.CustomOrderRef != nil && *order.CustomOrderRef != "" {
		return *order.CustomOrderRef, true
	}

	match := backRefPattern.FindStringSubmatch(order.Notes)
	if len(match) == 2 {
		return match[1], true
	}

	return "", false
}
