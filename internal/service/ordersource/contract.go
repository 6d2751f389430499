//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordersource_test
package ordersource

import (
	"context"

	"sevenfour/internal/entities"
)

type Repository interface {
	ListRegularOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error)
	ListCustomOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error)
	ListCustomDesigns(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliverableOrder, error)
	GetByRef(ctx context.Context, ref entities.OrderRef) (*entities.DeliverableOrder, error)
}
