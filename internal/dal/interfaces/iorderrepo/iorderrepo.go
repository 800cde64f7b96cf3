package iorderrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
