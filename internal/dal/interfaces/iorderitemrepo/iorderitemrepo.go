package iorderitemrepo

import (
	"context"

	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
)

// IOrderItemRepository is an interface for the order item postgres repository.
type IOrderItemRepository interface {
	BulkInsert(ctx context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error)
	Query(ctx context.Context, filter *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error)
}
