package ordersvc

import (
	"context"
	"fmt"

	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/postgres"
	"github.com/storefront-labs/checkout-svc/internal/dal/uow"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
)

// OrderService serves order listings for the store administration surface.
type OrderService struct {
	pgClient *postgres.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		panic("order service requires a postgres client or a unit of work factory")
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(pgClient)
		}
	}
}

// WithUnitOfWorkFactory overrides the unit of work construction for tests.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// GetOrders retrieves orders with their items based on filter.
func (s *OrderService) GetOrders(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	itemFilter := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		itemFilter.OrderIds = append(itemFilter.OrderIds, o.ID)
	}

	orderItems, err := work.OrderItemRepository().Query(ctx, itemFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	for i := range orders {
		for _, item := range orderItems {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
			}
		}
	}

	return orders, nil
}
