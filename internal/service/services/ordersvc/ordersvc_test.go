package ordersvc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderrepo"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders    []order.Order
	gotFilter *order.QueryOrdersModel
}

func (f *fakeOrderRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	return o, nil
}

func (f *fakeOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	f.gotFilter = filter
	return f.orders, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeOrderItemRepo struct {
	items []orderitem.OrderItem
}

func (f *fakeOrderItemRepo) BulkInsert(
	_ context.Context,
	items []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	return items, nil
}

func (f *fakeOrderItemRepo) Query(
	_ context.Context,
	_ *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	return f.items, nil
}

type fakeUOW struct {
	orderRepo     *fakeOrderRepo
	orderItemRepo *fakeOrderItemRepo
}

func (f *fakeUOW) OrderRepository() iorderrepo.IOrderRepository {
	return f.orderRepo
}

func (f *fakeUOW) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return f.orderItemRepo
}

func TestGetOrders_StitchesItemsByOrderID(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()

	work := &fakeUOW{
		orderRepo: &fakeOrderRepo{
			orders: []order.Order{
				{ID: firstID, StoreID: "store-1"},
				{ID: secondID, StoreID: "store-1"},
			},
		},
		orderItemRepo: &fakeOrderItemRepo{
			items: []orderitem.OrderItem{
				{ID: uuid.New(), OrderID: secondID, ProductID: "p-2", Quantity: 1},
				{ID: uuid.New(), OrderID: firstID, ProductID: "p-1", Quantity: 2},
			},
		},
	}

	svc := MustNewOrderService(
		WithUnitOfWorkFactory(func() unitOfWork { return work }),
	)

	orders, err := svc.GetOrders(context.Background(), &order.QueryOrdersModel{
		StoreIds: []string{"store-1"},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.Len(t, orders[0].OrderItems, 1)
	assert.Equal(t, "p-1", orders[0].OrderItems[0].ProductID)
	require.Len(t, orders[1].OrderItems, 1)
	assert.Equal(t, "p-2", orders[1].OrderItems[0].ProductID)

	assert.Equal(t, []string{"store-1"}, work.orderRepo.gotFilter.StoreIds)
}

func TestGetOrders_Empty(t *testing.T) {
	work := &fakeUOW{
		orderRepo:     &fakeOrderRepo{},
		orderItemRepo: &fakeOrderItemRepo{},
	}

	svc := MustNewOrderService(
		WithUnitOfWorkFactory(func() unitOfWork { return work }),
	)

	orders, err := svc.GetOrders(context.Background(), &order.QueryOrdersModel{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}
