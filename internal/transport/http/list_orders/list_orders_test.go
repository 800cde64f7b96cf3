package listorders_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	listorders "github.com/storefront-labs/checkout-svc/internal/transport/http/list_orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	gotFilter *order.QueryOrdersModel
	orders    []order.Order
}

func (f *fakeOrderService) GetOrders(
	_ context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	f.gotFilter = filter
	return f.orders, nil
}

func TestListOrders(t *testing.T) {
	orderID := uuid.New()
	svc := &fakeOrderService{
		orders: []order.Order{{ID: orderID, StoreID: "store-1", UserID: "user-1"}},
	}

	router := chi.NewRouter()
	router.Get("/api/{storeId}/orders", func(w http.ResponseWriter, r *http.Request) {
		listorders.ListOrders(w, r, svc)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders?userIds=user-1&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotFilter)
	assert.Equal(t, []string{"store-1"}, svc.gotFilter.StoreIds)
	assert.Equal(t, []string{"user-1"}, svc.gotFilter.UserIds)
	assert.Equal(t, 10, svc.gotFilter.Limit)

	var got []order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, orderID, got[0].ID)
}
