package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	checkoutmodel "github.com/storefront-labs/checkout-svc/internal/service/models/checkout"
	"github.com/storefront-labs/checkout-svc/internal/transport/http/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	gotModel checkoutmodel.Checkout
	result   checkoutmodel.Result
	err      error
}

func (f *fakeCheckoutService) Checkout(
	_ context.Context,
	model checkoutmodel.Checkout,
) (checkoutmodel.Result, error) {
	f.gotModel = model
	if f.err != nil {
		return checkoutmodel.Result{}, f.err
	}
	return f.result, nil
}

type fakeResolver struct {
	userID string
}

func (f *fakeResolver) Resolve(_ *http.Request) string {
	return f.userID
}

func newTestRouter(svc *fakeCheckoutService, resolver *fakeResolver) *chi.Mux {
	router := chi.NewRouter()
	router.Options("/api/{storeId}/checkout", checkout.Preflight)
	router.Post("/api/{storeId}/checkout", func(w http.ResponseWriter, r *http.Request) {
		checkout.Checkout(w, r, svc, resolver)
	})

	return router
}

func assertCORSHeaders(t *testing.T, header http.Header) {
	t.Helper()

	assert.Equal(t, "*", header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", header.Get("Access-Control-Allow-Headers"))
}

func TestPreflight(t *testing.T) {
	router := newTestRouter(&fakeCheckoutService{}, &fakeResolver{})

	req := httptest.NewRequest(http.MethodOptions, "/api/store-1/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", rec.Body.String())
	assertCORSHeaders(t, rec.Header())
}

func TestCheckout_Unauthorized(t *testing.T) {
	svc := &fakeCheckoutService{}
	router := newTestRouter(svc, &fakeResolver{userID: ""})

	body := `{"addressId":"addr-1","orderProducts":[{"id":"p-1","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/store-1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", strings.TrimSpace(rec.Body.String()))
	assert.Empty(t, svc.gotModel.Selections)
}

func TestCheckout_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "missing order products",
			body:     `{"addressId":"addr-1"}`,
			wantCode: http.StatusBadRequest,
			wantBody: "product ids are required",
		},
		{
			name:     "empty order products",
			body:     `{"addressId":"addr-1","orderProducts":[]}`,
			wantCode: http.StatusBadRequest,
			wantBody: "product ids are required",
		},
		{
			name:     "missing address id",
			body:     `{"orderProducts":[{"id":"p-1","quantity":1}]}`,
			wantCode: http.StatusBadRequest,
			wantBody: "address id required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeCheckoutService{}, &fakeResolver{userID: "user-1"})

			req := httptest.NewRequest(http.MethodPost, "/api/store-1/checkout", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	orderID := uuid.New()
	svc := &fakeCheckoutService{
		result: checkoutmodel.Result{
			OrderID:    orderID,
			SessionURL: "https://pay.example.com/session/cs_123",
		},
	}
	router := newTestRouter(svc, &fakeResolver{userID: "user-1"})

	body := `{"addressId":"addr-1","orderProducts":[{"id":"p-1","quantity":2},{"id":"p-2","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/store-1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assertCORSHeaders(t, rec.Header())

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example.com/session/cs_123", resp.URL)

	assert.Equal(t, "store-1", svc.gotModel.StoreID)
	assert.Equal(t, "user-1", svc.gotModel.UserID)
	assert.Equal(t, "addr-1", svc.gotModel.AddressID)
	require.Len(t, svc.gotModel.Selections, 2)
	assert.Equal(t, checkoutmodel.ProductSelection{ProductID: "p-1", Quantity: 2}, svc.gotModel.Selections[0])
	assert.Equal(t, checkoutmodel.ProductSelection{ProductID: "p-2", Quantity: 1}, svc.gotModel.Selections[1])
}

func TestCheckout_ServiceError(t *testing.T) {
	svc := &fakeCheckoutService{err: errors.New("payment provider unavailable")}
	router := newTestRouter(svc, &fakeResolver{userID: "user-1"})

	body := `{"addressId":"addr-1","orderProducts":[{"id":"p-1","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/store-1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
