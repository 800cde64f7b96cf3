package checkout

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	checkoutmodel "github.com/storefront-labs/checkout-svc/internal/service/models/checkout"
)

// service is an interface for the service layer.
type service interface {
	Checkout(ctx context.Context, model checkoutmodel.Checkout) (checkoutmodel.Result, error)
}

// identityResolver extracts the caller's user id from request headers.
type identityResolver interface {
	Resolve(r *http.Request) string
}

// The storefront is a separate origin, so the checkout endpoint carries a
// fixed permissive CORS header set on preflight and success responses.
func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// orderProductInRequest is one product/quantity pair in a checkout request.
type orderProductInRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// checkoutRequest represents a checkout request.
type checkoutRequest struct {
	AddressID     string                  `json:"addressId"     validate:"required"`
	OrderProducts []orderProductInRequest `json:"orderProducts" validate:"required,min=1"`
}

// Validate validates the checkout request.
func (r *checkoutRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts checkoutRequest to the service layer checkout model.
func (r *checkoutRequest) toModel(storeID, userID string) checkoutmodel.Checkout {
	selections := make([]checkoutmodel.ProductSelection, len(r.OrderProducts))
	for i, p := range r.OrderProducts {
		selections[i] = checkoutmodel.ProductSelection{
			ProductID: p.ID,
			Quantity:  p.Quantity,
		}
	}

	return checkoutmodel.Checkout{
		StoreID:    storeID,
		UserID:     userID,
		AddressID:  r.AddressID,
		Selections: selections,
	}
}

// checkoutResponse carries the payment session redirect URL.
type checkoutResponse struct {
	URL string `json:"url"`
}

// Preflight answers the CORS preflight inquiry with an empty JSON body.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	writeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write([]byte("{}")); err != nil {
		slog.Error("Error writing preflight response", "error", err)
	}
}

// Checkout handles the checkout submission.
func Checkout(w http.ResponseWriter, r *http.Request, service service, identity identityResolver) {
	userID := identity.Resolve(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusForbidden)

		return
	}

	req := checkoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for checkout", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		// Report the first failing field the way the storefront expects.
		msg := "address id required"
		if len(req.OrderProducts) == 0 {
			msg = "product ids are required"
		}
		http.Error(w, msg, http.StatusBadRequest)
		slog.Error("Error validating request body for checkout", "error", err)

		return
	}

	storeID := chi.URLParam(r, "storeId")

	result, err := service.Checkout(r.Context(), req.toModel(storeID, userID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error performing checkout", "error", err)

		return
	}

	writeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(checkoutResponse{URL: result.SessionURL}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for checkout", "error", err)
	}
}
