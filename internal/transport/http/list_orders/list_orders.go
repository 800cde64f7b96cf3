package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
)

type service interface {
	GetOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}

type queryOrdersRequest struct {
	Ids     []uuid.UUID `schema:"ids,omitempty"`
	UserIds []string    `schema:"userIds,omitempty"`
	Limit   int         `schema:"limit,omitempty"`
	Offset  int         `schema:"offset,omitempty"`
}

func (q *queryOrdersRequest) ToModel(storeID string) *order.QueryOrdersModel {
	return &order.QueryOrdersModel{
		Ids:      q.Ids,
		UserIds:  q.UserIds,
		StoreIds: []string{storeID},
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	err := decoder.Decode(query, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	storeID := chi.URLParam(r, "storeId")

	orders, err := service.GetOrders(r.Context(), query.ToModel(storeID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting orders", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
