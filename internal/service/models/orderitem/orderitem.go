package orderitem

import "github.com/google/uuid"

// OrderItem represents one product/quantity pairing belonging to an order.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
}
