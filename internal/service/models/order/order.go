package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
)

// Order represents a buyer's order in the system. It is created unpaid; the
// payment provider's webhook processor flips IsPaid out-of-band.
type Order struct {
	ID         uuid.UUID             `json:"id"`
	UserID     string                `json:"userId"`
	AddressID  string                `json:"addressId"`
	StoreID    string                `json:"storeId"`
	IsPaid     bool                  `json:"isPaid"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
	OrderItems []orderitem.OrderItem `json:"orderItems"`
}
