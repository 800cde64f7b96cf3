package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a purchasable product. Within the checkout flow it is
// read-only: products are created and priced by the store management service.
type Product struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"storeId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UnitAmountMinor converts the major-unit price to the smallest currency unit.
func (p *Product) UnitAmountMinor() int64 {
	return p.Price.Mul(decimal.NewFromInt(100)).IntPart()
}
