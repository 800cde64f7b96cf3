package payment

import "github.com/storefront-labs/checkout-svc/internal/service/models/currency"

// LineItem describes one purchasable unit of a checkout session.
type LineItem struct {
	Name       string
	Currency   currency.Currency
	UnitAmount int64
	Quantity   int64
}

// CreateSessionParams carries everything needed to open a hosted session.
type CreateSessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Session is the provider-hosted checkout session the buyer is redirected to.
type Session struct {
	ID  string
	URL string
}
