package checkout

import "github.com/google/uuid"

// ProductSelection is one product/quantity pair from the checkout request.
type ProductSelection struct {
	ProductID string
	Quantity  int
}

// Checkout carries everything the checkout flow needs for a single attempt.
type Checkout struct {
	StoreID    string
	UserID     string
	AddressID  string
	Selections []ProductSelection
}

// Result is the outcome of a successful checkout: the persisted order and the
// payment session URL the buyer is redirected to.
type Result struct {
	OrderID    uuid.UUID
	SessionURL string
}
