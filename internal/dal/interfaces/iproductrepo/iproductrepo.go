package iproductrepo

import (
	"context"

	"github.com/storefront-labs/checkout-svc/internal/service/models/product"
)

// IProductRepository is an interface for the product postgres repository.
// Checkout only ever reads products; writes belong to the store management service.
type IProductRepository interface {
	Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)
}
