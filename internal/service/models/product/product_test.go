package product_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-labs/checkout-svc/internal/service/models/product"
	"github.com/stretchr/testify/assert"
)

func TestUnitAmountMinor(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		want  int64
	}{
		{name: "whole units", price: decimal.NewFromInt(250), want: 25000},
		{name: "fractional price", price: decimal.RequireFromString("19.99"), want: 1999},
		{name: "zero", price: decimal.Zero, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := product.Product{Price: tt.price}
			assert.Equal(t, tt.want, p.UnitAmountMinor())
		})
	}
}
