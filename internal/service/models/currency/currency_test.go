package currency_test

import (
	"testing"

	"github.com/storefront-labs/checkout-svc/internal/service/models/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cur, err := currency.ParseCurrency("INR")
	require.NoError(t, err)
	assert.Equal(t, currency.CurrencyINR, cur)

	_, err = currency.ParseCurrency("XYZ")
	assert.ErrorIs(t, err, currency.ErrInvalidCurrency)
}

func TestLower(t *testing.T) {
	assert.Equal(t, "inr", currency.CurrencyINR.Lower())
}
