package identity_test

import (
	"net/http/httptest"
	"testing"

	"github.com/storefront-labs/checkout-svc/internal/identity"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolver := identity.NewHeaderResolver()

	req := httptest.NewRequest("POST", "/api/store-1/checkout", nil)
	assert.Empty(t, resolver.Resolve(req))

	req.Header.Set("X-User-Id", "user-42")
	assert.Equal(t, "user-42", resolver.Resolve(req))
}
