package identity

import (
	"net/http"

	"github.com/spf13/viper"
)

// HeaderResolver extracts the caller's user identity from request headers.
// The gateway in front of this service authenticates the session and
// forwards the resolved user id in a trusted header.
type HeaderResolver struct {
	header string
}

// NewHeaderResolver creates a resolver reading the configured user header.
func NewHeaderResolver() *HeaderResolver {
	header := viper.GetString("auth.user_header")
	if header == "" {
		header = "X-User-Id"
	}

	return &HeaderResolver{
		header: header,
	}
}

// Resolve returns the caller's user id, or an empty string when the request
// carries no identity.
func (r *HeaderResolver) Resolve(req *http.Request) string {
	return req.Header.Get(r.header)
}
