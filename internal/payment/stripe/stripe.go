package stripe

import (
	"context"
	"fmt"
	"os"

	"github.com/storefront-labs/checkout-svc/internal/service/models/payment"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Provider creates hosted checkout sessions through the Stripe API.
type Provider struct {
	api *client.API
}

// MustNewProvider creates a new Stripe payment provider.
// The API key comes from the STRIPE_API_KEY environment variable.
func MustNewProvider() *Provider {
	apiKey := os.Getenv("STRIPE_API_KEY")
	if apiKey == "" {
		panic("STRIPE_API_KEY is not set")
	}

	api := &client.API{}
	api.Init(apiKey, nil)

	return &Provider{
		api: api,
	}
}

// CreateCheckoutSession opens a one-time-payment hosted session and returns
// its redirect URL. Phone number collection is disabled: the storefront
// gathers contact details itself.
func (p *Provider) CreateCheckoutSession(
	ctx context.Context,
	params payment.CreateSessionParams,
) (payment.Session, error) {
	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			Quantity: stripego.Int64(item.Quantity),
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency: stripego.String(item.Currency.Lower()),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(item.Name),
				},
				UnitAmount: stripego.Int64(item.UnitAmount),
			},
		})
	}

	sessionParams := &stripego.CheckoutSessionParams{
		LineItems: lineItems,
		Mode:      stripego.String(string(stripego.CheckoutSessionModePayment)),
		PhoneNumberCollection: &stripego.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripego.Bool(false),
		},
		SuccessURL: stripego.String(params.SuccessURL),
		CancelURL:  stripego.String(params.CancelURL),
	}
	sessionParams.Context = ctx

	for key, value := range params.Metadata {
		sessionParams.AddMetadata(key, value)
	}

	sess, err := p.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return payment.Session{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return payment.Session{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}
