// Package payment is the bridge to the card payment provider. Handlers
// depend on IntentCreator only; the stripe SDK stays behind it.
package payment

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/NOMAN1802/ibooking/internal/apperr"
)

// IntentCreator obtains a client secret for a checkout of the given
// price, expressed in major currency units.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripeIntents creates card payment intents against the Stripe API.
type StripeIntents struct {
	api *client.API
}

func NewStripeIntents(secretKey string) *StripeIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntents{api: api}
}

// CreateIntent converts the price to minor units and asks the provider
// for a payment intent. Provider failures surface as PaymentProvider
// errors, never as a silent empty secret.
func (s *StripeIntents) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", apperr.Validation("price must be a positive amount")
	}
	amount := int64(math.Round(price * 100))

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperr.PaymentProvider("payment provider rejected the request", err)
	}
	return intent.ClientSecret, nil
}
