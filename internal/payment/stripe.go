// Package payment holds the external checkout-session collaborator. It is
// outside the record core: handlers depend on the SessionCreator interface
// and deployment config supplies every parameter.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/product"

	"schoolbook/internal/shared"
)

// SessionCreator creates a payable checkout session and returns the URL the
// client should be redirected to.
type SessionCreator interface {
	CreatePayableSession(ctx context.Context) (string, error)
}

// StripeCreator implements SessionCreator against the Stripe API with the
// product -> price -> checkout session flow.
type StripeCreator struct {
	cfg shared.PaymentConfig
}

func NewStripeCreator(cfg shared.PaymentConfig) *StripeCreator {
	stripe.Key = cfg.StripeSecretKey
	return &StripeCreator{cfg: cfg}
}

func (c *StripeCreator) CreatePayableSession(ctx context.Context) (string, error) {
	productParams := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(c.cfg.ProductName),
	}
	productParams.SetIdempotencyKey(uuid.NewString())

	prod, err := product.New(productParams)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	priceParams := &stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(c.cfg.AmountCents),
		Currency:   stripe.String(c.cfg.Currency),
	}
	priceParams.SetIdempotencyKey(uuid.NewString())

	pr, err := price.New(priceParams)
	if err != nil {
		return "", fmt.Errorf("failed to create price: %w", err)
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(pr.ID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(c.cfg.SuccessURL),
		CancelURL:     stripe.String(c.cfg.CancelURL),
		CustomerEmail: stripe.String(c.cfg.CustomerEmail),
	}
	sessionParams.SetIdempotencyKey(uuid.NewString())

	sess, err := session.New(sessionParams)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess.URL, nil
}
