package payments

import (
	"context"

	"library-service/config"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

type CheckoutSession struct {
	ID  string
	URL string
}

type CheckoutCustomer struct {
	Name  string
	Email string
}

// CheckoutOpener is the narrow capability the handlers need from the
// payment processor: open a hosted checkout and look one up afterwards.
// Tests substitute a fake.
type CheckoutOpener interface {
	Open(ctx context.Context, productName string, amount decimal.Decimal, successURL, cancelURL string) (*CheckoutSession, error)
	Lookup(ctx context.Context, sessionID string) (*CheckoutCustomer, error)
}

// StripeOpener backs CheckoutOpener with Stripe checkout sessions.
type StripeOpener struct {
	cfg config.PaymentsConfig
}

func NewStripeOpener(cfg config.PaymentsConfig) *StripeOpener {
	stripe.Key = cfg.StripeSecretKey
	return &StripeOpener{cfg: cfg}
}

func (o *StripeOpener) Open(ctx context.Context, productName string, amount decimal.Decimal, successURL, cancelURL string) (*CheckoutSession, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(cents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return nil, err
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (o *StripeOpener) Lookup(ctx context.Context, sessionID string) (*CheckoutCustomer, error) {
	s, err := checkoutsession.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, err
	}

	out := &CheckoutCustomer{}
	if s.CustomerDetails != nil {
		out.Name = s.CustomerDetails.Name
		out.Email = s.CustomerDetails.Email
	}
	return out, nil
}
