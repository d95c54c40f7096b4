//go:build unit

package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

type fakeIntents struct {
	got    *stripe.PaymentIntentParams
	intent *stripe.PaymentIntent
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = params
	return f.intent, f.err
}

func chargeRequest() payment.ChargeRequest {
	token := "pm_card_visa"
	return payment.ChargeRequest{
		Amount:       booking.MustParseMoney("360.00"),
		Currency:     "usd",
		Description:  "Hotel booking HTL-0001",
		Metadata:     map[string]string{"booking_kind": "hotel"},
		Token:        &token,
		ReceiptEmail: "guest@example.com",
	}
}

func TestGateway_WithoutKeyUsesTestProvider(t *testing.T) {
	g := NewGateway(config.PaymentConfig{})

	res, err := g.Charge(context.Background(), chargeRequest())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, payment.ProviderTest, res.Provider)
	assert.True(t, strings.HasPrefix(res.Reference, testReferencePrefix))
	assert.Len(t, res.Reference, len(testReferencePrefix)+12)
	assert.Equal(t, "hotel", res.Metadata["booking_kind"])
}

func TestGateway_Charge(t *testing.T) {
	tests := []struct {
		name        string
		intent      *stripe.PaymentIntent
		err         error
		wantErr     bool
		wantSuccess bool
		wantProv    payment.Provider
	}{
		{
			name:        "succeeded intent",
			intent:      &stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded, ClientSecret: "sec"},
			wantSuccess: true,
			wantProv:    payment.ProviderStripe,
		},
		{
			name:        "requires capture counts as success",
			intent:      &stripe.PaymentIntent{ID: "pi_2", Status: stripe.PaymentIntentStatusRequiresCapture},
			wantSuccess: true,
			wantProv:    payment.ProviderStripe,
		},
		{
			name:        "requires payment method is not a success",
			intent:      &stripe.PaymentIntent{ID: "pi_3", Status: stripe.PaymentIntentStatusRequiresPaymentMethod},
			wantSuccess: false,
			wantProv:    payment.ProviderStripe,
		},
		{
			name:        "bad key falls back to test provider",
			err:         &stripe.Error{HTTPStatusCode: http.StatusUnauthorized, Msg: "Invalid API Key"},
			wantSuccess: true,
			wantProv:    payment.ProviderTest,
		},
		{
			name:    "card declined",
			err:     &stripe.Error{HTTPStatusCode: http.StatusPaymentRequired, Msg: "card declined"},
			wantErr: true,
		},
		{
			name:    "network failure",
			err:     errors.New("connection reset"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeIntents{intent: tt.intent, err: tt.err}
			g := &Gateway{intents: fake, fallback: NewTestProvider()}

			res, err := g.Charge(context.Background(), chargeRequest())

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantProv, res.Provider)
		})
	}
}

func TestGateway_IntentParams(t *testing.T) {
	fake := &fakeIntents{intent: &stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded}}
	g := &Gateway{intents: fake, fallback: NewTestProvider()}

	_, err := g.Charge(context.Background(), chargeRequest())
	require.NoError(t, err)

	p := fake.got
	require.NotNil(t, p)
	assert.Equal(t, int64(36000), *p.Amount)
	assert.Equal(t, "usd", *p.Currency)
	assert.Equal(t, "pm_card_visa", *p.PaymentMethod)
	assert.True(t, *p.Confirm)
	assert.Equal(t, "guest@example.com", *p.ReceiptEmail)
	assert.Equal(t, "hotel", p.Metadata["booking_kind"])
}

func TestGateway_NoTokenDoesNotConfirm(t *testing.T) {
	fake := &fakeIntents{intent: &stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}}
	g := &Gateway{intents: fake, fallback: NewTestProvider()}
	req := chargeRequest()
	req.Token = nil

	_, err := g.Charge(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, fake.got.PaymentMethod)
	assert.Nil(t, fake.got.Confirm)
}
