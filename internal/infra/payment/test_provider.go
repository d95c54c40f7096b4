package payment

import (
	"context"
	"log/slog"
	"strings"

	"travel-booking/internal/domain/payment"

	"github.com/google/uuid"
)

const testReferencePrefix = "test_"

// TestProvider approves every charge with a synthetic reference.
type TestProvider struct{}

func NewTestProvider() *TestProvider {
	return &TestProvider{}
}

func (TestProvider) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	ref := testReferencePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	slog.InfoContext(ctx, "using test payment provider", "amount", req.Amount.String(), "currency", req.Currency)
	return &payment.ChargeResult{
		Reference: ref,
		Status:    statusSucceeded,
		Success:   true,
		Provider:  payment.ProviderTest,
		Metadata:  req.Metadata,
	}, nil
}
