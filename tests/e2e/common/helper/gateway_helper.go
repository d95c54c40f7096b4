//go:build e2e

package helper

import (
	"context"
	"sync/atomic"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/errs"
)

// DecliningGateway refuses every charge and counts the attempts.
type DecliningGateway struct {
	calls atomic.Int32
}

func (g *DecliningGateway) Charge(context.Context, payment.ChargeRequest) (*payment.ChargeResult, error) {
	g.calls.Add(1)
	return nil, errs.New("card declined")
}

func (g *DecliningGateway) Calls() int {
	return int(g.calls.Load())
}
