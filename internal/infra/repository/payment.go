package repository

import (
	"context"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db pgsql.DBTX, arg pgsql.CreatePaymentParams) (uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, db pgsql.DBTX, rec *payment.Record) error {
	params, err := converter.PaymentToInfra(rec)
	if err != nil {
		return infra.WrapRepoErr("invalid payment metadata", err, infra.KindConflict)
	}
	if _, err := r.queries.CreatePayment(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create payment record", err)
	}
	return nil
}
