package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type DashboardViewQueries interface {
	CountBookingsByKind(ctx context.Context, db pgsql.DBTX) (pgsql.CountBookingsByKindRow, error)
	GetPaymentTotals(ctx context.Context, db pgsql.DBTX) (pgsql.PaymentTotalsRow, error)
	ListRecentPayments(ctx context.Context, db pgsql.DBTX, limit int32) ([]pgsql.RecentPaymentRow, error)
}

type DashboardReadStore struct {
	queries DashboardViewQueries
	db      pgsql.DBTX
}

func NewDashboardReadStore(queries DashboardViewQueries, db pgsql.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) CountBookings(ctx context.Context) (queries.BookingCounts, error) {
	row, err := r.queries.CountBookingsByKind(ctx, r.db)
	if err != nil {
		return queries.BookingCounts{}, infra.WrapRepoErr("failed to count bookings", err)
	}
	return queries.BookingCounts{Hotel: row.Hotel, Car: row.Car, Flight: row.Flight}, nil
}

func (r *DashboardReadStore) PaymentTotals(ctx context.Context) (string, int64, error) {
	row, err := r.queries.GetPaymentTotals(ctx, r.db)
	if err != nil {
		return "", 0, infra.WrapRepoErr("failed to total payments", err)
	}
	return money(row.Revenue), row.Pending, nil
}

func (r *DashboardReadStore) RecentPayments(ctx context.Context, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListRecentPayments(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent payments", err)
	}
	views := make([]*queries.PaymentView, len(rows))
	for i, p := range rows {
		views[i] = &queries.PaymentView{
			ID:                p.ID,
			BookingKind:       p.BookingKind,
			BookingID:         p.BookingID,
			BookingReference:  p.ReferenceNumber,
			Amount:            money(p.Amount),
			Currency:          p.Currency,
			Status:            p.Status,
			Provider:          p.Provider,
			ProviderReference: p.ProviderReference,
			CreatedAt:         pgconv.TimeFromPgtype(p.CreatedAt),
		}
	}
	return views, nil
}
