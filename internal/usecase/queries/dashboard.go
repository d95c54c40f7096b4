package queries

import "context"

const recentPaymentsLimit = 10

type DashboardReadStore interface {
	CountBookings(ctx context.Context) (BookingCounts, error)
	// PaymentTotals returns the succeeded revenue and the count of initiated payments
	PaymentTotals(ctx context.Context) (string, int64, error)
	RecentPayments(ctx context.Context, limit int32) ([]*PaymentView, error)
}

type DashboardQueries interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

func (q *dashboardQueriesImpl) Overview(ctx context.Context) (*DashboardOverview, error) {
	counts, err := q.store.CountBookings(ctx)
	if err != nil {
		return nil, err
	}
	revenue, pending, err := q.store.PaymentTotals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := q.store.RecentPayments(ctx, recentPaymentsLimit)
	if err != nil {
		return nil, err
	}
	return &DashboardOverview{
		Counts:          counts,
		TotalRevenue:    revenue,
		PendingPayments: pending,
		RecentPayments:  recent,
	}, nil
}
