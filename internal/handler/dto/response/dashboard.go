package response

import (
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"
)

type BookingCountsResponse struct {
	Hotel  int64 `json:"hotel"`
	Car    int64 `json:"car"`
	Flight int64 `json:"flight"`
}

type DashboardOverviewResponse struct {
	Counts          BookingCountsResponse `json:"counts"`
	TotalRevenue    string                `json:"total_revenue"`
	PendingPayments int64                 `json:"pending_payments"`
	RecentPayments  []*PaymentResponse    `json:"recent_payments"`
}

func FromDashboardOverview(o *queries.DashboardOverview) *DashboardOverviewResponse {
	return &DashboardOverviewResponse{
		Counts: BookingCountsResponse{
			Hotel:  o.Counts.Hotel,
			Car:    o.Counts.Car,
			Flight: o.Counts.Flight,
		},
		TotalRevenue:    o.TotalRevenue,
		PendingPayments: o.PendingPayments,
		RecentPayments:  FromPaymentViews(o.RecentPayments),
	}
}

type DashboardBookingsResponse struct {
	Hotel  []*BookingSummaryResponse `json:"hotel"`
	Car    []*BookingSummaryResponse `json:"car"`
	Flight []*BookingSummaryResponse `json:"flight"`
}

func FromDashboardBookings(b *queries.DashboardBookings) *DashboardBookingsResponse {
	return &DashboardBookingsResponse{
		Hotel:  FromBookingSummaries(b.Hotel),
		Car:    FromBookingSummaries(b.Car),
		Flight: FromBookingSummaries(b.Flight),
	}
}

type BookingStatusResponse struct {
	Kind            string `json:"kind"`
	ReferenceNumber string `json:"reference_number"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
}

func FromBookingSnapshot(s *shared.BookingSnapshot) *BookingStatusResponse {
	return &BookingStatusResponse{
		Kind:            s.Kind.String(),
		ReferenceNumber: s.Reference,
		Status:          s.Status.String(),
		PaymentStatus:   s.PaymentStatus.String(),
	}
}
