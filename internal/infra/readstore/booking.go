package readstore

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingViewQueries interface {
	ListBookingSummaries(ctx context.Context, db pgsql.DBTX, arg pgsql.ListBookingSummariesParams) ([]pgsql.BookingSummaryRow, error)
	GetHotelBookingDetail(ctx context.Context, db pgsql.DBTX, arg pgsql.BookingDetailParams) (pgsql.HotelBookingDetailRow, error)
	GetCarBookingDetail(ctx context.Context, db pgsql.DBTX, arg pgsql.BookingDetailParams) (pgsql.CarBookingDetailRow, error)
	GetFlightBookingDetail(ctx context.Context, db pgsql.DBTX, arg pgsql.BookingDetailParams) (pgsql.FlightBookingDetailRow, error)
	ListFlightBookingSeats(ctx context.Context, db pgsql.DBTX, bookingID uuid.UUID) ([]pgsql.FlightBookingSeatRow, error)
	ListPaymentsByBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.ListPaymentsByBookingParams) ([]pgsql.Payment, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      pgsql.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db pgsql.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindSummaries(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingSummaryView, error) {
	params := pgsql.ListBookingSummariesParams{
		UserID:  pgconv.UUIDPtrToPgtype(filter.UserID),
		AfterID: pgconv.UUIDPtrToPgtype(filter.AfterID),
		Limit:   filter.Limit,
	}
	if filter.Kind != nil {
		params.Kind = filter.Kind.String()
	}
	if filter.AfterCreatedAt != nil {
		params.AfterCreatedAt = pgconv.TimePtrToPgtype(filter.AfterCreatedAt)
	}

	rows, err := r.queries.ListBookingSummaries(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingSummaryView, len(rows))
	for i, row := range rows {
		views[i] = &queries.BookingSummaryView{
			Kind:          row.Kind,
			ID:            row.ID,
			Reference:     row.ReferenceNumber,
			UserID:        row.UserID,
			Title:         row.Title,
			StartDate:     formatDate(row.StartDate.Valid, pgconv.DateFromPgtype(row.StartDate)),
			EndDate:       formatDate(row.EndDate.Valid, pgconv.DateFromPgtype(row.EndDate)),
			TotalPrice:    money(row.TotalPrice),
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			ContactEmail:  row.ContactEmail,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *BookingReadStore) FindDetail(ctx context.Context, kind booking.Kind, reference string, userID *uuid.UUID) (*queries.BookingDetailView, error) {
	params := pgsql.BookingDetailParams{
		Reference: reference,
		UserID:    pgconv.UUIDPtrToPgtype(userID),
	}

	var (
		view *queries.BookingDetailView
		err  error
	)
	switch kind {
	case booking.KindHotel:
		view, err = r.hotelDetail(ctx, params)
	case booking.KindCar:
		view, err = r.carDetail(ctx, params)
	case booking.KindFlight:
		view, err = r.flightDetail(ctx, params)
	default:
		return nil, infra.WrapRepoErr("unknown booking kind", nil, infra.KindNotFound)
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking detail", err)
	}

	payments, err := r.queries.ListPaymentsByBooking(ctx, r.db, pgsql.ListPaymentsByBookingParams{
		BookingKind: kind.String(),
		BookingID:   view.ID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking payments", err)
	}
	view.Payments = make([]*queries.PaymentView, len(payments))
	for i, p := range payments {
		view.Payments[i] = &queries.PaymentView{
			ID:                p.ID,
			BookingKind:       p.BookingKind,
			BookingID:         p.BookingID,
			BookingReference:  view.Reference,
			Amount:            money(p.Amount),
			Currency:          p.Currency,
			Status:            p.Status,
			Provider:          p.Provider,
			ProviderReference: p.ProviderReference,
			CreatedAt:         pgconv.TimeFromPgtype(p.CreatedAt),
		}
	}
	return view, nil
}

func (r *BookingReadStore) hotelDetail(ctx context.Context, params pgsql.BookingDetailParams) (*queries.BookingDetailView, error) {
	row, err := r.queries.GetHotelBookingDetail(ctx, r.db, params)
	if err != nil {
		return nil, err
	}
	return &queries.BookingDetailView{
		Kind:             booking.KindHotel.String(),
		ID:               row.ID,
		Reference:        row.ReferenceNumber,
		UserID:           row.UserID,
		TotalPrice:       money(row.TotalPrice),
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		PaymentReference: row.PaymentReference,
		ContactEmail:     row.ContactEmail,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		Hotel: &queries.HotelStayView{
			HotelID:         row.HotelID,
			HotelName:       row.HotelName,
			RoomTypeID:      row.RoomTypeID,
			RoomType:        row.RoomType,
			CheckIn:         booking.FormatDate(row.CheckIn),
			CheckOut:        booking.FormatDate(row.CheckOut),
			Rooms:           row.Rooms,
			Guests:          row.Guests,
			Surname:         row.Surname,
			SpecialRequests: row.SpecialRequests,
		},
	}, nil
}

func (r *BookingReadStore) carDetail(ctx context.Context, params pgsql.BookingDetailParams) (*queries.BookingDetailView, error) {
	row, err := r.queries.GetCarBookingDetail(ctx, r.db, params)
	if err != nil {
		return nil, err
	}
	return &queries.BookingDetailView{
		Kind:             booking.KindCar.String(),
		ID:               row.ID,
		Reference:        row.ReferenceNumber,
		UserID:           row.UserID,
		TotalPrice:       money(row.TotalPrice),
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		PaymentReference: row.PaymentReference,
		ContactEmail:     row.ContactEmail,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		Car: &queries.CarRentalView{
			CarID:           row.CarID,
			Company:         row.Company,
			Model:           row.Model,
			PickupDate:      booking.FormatDate(row.PickupDate),
			DropoffDate:     booking.FormatDate(row.DropoffDate),
			PickupLocation:  row.PickupLocation,
			DropoffLocation: row.DropoffLocation,
			PickupAddress:   row.PickupAddress,
			PickupTime:      pgconv.TimeOfDayFromPgtype(row.PickupTime),
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			ContactNumber:   row.ContactNumber,
		},
	}, nil
}

func (r *BookingReadStore) flightDetail(ctx context.Context, params pgsql.BookingDetailParams) (*queries.BookingDetailView, error) {
	row, err := r.queries.GetFlightBookingDetail(ctx, r.db, params)
	if err != nil {
		return nil, err
	}
	seats, err := r.queries.ListFlightBookingSeats(ctx, r.db, row.ID)
	if err != nil {
		return nil, err
	}
	seatViews := make([]*queries.SeatAssignmentView, len(seats))
	for i, s := range seats {
		seatViews[i] = &queries.SeatAssignmentView{
			Leg:               s.Leg,
			SeatNumber:        s.SeatNumber,
			FirstName:         s.FirstName,
			LastName:          s.LastName,
			ContactNumber:     s.ContactNumber,
			DateOfBirth:       formatDate(s.DateOfBirth.Valid, pgconv.DateFromPgtype(s.DateOfBirth)),
			MainLuggageWeight: weight(s.MainLuggageWeight),
			HandLuggageWeight: weight(s.HandLuggageWeight),
			LuggageFee:        money(s.LuggageFee),
		}
	}
	return &queries.BookingDetailView{
		Kind:             booking.KindFlight.String(),
		ID:               row.ID,
		Reference:        row.ReferenceNumber,
		UserID:           row.UserID,
		TotalPrice:       money(row.TotalPrice),
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		PaymentReference: row.PaymentReference,
		ContactEmail:     row.ContactEmail,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		Flight: &queries.FlightTripView{
			FlightID:      row.FlightID,
			Code:          row.Code,
			Origin:        row.Origin,
			Destination:   row.Destination,
			DepartureTime: row.DepartureTime,
			ArrivalTime:   row.ArrivalTime,
			Passengers:    row.Passengers,
			RoundTrip:     row.RoundTrip,
			NotifyAdmin:   row.NotifyAdmin,
			Seats:         seatViews,
		},
	}, nil
}

func weight(d decimal.Decimal) string {
	return d.StringFixed(2)
}
