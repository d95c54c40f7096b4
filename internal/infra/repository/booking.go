package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertHotelBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertHotelBookingParams) (uuid.UUID, error)
	InsertCarBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertCarBookingParams) (uuid.UUID, error)
	InsertFlightBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertFlightBookingParams) (uuid.UUID, error)
	CreateFlightBookingSeats(ctx context.Context, db pgsql.DBTX, seats []pgsql.FlightBookingSeat) (int64, error)
	UpdateBookingStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) CreateHotel(ctx context.Context, db pgsql.DBTX, b *hotel.Booking) (bool, error) {
	params, err := converter.HotelBookingToInfra(b)
	if err != nil {
		return false, infra.WrapRepoErr("invalid hotel booking", err, infra.KindConflict)
	}
	_, err = r.queries.InsertHotelBooking(ctx, db, params)
	return insertOutcome("hotel booking", err)
}

func (r *BookingRepository) CreateCar(ctx context.Context, db pgsql.DBTX, b *car.Booking) (bool, error) {
	params, err := converter.CarBookingToInfra(b)
	if err != nil {
		return false, infra.WrapRepoErr("invalid car booking", err, infra.KindConflict)
	}
	_, err = r.queries.InsertCarBooking(ctx, db, params)
	return insertOutcome("car booking", err)
}

// CreateFlight inserts the booking and bulk-loads its seat assignments.
func (r *BookingRepository) CreateFlight(ctx context.Context, db pgsql.DBTX, b *flight.Booking) (bool, error) {
	params, err := converter.FlightBookingToInfra(b)
	if err != nil {
		return false, infra.WrapRepoErr("invalid flight booking", err, infra.KindConflict)
	}
	_, err = r.queries.InsertFlightBooking(ctx, db, params)
	inserted, err := insertOutcome("flight booking", err)
	if !inserted || err != nil {
		return inserted, err
	}
	if _, err := r.queries.CreateFlightBookingSeats(ctx, db, converter.FlightBookingSeatsToInfra(b)); err != nil {
		return false, infra.WrapRepoErr("failed to create flight booking seats", err)
	}
	return true, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db pgsql.DBTX, kind booking.Kind, reference string, status booking.Status, paymentStatus booking.PaymentStatus) error {
	n, err := r.queries.UpdateBookingStatus(ctx, db, pgsql.UpdateBookingStatusParams{
		Kind:          kind.String(),
		Reference:     reference,
		Status:        status.String(),
		PaymentStatus: paymentStatus.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// insertOutcome maps ON CONFLICT DO NOTHING (no returned row) to inserted=false.
func insertOutcome(what string, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if pgconv.IsNoRows(err) {
		return false, nil
	}
	return false, infra.WrapRepoErr("failed to create "+what, err)
}
