package repository

import (
	"context"

	"travel-booking/internal/domain/flight"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FlightSeatQueries interface {
	ListFlightSeats(ctx context.Context, db pgsql.DBTX, flightID uuid.UUID) ([]pgsql.FlightSeat, error)
	LockUnreservedSeats(ctx context.Context, db pgsql.DBTX, arg pgsql.LockUnreservedSeatsParams) ([]pgsql.FlightSeat, error)
	MarkSeatsReserved(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) (int64, error)
	ReleaseSeats(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) (int64, error)
	CreateFlightSeats(ctx context.Context, db pgsql.DBTX, seats []pgsql.FlightSeat) (int64, error)
}

type FlightSeatRepository struct {
	queries FlightSeatQueries
}

func NewFlightSeatRepository(queries FlightSeatQueries) *FlightSeatRepository {
	return &FlightSeatRepository{queries: queries}
}

func (r *FlightSeatRepository) ListSeats(ctx context.Context, db pgsql.DBTX, flightID uuid.UUID) ([]*flight.Seat, error) {
	rows, err := r.queries.ListFlightSeats(ctx, db, flightID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list flight seats", err)
	}
	return seatsFromRows(rows), nil
}

func (r *FlightSeatRepository) LockUnreserved(ctx context.Context, db pgsql.DBTX, flightID uuid.UUID, leg flight.Leg, n int) ([]*flight.Seat, error) {
	limit, err := pgconv.Int32(n)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid seat count", err, infra.KindConflict)
	}
	rows, err := r.queries.LockUnreservedSeats(ctx, db, pgsql.LockUnreservedSeatsParams{
		FlightID: flightID,
		Leg:      leg.String(),
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock flight seats", err)
	}
	return seatsFromRows(rows), nil
}

func (r *FlightSeatRepository) MarkReserved(ctx context.Context, db pgsql.DBTX, seatIDs []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkSeatsReserved(ctx, db, seatIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reserve flight seats", err)
	}
	return n, nil
}

func (r *FlightSeatRepository) Release(ctx context.Context, db pgsql.DBTX, seatIDs []uuid.UUID) error {
	if len(seatIDs) == 0 {
		return nil
	}
	if _, err := r.queries.ReleaseSeats(ctx, db, seatIDs); err != nil {
		return infra.WrapRepoErr("failed to release flight seats", err)
	}
	return nil
}

func (r *FlightSeatRepository) CreateSeats(ctx context.Context, db pgsql.DBTX, seats []*flight.Seat) error {
	rows := make([]pgsql.FlightSeat, len(seats))
	for i, s := range seats {
		rows[i] = converter.SeatToInfra(s)
	}
	if _, err := r.queries.CreateFlightSeats(ctx, db, rows); err != nil {
		return infra.WrapRepoErr("failed to create flight seats", err)
	}
	return nil
}

func seatsFromRows(rows []pgsql.FlightSeat) []*flight.Seat {
	seats := make([]*flight.Seat, len(rows))
	for i, row := range rows {
		seats[i] = converter.SeatFromInfra(row)
	}
	return seats
}
