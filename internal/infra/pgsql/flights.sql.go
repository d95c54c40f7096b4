package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const flightColumns = `f.id, f.code, f.origin, f.destination, f.departure_time, f.arrival_time,
       f.return_code, f.return_origin, f.return_destination, f.return_departure_time, f.return_arrival_time,
       f.base_price, f.return_base_price, f.seat_capacity, f.description, f.is_active`

func flightScanTargets(i *Flight) []any {
	return []any{
		&i.ID,
		&i.Code,
		&i.Origin,
		&i.Destination,
		&i.DepartureTime,
		&i.ArrivalTime,
		&i.ReturnCode,
		&i.ReturnOrigin,
		&i.ReturnDestination,
		&i.ReturnDepartureTime,
		&i.ReturnArrivalTime,
		&i.BasePrice,
		&i.ReturnBasePrice,
		&i.SeatCapacity,
		&i.Description,
		&i.IsActive,
	}
}

const createFlight = `-- name: CreateFlight :one
INSERT INTO flights (
    id, code, origin, destination, departure_time, arrival_time,
    return_code, return_origin, return_destination, return_departure_time, return_arrival_time,
    base_price, return_base_price, seat_capacity, description
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id
`

type CreateFlightParams struct {
	ID                  uuid.UUID
	Code                string
	Origin              string
	Destination         string
	DepartureTime       time.Time
	ArrivalTime         time.Time
	ReturnCode          pgtype.Text
	ReturnOrigin        pgtype.Text
	ReturnDestination   pgtype.Text
	ReturnDepartureTime pgtype.Timestamptz
	ReturnArrivalTime   pgtype.Timestamptz
	BasePrice           decimal.Decimal
	ReturnBasePrice     decimal.Decimal
	SeatCapacity        int32
	Description         string
}

func (q *Queries) CreateFlight(ctx context.Context, db DBTX, arg CreateFlightParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createFlight,
		arg.ID,
		arg.Code,
		arg.Origin,
		arg.Destination,
		arg.DepartureTime,
		arg.ArrivalTime,
		arg.ReturnCode,
		arg.ReturnOrigin,
		arg.ReturnDestination,
		arg.ReturnDepartureTime,
		arg.ReturnArrivalTime,
		arg.BasePrice,
		arg.ReturnBasePrice,
		arg.SeatCapacity,
		arg.Description,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getFlightByID = `-- name: GetFlightByID :one
SELECT ` + flightColumns + `
FROM flights f
WHERE f.id = $1
`

func (q *Queries) GetFlightByID(ctx context.Context, db DBTX, id uuid.UUID) (Flight, error) {
	var i Flight
	err := db.QueryRow(ctx, getFlightByID, id).Scan(flightScanTargets(&i)...)
	return i, err
}

const updateFlightPricing = `-- name: UpdateFlightPricing :execrows
UPDATE flights
SET base_price = $2,
    return_base_price = $3,
    updated_at = NOW()
WHERE id = $1
`

type UpdateFlightPricingParams struct {
	ID              uuid.UUID
	BasePrice       decimal.Decimal
	ReturnBasePrice decimal.Decimal
}

func (q *Queries) UpdateFlightPricing(ctx context.Context, db DBTX, arg UpdateFlightPricingParams) (int64, error) {
	result, err := db.Exec(ctx, updateFlightPricing, arg.ID, arg.BasePrice, arg.ReturnBasePrice)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const searchFlights = `-- name: SearchFlights :many
SELECT ` + flightColumns + `, s.available
FROM flights f
JOIN LATERAL (
    SELECT COUNT(*)::int AS available
    FROM flight_seats fs
    WHERE fs.flight_id = f.id AND fs.leg = 'outbound' AND fs.is_reserved = FALSE
) s ON TRUE
WHERE f.is_active = TRUE
  AND ($1::text = '' OR f.origin ILIKE '%' || $1::text || '%')
  AND ($2::text = '' OR f.destination ILIKE '%' || $2::text || '%')
  AND ($3::date IS NULL OR f.departure_time::date = $3::date)
  AND ($4::date IS NULL OR f.return_departure_time::date = $4::date)
  AND s.available >= $5
ORDER BY f.departure_time
LIMIT $6
`

type SearchFlightsParams struct {
	Origin        string
	Destination   string
	DepartureDate pgtype.Date
	ReturnDate    pgtype.Date
	Passengers    int32
	Limit         int32
}

type SearchFlightsRow struct {
	Flight
	AvailableSeats int32
}

func (q *Queries) SearchFlights(ctx context.Context, db DBTX, arg SearchFlightsParams) ([]SearchFlightsRow, error) {
	rows, err := db.Query(ctx, searchFlights,
		arg.Origin,
		arg.Destination,
		arg.DepartureDate,
		arg.ReturnDate,
		arg.Passengers,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SearchFlightsRow{}
	for rows.Next() {
		var i SearchFlightsRow
		targets := append(flightScanTargets(&i.Flight), &i.AvailableSeats)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateFlightSeats bulk-loads seats with COPY.
func (q *Queries) CreateFlightSeats(ctx context.Context, db DBTX, seats []FlightSeat) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"flight_seats"},
		[]string{"id", "flight_id", "leg", "seat_number", "seat_class", "price_modifier", "is_reserved"},
		pgx.CopyFromSlice(len(seats), func(i int) ([]any, error) {
			s := seats[i]
			return []any{s.ID, s.FlightID, s.Leg, s.SeatNumber, s.SeatClass, s.PriceModifier, s.IsReserved}, nil
		}),
	)
}

const listFlightSeats = `-- name: ListFlightSeats :many
SELECT id, flight_id, leg, seat_number, seat_class, price_modifier, is_reserved
FROM flight_seats
WHERE flight_id = $1
ORDER BY leg, seat_number
`

func (q *Queries) ListFlightSeats(ctx context.Context, db DBTX, flightID uuid.UUID) ([]FlightSeat, error) {
	return q.querySeats(ctx, db, listFlightSeats, flightID)
}

const lockUnreservedSeats = `-- name: LockUnreservedSeats :many
SELECT id, flight_id, leg, seat_number, seat_class, price_modifier, is_reserved
FROM flight_seats
WHERE flight_id = $1 AND leg = $2 AND is_reserved = FALSE
ORDER BY seat_number
LIMIT $3
FOR UPDATE
`

type LockUnreservedSeatsParams struct {
	FlightID uuid.UUID
	Leg      string
	Limit    int32
}

func (q *Queries) LockUnreservedSeats(ctx context.Context, db DBTX, arg LockUnreservedSeatsParams) ([]FlightSeat, error) {
	return q.querySeats(ctx, db, lockUnreservedSeats, arg.FlightID, arg.Leg, arg.Limit)
}

const markSeatsReserved = `-- name: MarkSeatsReserved :execrows
UPDATE flight_seats
SET is_reserved = TRUE
WHERE id = ANY($1::uuid[]) AND is_reserved = FALSE
`

func (q *Queries) MarkSeatsReserved(ctx context.Context, db DBTX, ids []uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, markSeatsReserved, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseSeats = `-- name: ReleaseSeats :execrows
UPDATE flight_seats
SET is_reserved = FALSE
WHERE id = ANY($1::uuid[])
`

func (q *Queries) ReleaseSeats(ctx context.Context, db DBTX, ids []uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, releaseSeats, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (q *Queries) querySeats(ctx context.Context, db DBTX, query string, args ...any) ([]FlightSeat, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FlightSeat{}
	for rows.Next() {
		var i FlightSeat
		if err := rows.Scan(
			&i.ID,
			&i.FlightID,
			&i.Leg,
			&i.SeatNumber,
			&i.SeatClass,
			&i.PriceModifier,
			&i.IsReserved,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
