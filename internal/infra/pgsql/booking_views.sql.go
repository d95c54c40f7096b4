package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const listBookingSummaries = `-- name: ListBookingSummaries :many
SELECT x.kind, x.id, x.reference_number, x.user_id, x.title, x.start_date, x.end_date,
       x.total_price, x.status, x.payment_status, x.contact_email, x.created_at
FROM (
    SELECT 'hotel' AS kind, b.id, b.reference_number, b.user_id,
           h.name || ' (' || rt.room_type || ')' AS title,
           b.check_in AS start_date, b.check_out AS end_date,
           b.total_price, b.status, b.payment_status, b.contact_email, b.created_at
    FROM hotel_bookings b
    JOIN hotel_room_types rt ON rt.id = b.room_type_id
    JOIN hotels h ON h.id = rt.hotel_id
    UNION ALL
    SELECT 'car', b.id, b.reference_number, b.user_id,
           c.company || ' ' || c.model,
           b.pickup_date, b.dropoff_date,
           b.total_price, b.status, b.payment_status, b.contact_email, b.created_at
    FROM car_bookings b
    JOIN cars c ON c.id = b.car_id
    UNION ALL
    SELECT 'flight', b.id, b.reference_number, b.user_id,
           f.code || ' ' || f.origin || ' - ' || f.destination,
           f.departure_time::date, COALESCE(f.return_arrival_time, f.arrival_time)::date,
           b.total_price, b.status, b.payment_status, b.contact_email, b.created_at
    FROM flight_bookings b
    JOIN flights f ON f.id = b.flight_id
) x
WHERE ($1::uuid IS NULL OR x.user_id = $1::uuid)
  AND ($2::text = '' OR x.kind = $2::text)
  AND ($3::timestamptz IS NULL OR (x.created_at, x.id) < ($3::timestamptz, $4::uuid))
ORDER BY x.created_at DESC, x.id DESC
LIMIT $5
`

type ListBookingSummariesParams struct {
	UserID         pgtype.UUID
	Kind           string
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

type BookingSummaryRow struct {
	Kind            string
	ID              uuid.UUID
	ReferenceNumber string
	UserID          uuid.UUID
	Title           string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	TotalPrice      decimal.Decimal
	Status          string
	PaymentStatus   string
	ContactEmail    string
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) ListBookingSummaries(ctx context.Context, db DBTX, arg ListBookingSummariesParams) ([]BookingSummaryRow, error) {
	rows, err := db.Query(ctx, listBookingSummaries,
		arg.UserID,
		arg.Kind,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BookingSummaryRow{}
	for rows.Next() {
		var i BookingSummaryRow
		if err := rows.Scan(
			&i.Kind,
			&i.ID,
			&i.ReferenceNumber,
			&i.UserID,
			&i.Title,
			&i.StartDate,
			&i.EndDate,
			&i.TotalPrice,
			&i.Status,
			&i.PaymentStatus,
			&i.ContactEmail,
			&i.CreatedAt,
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

const getHotelBookingDetail = `-- name: GetHotelBookingDetail :one
SELECT b.id, b.reference_number, b.user_id, h.id, h.name, rt.id, rt.room_type,
       b.check_in, b.check_out, b.rooms, b.guests, b.surname, b.contact_email, b.special_requests,
       b.total_price, b.status, b.payment_status, b.payment_reference, b.created_at
FROM hotel_bookings b
JOIN hotel_room_types rt ON rt.id = b.room_type_id
JOIN hotels h ON h.id = rt.hotel_id
WHERE b.reference_number = $1
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
`

type BookingDetailParams struct {
	Reference string
	UserID    pgtype.UUID
}

type HotelBookingDetailRow struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	HotelID          uuid.UUID
	HotelName        string
	RoomTypeID       uuid.UUID
	RoomType         string
	CheckIn          time.Time
	CheckOut         time.Time
	Rooms            int32
	Guests           int32
	Surname          string
	ContactEmail     string
	SpecialRequests  string
	TotalPrice       decimal.Decimal
	Status           string
	PaymentStatus    string
	PaymentReference string
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) GetHotelBookingDetail(ctx context.Context, db DBTX, arg BookingDetailParams) (HotelBookingDetailRow, error) {
	row := db.QueryRow(ctx, getHotelBookingDetail, arg.Reference, arg.UserID)
	var i HotelBookingDetailRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceNumber,
		&i.UserID,
		&i.HotelID,
		&i.HotelName,
		&i.RoomTypeID,
		&i.RoomType,
		&i.CheckIn,
		&i.CheckOut,
		&i.Rooms,
		&i.Guests,
		&i.Surname,
		&i.ContactEmail,
		&i.SpecialRequests,
		&i.TotalPrice,
		&i.Status,
		&i.PaymentStatus,
		&i.PaymentReference,
		&i.CreatedAt,
	)
	return i, err
}

const getCarBookingDetail = `-- name: GetCarBookingDetail :one
SELECT b.id, b.reference_number, b.user_id, c.id, c.company, c.model,
       b.pickup_date, b.dropoff_date, b.pickup_location, b.dropoff_location, b.pickup_address, b.pickup_time,
       b.first_name, b.last_name, b.contact_number, b.contact_email,
       b.total_price, b.status, b.payment_status, b.payment_reference, b.created_at
FROM car_bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.reference_number = $1
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
`

type CarBookingDetailRow struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	CarID            uuid.UUID
	Company          string
	Model            string
	PickupDate       time.Time
	DropoffDate      time.Time
	PickupLocation   string
	DropoffLocation  string
	PickupAddress    string
	PickupTime       pgtype.Time
	FirstName        string
	LastName         string
	ContactNumber    string
	ContactEmail     string
	TotalPrice       decimal.Decimal
	Status           string
	PaymentStatus    string
	PaymentReference string
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) GetCarBookingDetail(ctx context.Context, db DBTX, arg BookingDetailParams) (CarBookingDetailRow, error) {
	row := db.QueryRow(ctx, getCarBookingDetail, arg.Reference, arg.UserID)
	var i CarBookingDetailRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceNumber,
		&i.UserID,
		&i.CarID,
		&i.Company,
		&i.Model,
		&i.PickupDate,
		&i.DropoffDate,
		&i.PickupLocation,
		&i.DropoffLocation,
		&i.PickupAddress,
		&i.PickupTime,
		&i.FirstName,
		&i.LastName,
		&i.ContactNumber,
		&i.ContactEmail,
		&i.TotalPrice,
		&i.Status,
		&i.PaymentStatus,
		&i.PaymentReference,
		&i.CreatedAt,
	)
	return i, err
}

const getFlightBookingDetail = `-- name: GetFlightBookingDetail :one
SELECT b.id, b.reference_number, b.user_id, f.id, f.code, f.origin, f.destination, f.departure_time, f.arrival_time,
       b.passengers, b.round_trip, b.contact_email, b.notify_admin,
       b.total_price, b.status, b.payment_status, b.payment_reference, b.created_at
FROM flight_bookings b
JOIN flights f ON f.id = b.flight_id
WHERE b.reference_number = $1
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
`

type FlightBookingDetailRow struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	FlightID         uuid.UUID
	Code             string
	Origin           string
	Destination      string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	Passengers       int32
	RoundTrip        bool
	ContactEmail     string
	NotifyAdmin      bool
	TotalPrice       decimal.Decimal
	Status           string
	PaymentStatus    string
	PaymentReference string
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) GetFlightBookingDetail(ctx context.Context, db DBTX, arg BookingDetailParams) (FlightBookingDetailRow, error) {
	row := db.QueryRow(ctx, getFlightBookingDetail, arg.Reference, arg.UserID)
	var i FlightBookingDetailRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceNumber,
		&i.UserID,
		&i.FlightID,
		&i.Code,
		&i.Origin,
		&i.Destination,
		&i.DepartureTime,
		&i.ArrivalTime,
		&i.Passengers,
		&i.RoundTrip,
		&i.ContactEmail,
		&i.NotifyAdmin,
		&i.TotalPrice,
		&i.Status,
		&i.PaymentStatus,
		&i.PaymentReference,
		&i.CreatedAt,
	)
	return i, err
}

const listFlightBookingSeats = `-- name: ListFlightBookingSeats :many
SELECT fs.leg, fs.seat_number, bs.first_name, bs.last_name, bs.contact_number, bs.date_of_birth,
       bs.main_luggage_weight, bs.hand_luggage_weight, bs.luggage_fee
FROM flight_booking_seats bs
JOIN flight_seats fs ON fs.id = bs.seat_id
WHERE bs.booking_id = $1
ORDER BY fs.leg, fs.seat_number
`

type FlightBookingSeatRow struct {
	Leg               string
	SeatNumber        string
	FirstName         string
	LastName          string
	ContactNumber     string
	DateOfBirth       pgtype.Date
	MainLuggageWeight decimal.Decimal
	HandLuggageWeight decimal.Decimal
	LuggageFee        decimal.Decimal
}

func (q *Queries) ListFlightBookingSeats(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]FlightBookingSeatRow, error) {
	rows, err := db.Query(ctx, listFlightBookingSeats, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FlightBookingSeatRow{}
	for rows.Next() {
		var i FlightBookingSeatRow
		if err := rows.Scan(
			&i.Leg,
			&i.SeatNumber,
			&i.FirstName,
			&i.LastName,
			&i.ContactNumber,
			&i.DateOfBirth,
			&i.MainLuggageWeight,
			&i.HandLuggageWeight,
			&i.LuggageFee,
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
