package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// bookingTables maps a booking kind to its table; values are fixed identifiers.
var bookingTables = map[string]string{
	"hotel":  "hotel_bookings",
	"car":    "car_bookings",
	"flight": "flight_bookings",
}

func bookingTable(kind string) (string, error) {
	table, ok := bookingTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown booking kind %q", kind)
	}
	return table, nil
}

const insertHotelBooking = `-- name: InsertHotelBooking :one
INSERT INTO hotel_bookings (
    id, reference_number, user_id, room_type_id, check_in, check_out, rooms, guests,
    surname, contact_email, special_requests, total_price, status, payment_status, payment_reference, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (reference_number) DO NOTHING
RETURNING id
`

type InsertHotelBookingParams struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	RoomTypeID       uuid.UUID
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
	CreatedAt        time.Time
}

// InsertHotelBooking returns pgx.ErrNoRows when the reference number is taken.
func (q *Queries) InsertHotelBooking(ctx context.Context, db DBTX, arg InsertHotelBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertHotelBooking,
		arg.ID,
		arg.ReferenceNumber,
		arg.UserID,
		arg.RoomTypeID,
		arg.CheckIn,
		arg.CheckOut,
		arg.Rooms,
		arg.Guests,
		arg.Surname,
		arg.ContactEmail,
		arg.SpecialRequests,
		arg.TotalPrice,
		arg.Status,
		arg.PaymentStatus,
		arg.PaymentReference,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const insertCarBooking = `-- name: InsertCarBooking :one
INSERT INTO car_bookings (
    id, reference_number, user_id, car_id, pickup_date, dropoff_date, pickup_location, dropoff_location,
    pickup_address, pickup_time, first_name, last_name, contact_number, contact_email,
    total_price, status, payment_status, payment_reference, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (reference_number) DO NOTHING
RETURNING id
`

type InsertCarBookingParams struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	CarID            uuid.UUID
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
	CreatedAt        time.Time
}

func (q *Queries) InsertCarBooking(ctx context.Context, db DBTX, arg InsertCarBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertCarBooking,
		arg.ID,
		arg.ReferenceNumber,
		arg.UserID,
		arg.CarID,
		arg.PickupDate,
		arg.DropoffDate,
		arg.PickupLocation,
		arg.DropoffLocation,
		arg.PickupAddress,
		arg.PickupTime,
		arg.FirstName,
		arg.LastName,
		arg.ContactNumber,
		arg.ContactEmail,
		arg.TotalPrice,
		arg.Status,
		arg.PaymentStatus,
		arg.PaymentReference,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const insertFlightBooking = `-- name: InsertFlightBooking :one
INSERT INTO flight_bookings (
    id, reference_number, user_id, flight_id, passengers, round_trip, contact_email, notify_admin,
    total_price, status, payment_status, payment_reference, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (reference_number) DO NOTHING
RETURNING id
`

type InsertFlightBookingParams struct {
	ID               uuid.UUID
	ReferenceNumber  string
	UserID           uuid.UUID
	FlightID         uuid.UUID
	Passengers       int32
	RoundTrip        bool
	ContactEmail     string
	NotifyAdmin      bool
	TotalPrice       decimal.Decimal
	Status           string
	PaymentStatus    string
	PaymentReference string
	CreatedAt        time.Time
}

func (q *Queries) InsertFlightBooking(ctx context.Context, db DBTX, arg InsertFlightBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertFlightBooking,
		arg.ID,
		arg.ReferenceNumber,
		arg.UserID,
		arg.FlightID,
		arg.Passengers,
		arg.RoundTrip,
		arg.ContactEmail,
		arg.NotifyAdmin,
		arg.TotalPrice,
		arg.Status,
		arg.PaymentStatus,
		arg.PaymentReference,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type FlightBookingSeat struct {
	ID                uuid.UUID
	BookingID         uuid.UUID
	SeatID            uuid.UUID
	FirstName         string
	LastName          string
	ContactNumber     string
	DateOfBirth       pgtype.Date
	MainLuggageWeight decimal.Decimal
	HandLuggageWeight decimal.Decimal
	LuggageFee        decimal.Decimal
}

// CreateFlightBookingSeats bulk-loads seat assignments with COPY.
func (q *Queries) CreateFlightBookingSeats(ctx context.Context, db DBTX, seats []FlightBookingSeat) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"flight_booking_seats"},
		[]string{"id", "booking_id", "seat_id", "first_name", "last_name", "contact_number", "date_of_birth", "main_luggage_weight", "hand_luggage_weight", "luggage_fee"},
		pgx.CopyFromSlice(len(seats), func(i int) ([]any, error) {
			s := seats[i]
			return []any{
				s.ID, s.BookingID, s.SeatID, s.FirstName, s.LastName, s.ContactNumber,
				s.DateOfBirth, s.MainLuggageWeight, s.HandLuggageWeight, s.LuggageFee,
			}, nil
		}),
	)
}

type BookingState struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        string
	PaymentStatus string
}

const getBookingStateForUpdate = `-- name: GetBookingStateForUpdate :one
SELECT id, user_id, status, payment_status
FROM %s
WHERE reference_number = $1
FOR UPDATE
`

func (q *Queries) GetBookingStateForUpdate(ctx context.Context, db DBTX, kind, reference string) (BookingState, error) {
	table, err := bookingTable(kind)
	if err != nil {
		return BookingState{}, err
	}
	var i BookingState
	err = db.QueryRow(ctx, fmt.Sprintf(getBookingStateForUpdate, table), reference).
		Scan(&i.ID, &i.UserID, &i.Status, &i.PaymentStatus)
	return i, err
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE %s
SET status = $2,
    payment_status = $3,
    updated_at = NOW()
WHERE reference_number = $1
`

type UpdateBookingStatusParams struct {
	Kind          string
	Reference     string
	Status        string
	PaymentStatus string
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	table, err := bookingTable(arg.Kind)
	if err != nil {
		return 0, err
	}
	result, err := db.Exec(ctx, fmt.Sprintf(updateBookingStatus, table), arg.Reference, arg.Status, arg.PaymentStatus)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (
    id, user_id, booking_kind, booking_id, amount, currency, status, provider,
    provider_reference, client_secret, metadata, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`

type CreatePaymentParams struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BookingKind       string
	BookingID         uuid.UUID
	Amount            decimal.Decimal
	Currency          string
	Status            string
	Provider          string
	ProviderReference string
	ClientSecret      string
	Metadata          []byte
	CreatedAt         time.Time
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.UserID,
		arg.BookingKind,
		arg.BookingID,
		arg.Amount,
		arg.Currency,
		arg.Status,
		arg.Provider,
		arg.ProviderReference,
		arg.ClientSecret,
		arg.Metadata,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
