package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const countBookingsByKind = `-- name: CountBookingsByKind :one
SELECT
    (SELECT COUNT(*) FROM hotel_bookings) AS hotel,
    (SELECT COUNT(*) FROM car_bookings) AS car,
    (SELECT COUNT(*) FROM flight_bookings) AS flight
`

type CountBookingsByKindRow struct {
	Hotel  int64
	Car    int64
	Flight int64
}

func (q *Queries) CountBookingsByKind(ctx context.Context, db DBTX) (CountBookingsByKindRow, error) {
	var i CountBookingsByKindRow
	err := db.QueryRow(ctx, countBookingsByKind).Scan(&i.Hotel, &i.Car, &i.Flight)
	return i, err
}

const getPaymentTotals = `-- name: GetPaymentTotals :one
SELECT
    COALESCE(SUM(amount) FILTER (WHERE status = 'succeeded'), 0)::numeric(12, 2) AS revenue,
    COUNT(*) FILTER (WHERE status = 'initiated') AS pending
FROM payments
`

type PaymentTotalsRow struct {
	Revenue decimal.Decimal
	Pending int64
}

func (q *Queries) GetPaymentTotals(ctx context.Context, db DBTX) (PaymentTotalsRow, error) {
	var i PaymentTotalsRow
	err := db.QueryRow(ctx, getPaymentTotals).Scan(&i.Revenue, &i.Pending)
	return i, err
}

const listRecentPayments = `-- name: ListRecentPayments :many
SELECT p.id, p.booking_kind, p.booking_id,
       COALESCE(hb.reference_number, cb.reference_number, fb.reference_number, '') AS reference_number,
       p.amount, p.currency, p.status, p.provider, p.provider_reference, p.created_at
FROM payments p
LEFT JOIN hotel_bookings hb ON p.booking_kind = 'hotel' AND hb.id = p.booking_id
LEFT JOIN car_bookings cb ON p.booking_kind = 'car' AND cb.id = p.booking_id
LEFT JOIN flight_bookings fb ON p.booking_kind = 'flight' AND fb.id = p.booking_id
ORDER BY p.created_at DESC, p.id DESC
LIMIT $1
`

type RecentPaymentRow struct {
	ID                uuid.UUID
	BookingKind       string
	BookingID         uuid.UUID
	ReferenceNumber   string
	Amount            decimal.Decimal
	Currency          string
	Status            string
	Provider          string
	ProviderReference string
	CreatedAt         pgtype.Timestamptz
}

func (q *Queries) ListRecentPayments(ctx context.Context, db DBTX, limit int32) ([]RecentPaymentRow, error) {
	rows, err := db.Query(ctx, listRecentPayments, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecentPaymentRow{}
	for rows.Next() {
		var i RecentPaymentRow
		if err := rows.Scan(
			&i.ID,
			&i.BookingKind,
			&i.BookingID,
			&i.ReferenceNumber,
			&i.Amount,
			&i.Currency,
			&i.Status,
			&i.Provider,
			&i.ProviderReference,
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

const listPaymentsByBooking = `-- name: ListPaymentsByBooking :many
SELECT id, user_id, booking_kind, booking_id, amount, currency, status, provider,
       provider_reference, client_secret, metadata, created_at
FROM payments
WHERE booking_kind = $1 AND booking_id = $2
ORDER BY created_at
`

type ListPaymentsByBookingParams struct {
	BookingKind string
	BookingID   uuid.UUID
}

func (q *Queries) ListPaymentsByBooking(ctx context.Context, db DBTX, arg ListPaymentsByBookingParams) ([]Payment, error) {
	rows, err := db.Query(ctx, listPaymentsByBooking, arg.BookingKind, arg.BookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payment{}
	for rows.Next() {
		var i Payment
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.BookingKind,
			&i.BookingID,
			&i.Amount,
			&i.Currency,
			&i.Status,
			&i.Provider,
			&i.ProviderReference,
			&i.ClientSecret,
			&i.Metadata,
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
