package queries

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidKind     = errs.Mark(errs.New("invalid booking kind"), errs.ErrValidation)
)

const dashboardBookingsPerKind = 50

// BookingFilter narrows the cross-kind booking listing; nil fields match everything.
type BookingFilter struct {
	UserID         *uuid.UUID
	Kind           *booking.Kind
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type BookingReadStore interface {
	FindSummaries(ctx context.Context, filter BookingFilter) ([]*BookingSummaryView, error)
	// FindDetail scopes to userID when it is non-nil
	FindDetail(ctx context.Context, kind booking.Kind, reference string, userID *uuid.UUID) (*BookingDetailView, error)
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingSummaryView, *Cursor, error)
	GetByReference(ctx context.Context, actor user.Recipient, kind booking.Kind, reference string) (*BookingDetailView, error)
	LatestPerKind(ctx context.Context) (*DashboardBookings, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingSummaryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	filter := BookingFilter{
		UserID: &userID,
		Limit:  int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	}
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		filter.AfterCreatedAt = &lastCreatedAt
		filter.AfterID = &lastID
	}

	rows, err := q.store.FindSummaries(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// GetByReference hides bookings of other users from customers; staff see every booking.
func (q *bookingQueriesImpl) GetByReference(ctx context.Context, actor user.Recipient, kind booking.Kind, reference string) (*BookingDetailView, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	var scope *uuid.UUID
	if !actor.Role.IsStaff() {
		scope = &actor.ID
	}
	view, err := q.store.FindDetail(ctx, kind, reference, scope)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) LatestPerKind(ctx context.Context) (*DashboardBookings, error) {
	out := &DashboardBookings{}
	for _, kind := range booking.Kinds() {
		k := kind
		rows, err := q.store.FindSummaries(ctx, BookingFilter{Kind: &k, Limit: dashboardBookingsPerKind})
		if err != nil {
			return nil, err
		}
		switch kind {
		case booking.KindHotel:
			out.Hotel = rows
		case booking.KindCar:
			out.Car = rows
		case booking.KindFlight:
			out.Flight = rows
		}
	}
	return out, nil
}
