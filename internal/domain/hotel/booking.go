package hotel

import (
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type BookingParams struct {
	UserID          uuid.UUID
	Stay            booking.DateRange
	Rooms           int
	Guests          int
	Surname         string
	ContactEmail    string
	SpecialRequests string
}

type Booking struct {
	id               uuid.UUID
	reference        string
	userID           uuid.UUID
	roomTypeID       uuid.UUID
	stay             booking.DateRange
	rooms            int
	guests           int
	surname          string
	contactEmail     user.Email
	totalPrice       booking.Money
	status           booking.Status
	paymentStatus    booking.PaymentStatus
	paymentReference string
	specialRequests  string
	createdAt        time.Time
}

func NewBooking(services *Services, rt *RoomType, p BookingParams) (*Booking, error) {
	if p.Rooms < 1 {
		return nil, booking.NewValidationError("rooms", "must be at least 1")
	}
	if p.Guests < 1 {
		return nil, booking.NewValidationError("guests", "must be at least 1")
	}
	// ceil(guests/occupancy) > rooms, written without overflow
	if occ := rt.Kind().Occupancy(); (p.Guests-1)/occ >= p.Rooms {
		return nil, booking.NewValidationError("guests", fmt.Sprintf("at most %d guests fit in %d %s room(s)", p.Rooms*occ, p.Rooms, rt.Kind()))
	}
	surname := strings.TrimSpace(p.Surname)
	if surname == "" {
		return nil, booking.NewValidationError("surname", "is required")
	}
	email, err := user.NewEmail(p.ContactEmail)
	if err != nil {
		return nil, booking.NewValidationError("contact_email", "is not a valid email address")
	}
	today := booking.Date(services.Clock.Now())
	if p.Stay.Start().Before(today) {
		return nil, booking.NewValidationError("check_in", "cannot be in the past")
	}

	return &Booking{
		id:              uuid.New(),
		userID:          p.UserID,
		roomTypeID:      rt.ID(),
		stay:            p.Stay,
		rooms:           p.Rooms,
		guests:          p.Guests,
		surname:         surname,
		contactEmail:    email,
		totalPrice:      services.PriceCalculator.Total(rt, p.Stay, p.Rooms),
		status:          booking.StatusBooked,
		paymentStatus:   booking.PaymentPending,
		specialRequests: strings.TrimSpace(p.SpecialRequests),
		createdAt:       services.Clock.Now(),
	}, nil
}

// ApplyCharge records the outcome of the payment attempt.
func (b *Booking) ApplyCharge(success bool, reference string) {
	b.paymentStatus = booking.PaymentStatusFromCharge(success)
	b.paymentReference = reference
}

func (b *Booking) AssignReference(ref string) { b.reference = ref }

func (b *Booking) ID() uuid.UUID                        { return b.id }
func (b *Booking) Reference() string                    { return b.reference }
func (b *Booking) UserID() uuid.UUID                    { return b.userID }
func (b *Booking) RoomTypeID() uuid.UUID                { return b.roomTypeID }
func (b *Booking) Stay() booking.DateRange              { return b.stay }
func (b *Booking) Rooms() int                           { return b.rooms }
func (b *Booking) Guests() int                          { return b.guests }
func (b *Booking) Surname() string                      { return b.surname }
func (b *Booking) ContactEmail() string                 { return b.contactEmail.Value() }
func (b *Booking) TotalPrice() booking.Money            { return b.totalPrice }
func (b *Booking) Status() booking.Status               { return b.status }
func (b *Booking) PaymentStatus() booking.PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentReference() string             { return b.paymentReference }
func (b *Booking) SpecialRequests() string              { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time                 { return b.createdAt }
