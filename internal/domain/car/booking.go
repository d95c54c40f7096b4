package car

import (
	"regexp"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var pickupTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type BookingParams struct {
	UserID          uuid.UUID
	Rental          booking.DateRange
	PickupLocation  string
	DropoffLocation string
	PickupAddress   string
	PickupTime      *string
	FirstName       string
	LastName        string
	ContactNumber   string
	ContactEmail    string
}

type Booking struct {
	id               uuid.UUID
	reference        string
	userID           uuid.UUID
	carID            uuid.UUID
	rental           booking.DateRange
	pickupLocation   string
	dropoffLocation  string
	pickupAddress    string
	pickupTime       *string
	firstName        string
	lastName         string
	contactNumber    string
	contactEmail     user.Email
	totalPrice       booking.Money
	status           booking.Status
	paymentStatus    booking.PaymentStatus
	paymentReference string
	createdAt        time.Time
}

func NewBooking(services *Services, c *Car, p BookingParams) (*Booking, error) {
	email, err := user.NewEmail(p.ContactEmail)
	if err != nil {
		return nil, booking.NewValidationError("contact_email", "is not a valid email address")
	}
	if p.PickupTime != nil && !pickupTimePattern.MatchString(*p.PickupTime) {
		return nil, booking.NewValidationError("pickup_time", "must be HH:MM")
	}
	today := booking.Date(services.Clock.Now())
	if p.Rental.Start().Before(today) {
		return nil, booking.NewValidationError("pickup_date", "cannot be in the past")
	}
	pickup := strings.TrimSpace(p.PickupLocation)
	if pickup == "" {
		pickup = c.PickupLocation()
	}
	dropoff := strings.TrimSpace(p.DropoffLocation)
	if dropoff == "" {
		dropoff = c.DropoffLocation()
	}
	if pickup == "" || dropoff == "" {
		return nil, booking.NewValidationError("pickup_location", "pick-up and drop-off locations are required")
	}

	return &Booking{
		id:              uuid.New(),
		userID:          p.UserID,
		carID:           c.ID(),
		rental:          p.Rental,
		pickupLocation:  pickup,
		dropoffLocation: dropoff,
		pickupAddress:   strings.TrimSpace(p.PickupAddress),
		pickupTime:      p.PickupTime,
		firstName:       strings.TrimSpace(p.FirstName),
		lastName:        strings.TrimSpace(p.LastName),
		contactNumber:   strings.TrimSpace(p.ContactNumber),
		contactEmail:    email,
		totalPrice:      services.PriceCalculator.Total(c, p.Rental),
		status:          booking.StatusBooked,
		paymentStatus:   booking.PaymentPending,
		createdAt:       services.Clock.Now(),
	}, nil
}

func (b *Booking) ApplyCharge(success bool, reference string) {
	b.paymentStatus = booking.PaymentStatusFromCharge(success)
	b.paymentReference = reference
}

func (b *Booking) AssignReference(ref string) { b.reference = ref }

func (b *Booking) ID() uuid.UUID                        { return b.id }
func (b *Booking) Reference() string                    { return b.reference }
func (b *Booking) UserID() uuid.UUID                    { return b.userID }
func (b *Booking) CarID() uuid.UUID                     { return b.carID }
func (b *Booking) Rental() booking.DateRange            { return b.rental }
func (b *Booking) PickupLocation() string               { return b.pickupLocation }
func (b *Booking) DropoffLocation() string              { return b.dropoffLocation }
func (b *Booking) PickupAddress() string                { return b.pickupAddress }
func (b *Booking) PickupTime() *string                  { return b.pickupTime }
func (b *Booking) FirstName() string                    { return b.firstName }
func (b *Booking) LastName() string                     { return b.lastName }
func (b *Booking) ContactNumber() string                { return b.contactNumber }
func (b *Booking) ContactEmail() string                 { return b.contactEmail.Value() }
func (b *Booking) TotalPrice() booking.Money            { return b.totalPrice }
func (b *Booking) Status() booking.Status               { return b.status }
func (b *Booking) PaymentStatus() booking.PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentReference() string             { return b.paymentReference }
func (b *Booking) CreatedAt() time.Time                 { return b.createdAt }
