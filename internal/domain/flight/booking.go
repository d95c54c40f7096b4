package flight

import (
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
	UserID       uuid.UUID
	RoundTrip    bool
	ContactEmail string
	NotifyAdmin  bool
}

// BookingSeat assigns one seat of one leg; luggage is charged on the outbound row only.
type BookingSeat struct {
	SeatID     uuid.UUID
	Leg        Leg
	SeatNumber string
	Passenger  *Passenger
	LuggageFee booking.Money
}

type Booking struct {
	id               uuid.UUID
	reference        string
	userID           uuid.UUID
	flightID         uuid.UUID
	flightCode       string
	passengers       int
	roundTrip        bool
	totalPrice       booking.Money
	quote            Quote
	status           booking.Status
	paymentStatus    booking.PaymentStatus
	paymentReference string
	contactEmail     user.Email
	notifyAdmin      bool
	seats            []BookingSeat
	createdAt        time.Time
}

func NewBooking(services *Services, f *Flight, outbound, inbound []*Seat, passengers []Passenger, p BookingParams) (*Booking, error) {
	email, err := user.NewEmail(p.ContactEmail)
	if err != nil {
		return nil, booking.NewValidationError("contact_email", "is not a valid email address")
	}
	if len(outbound) < MinPassengers || len(outbound) > MaxPassengers {
		return nil, booking.NewAvailabilityError(SeatsField, "No seats available for this flight")
	}
	if p.RoundTrip && len(inbound) != len(outbound) {
		return nil, booking.NewAvailabilityError(SeatsField, "Return seats do not match outbound seats")
	}

	quote := services.PriceCalculator.Quote(f, outbound, passengers, p.RoundTrip)

	seats := make([]BookingSeat, 0, len(outbound)+len(inbound))
	for i, s := range outbound {
		bs := BookingSeat{SeatID: s.ID(), Leg: LegOutbound, SeatNumber: s.Number(), LuggageFee: booking.ZeroMoney()}
		if i < len(passengers) {
			pax := passengers[i]
			bs.Passenger = &pax
			bs.LuggageFee = quote.LuggageFees[i]
		}
		seats = append(seats, bs)
	}
	if p.RoundTrip {
		for i, s := range inbound {
			bs := BookingSeat{SeatID: s.ID(), Leg: LegReturn, SeatNumber: s.Number(), LuggageFee: booking.ZeroMoney()}
			if i < len(passengers) {
				pax := passengers[i]
				bs.Passenger = &pax
			}
			seats = append(seats, bs)
		}
	}

	return &Booking{
		id:            uuid.New(),
		userID:        p.UserID,
		flightID:      f.ID(),
		flightCode:    f.Code(),
		passengers:    len(outbound),
		roundTrip:     p.RoundTrip,
		totalPrice:    quote.Total,
		quote:         quote,
		status:        booking.StatusBooked,
		paymentStatus: booking.PaymentPending,
		contactEmail:  email,
		notifyAdmin:   p.NotifyAdmin,
		seats:         seats,
		createdAt:     services.Clock.Now(),
	}, nil
}

func (b *Booking) ApplyCharge(success bool, reference string) {
	b.paymentStatus = booking.PaymentStatusFromCharge(success)
	b.paymentReference = reference
}

func (b *Booking) AssignReference(ref string) { b.reference = ref }

func (b *Booking) SeatNumbers(leg Leg) []string {
	out := []string{}
	for _, s := range b.seats {
		if s.Leg == leg {
			out = append(out, s.SeatNumber)
		}
	}
	return out
}

func (b *Booking) SeatIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.seats))
	for _, s := range b.seats {
		ids = append(ids, s.SeatID)
	}
	return ids
}

func (b *Booking) ID() uuid.UUID                        { return b.id }
func (b *Booking) Reference() string                    { return b.reference }
func (b *Booking) UserID() uuid.UUID                    { return b.userID }
func (b *Booking) FlightID() uuid.UUID                  { return b.flightID }
func (b *Booking) FlightCode() string                   { return b.flightCode }
func (b *Booking) Passengers() int                      { return b.passengers }
func (b *Booking) RoundTrip() bool                      { return b.roundTrip }
func (b *Booking) TotalPrice() booking.Money            { return b.totalPrice }
func (b *Booking) Quote() Quote                         { return b.quote }
func (b *Booking) Status() booking.Status               { return b.status }
func (b *Booking) PaymentStatus() booking.PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentReference() string             { return b.paymentReference }
func (b *Booking) ContactEmail() string                 { return b.contactEmail.Value() }
func (b *Booking) NotifyAdmin() bool                    { return b.notifyAdmin }
func (b *Booking) Seats() []BookingSeat                 { return b.seats }
func (b *Booking) CreatedAt() time.Time                 { return b.createdAt }
