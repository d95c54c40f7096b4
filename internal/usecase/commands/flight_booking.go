package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightBookingRequest struct {
	FlightID         uuid.UUID
	Passengers       int
	RoundTrip        bool
	PassengerDetails []flight.PassengerInput
	ContactEmail     string
	NotifyAdmin      bool
	PaymentToken     *string
}

func (uc *bookingUseCaseImpl) CreateFlightBooking(ctx context.Context, actor user.Recipient, req FlightBookingRequest) (*BookingResult, error) {
	plan := &flightPlan{
		actor:   actor,
		req:     req,
		checker: uc.checker,
		services: &flight.Services{
			Clock:           uc.clock,
			PriceCalculator: flight.NewDefaultPriceCalculator(),
		},
	}
	return uc.execute(ctx, actor, plan)
}

type flightPlan struct {
	actor    user.Recipient
	req      FlightBookingRequest
	checker  AvailabilityChecker
	services *flight.Services

	flight     *flight.Flight
	passengers []flight.Passenger
	booking    *flight.Booking
}

func (p *flightPlan) kind() booking.Kind    { return booking.KindFlight }
func (p *flightPlan) resourceID() uuid.UUID { return p.req.FlightID }

func (p *flightPlan) prepare(ctx context.Context, tx shared.Tx) error {
	f, err := tx.Reads().FlightByID(ctx, p.req.FlightID)
	if err != nil {
		return notFoundAs(err, ErrFlightNotFound)
	}
	n := p.req.Passengers
	if n < flight.MinPassengers || n > flight.MaxPassengers {
		return booking.NewAvailabilityError(flight.PassengersField,
			fmt.Sprintf("Passengers must be between %d and %d", flight.MinPassengers, flight.MaxPassengers))
	}
	pax, err := flight.BuildPassengers(p.req.PassengerDetails, n, p.services.Clock.Now())
	if err != nil {
		return err
	}
	avail, _, err := p.checker.Flight(ctx, tx, f, n, p.req.RoundTrip)
	if err != nil {
		return err
	}
	if !avail.Available {
		return booking.NewAvailabilityError(flight.SeatsField, avail.Reasons...)
	}
	p.flight, p.passengers = f, pax
	return nil
}

// reserve locks the seats it picks, so the booking is built here rather than in prepare.
func (p *flightPlan) reserve(ctx context.Context, tx shared.Tx) error {
	n := p.req.Passengers
	seats := tx.FlightSeats()
	outbound, err := seats.LockUnreserved(ctx, tx.DB(), p.flight.ID(), flight.LegOutbound, n)
	if err != nil {
		return err
	}
	if len(outbound) < n {
		return booking.NewAvailabilityError(flight.SeatsField, fmt.Sprintf("Only %d seat(s) remaining", len(outbound)))
	}
	var inbound []*flight.Seat
	if p.req.RoundTrip {
		inbound, err = seats.LockUnreserved(ctx, tx.DB(), p.flight.ID(), flight.LegReturn, n)
		if err != nil {
			return err
		}
		if len(inbound) < n {
			return booking.NewAvailabilityError(flight.SeatsField, fmt.Sprintf("Only %d return seat(s) remaining", len(inbound)))
		}
	}

	b, err := flight.NewBooking(p.services, p.flight, outbound, inbound, p.passengers, flight.BookingParams{
		UserID:       p.actor.ID,
		RoundTrip:    p.req.RoundTrip,
		ContactEmail: p.req.ContactEmail,
		NotifyAdmin:  p.req.NotifyAdmin,
	})
	if err != nil {
		return err
	}
	ids := b.SeatIDs()
	marked, err := seats.MarkReserved(ctx, tx.DB(), ids)
	if err != nil {
		return err
	}
	if marked != int64(len(ids)) {
		return booking.NewAvailabilityError(flight.SeatsField, "Selected seats are no longer available")
	}
	p.booking = b
	return nil
}

func (p *flightPlan) release(ctx context.Context, tx shared.Tx) error {
	return tx.FlightSeats().Release(ctx, tx.DB(), p.booking.SeatIDs())
}

func (p *flightPlan) chargeRequest(currency string) payment.ChargeRequest {
	return payment.ChargeRequest{
		Amount:      p.booking.TotalPrice(),
		Currency:    currency,
		Description: "Flight booking for " + p.flight.Code(),
		Metadata: map[string]string{
			"booking_type": booking.KindFlight.String(),
			"flight":       p.flight.Code(),
			"passengers":   strconv.Itoa(p.booking.Passengers()),
			"round_trip":   strconv.FormatBool(p.booking.RoundTrip()),
		},
		Token:        p.req.PaymentToken,
		ReceiptEmail: p.booking.ContactEmail(),
	}
}

func (p *flightPlan) persist(ctx context.Context, tx shared.Tx, res *payment.ChargeResult, ref string) (bool, error) {
	p.booking.ApplyCharge(res.Success, res.Reference)
	p.booking.AssignReference(ref)
	return tx.Bookings().CreateFlight(ctx, tx.DB(), p.booking)
}

func (p *flightPlan) result() *BookingResult {
	b := p.booking
	seats := map[flight.Leg][]string{flight.LegOutbound: b.SeatNumbers(flight.LegOutbound)}
	if b.RoundTrip() {
		seats[flight.LegReturn] = b.SeatNumbers(flight.LegReturn)
	}
	return &BookingResult{
		Kind:             booking.KindFlight,
		ID:               b.ID(),
		Reference:        b.Reference(),
		TotalPrice:       b.TotalPrice(),
		Status:           b.Status(),
		PaymentStatus:    b.PaymentStatus(),
		PaymentReference: b.PaymentReference(),
		Seats:            seats,
	}
}

func (p *flightPlan) confirmation() shared.Message {
	return shared.Message{
		Subject: "Flight booking confirmation",
		Body: fmt.Sprintf("Your flight %s from %s to %s has been booked.\nSeat(s): %s. Reference: %s.",
			p.flight.Code(), p.flight.Origin(), p.flight.Destination(),
			strings.Join(p.booking.SeatNumbers(flight.LegOutbound), ", "), p.booking.Reference()),
		Recipients: []string{p.booking.ContactEmail()},
	}
}

func (p *flightPlan) staffMessage() (shared.Message, bool) {
	if !p.booking.NotifyAdmin() {
		return shared.Message{}, false
	}
	return shared.Message{
		Subject: "New flight booking",
		Body:    fmt.Sprintf("Booking %s created for flight %s.", p.booking.Reference(), p.flight.Code()),
	}, true
}
