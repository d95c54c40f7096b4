package commands

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarBookingRequest struct {
	CarID           uuid.UUID
	PickupDate      time.Time
	DropoffDate     time.Time
	PickupLocation  string
	DropoffLocation string
	PickupAddress   string
	PickupTime      *string
	FirstName       string
	LastName        string
	ContactNumber   string
	ContactEmail    string
	PaymentToken    *string
}

func (uc *bookingUseCaseImpl) CreateCarBooking(ctx context.Context, actor user.Recipient, req CarBookingRequest) (*BookingResult, error) {
	plan := &carPlan{
		actor:   actor,
		req:     req,
		checker: uc.checker,
		services: &car.Services{
			Clock:           uc.clock,
			PriceCalculator: car.NewDefaultPriceCalculator(),
		},
	}
	return uc.execute(ctx, actor, plan)
}

type carPlan struct {
	actor    user.Recipient
	req      CarBookingRequest
	checker  AvailabilityChecker
	services *car.Services

	car     *car.Car
	booking *car.Booking
}

func (p *carPlan) kind() booking.Kind    { return booking.KindCar }
func (p *carPlan) resourceID() uuid.UUID { return p.req.CarID }

func (p *carPlan) prepare(ctx context.Context, tx shared.Tx) error {
	c, err := tx.Reads().CarByID(ctx, p.req.CarID)
	if err != nil {
		return notFoundAs(err, ErrCarNotFound)
	}
	rental, err := booking.NewDateRange(p.req.PickupDate, p.req.DropoffDate)
	if err != nil {
		return booking.NewAvailabilityError(car.AvailabilityField, booking.ReasonInvalidDateRange)
	}
	b, err := car.NewBooking(p.services, c, car.BookingParams{
		UserID:          p.actor.ID,
		Rental:          rental,
		PickupLocation:  p.req.PickupLocation,
		DropoffLocation: p.req.DropoffLocation,
		PickupAddress:   p.req.PickupAddress,
		PickupTime:      p.req.PickupTime,
		FirstName:       p.req.FirstName,
		LastName:        p.req.LastName,
		ContactNumber:   p.req.ContactNumber,
		ContactEmail:    p.req.ContactEmail,
	})
	if err != nil {
		return err
	}
	avail, err := p.checker.Car(ctx, tx, c, rental.Start(), rental.End())
	if err != nil {
		return err
	}
	if !avail.Available {
		return booking.NewAvailabilityError(car.AvailabilityField, avail.Reasons...)
	}
	p.car, p.booking = c, b
	return nil
}

func (p *carPlan) reserve(ctx context.Context, tx shared.Tx) error {
	for _, day := range p.booking.Rental().Days() {
		ok, err := tx.CarInventory().TakeDay(ctx, tx.DB(), p.car.ID(), day, 1)
		if err != nil {
			return err
		}
		if !ok {
			return booking.NewAvailabilityError(car.AvailabilityField, car.UnavailableReason(day, 0))
		}
	}
	return nil
}

func (p *carPlan) release(ctx context.Context, tx shared.Tx) error {
	return tx.CarInventory().Release(ctx, tx.DB(), p.car.ID(), p.booking.Rental(), 1, p.car.Units())
}

func (p *carPlan) chargeRequest(currency string) payment.ChargeRequest {
	rental := p.booking.Rental()
	return payment.ChargeRequest{
		Amount:      p.booking.TotalPrice(),
		Currency:    currency,
		Description: fmt.Sprintf("Car rental for %s %s", p.car.Company(), p.car.Model()),
		Metadata: map[string]string{
			"booking_type": booking.KindCar.String(),
			"car":          p.car.DisplayName(),
			"pricing_mode": string(p.car.PricingMode()),
			"pickup_date":  booking.FormatDate(rental.Start()),
			"dropoff_date": booking.FormatDate(rental.End()),
		},
		Token:        p.req.PaymentToken,
		ReceiptEmail: p.booking.ContactEmail(),
	}
}

func (p *carPlan) persist(ctx context.Context, tx shared.Tx, res *payment.ChargeResult, ref string) (bool, error) {
	p.booking.ApplyCharge(res.Success, res.Reference)
	p.booking.AssignReference(ref)
	return tx.Bookings().CreateCar(ctx, tx.DB(), p.booking)
}

func (p *carPlan) result() *BookingResult {
	b := p.booking
	return &BookingResult{
		Kind:             booking.KindCar,
		ID:               b.ID(),
		Reference:        b.Reference(),
		TotalPrice:       b.TotalPrice(),
		Status:           b.Status(),
		PaymentStatus:    b.PaymentStatus(),
		PaymentReference: b.PaymentReference(),
	}
}

func (p *carPlan) confirmation() shared.Message {
	rental := p.booking.Rental()
	return shared.Message{
		Subject: "Car rental confirmation",
		Body: fmt.Sprintf("Your car rental for %s %s is confirmed from %s to %s. Reference: %s.",
			p.car.Company(), p.car.Model(),
			booking.FormatDate(rental.Start()), booking.FormatDate(rental.End()), p.booking.Reference()),
		Recipients: []string{p.booking.ContactEmail()},
	}
}
