package commands

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelBookingRequest struct {
	RoomTypeID      uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Rooms           int
	Guests          int
	Surname         string
	ContactEmail    string
	SpecialRequests string
	PaymentToken    *string
}

func (uc *bookingUseCaseImpl) CreateHotelBooking(ctx context.Context, actor user.Recipient, req HotelBookingRequest) (*BookingResult, error) {
	plan := &hotelPlan{
		actor:   actor,
		req:     req,
		checker: uc.checker,
		services: &hotel.Services{
			Clock:           uc.clock,
			PriceCalculator: hotel.NewDefaultPriceCalculator(),
		},
	}
	return uc.execute(ctx, actor, plan)
}

type hotelPlan struct {
	actor    user.Recipient
	req      HotelBookingRequest
	checker  AvailabilityChecker
	services *hotel.Services

	roomType *hotel.RoomType
	booking  *hotel.Booking
}

func (p *hotelPlan) kind() booking.Kind    { return booking.KindHotel }
func (p *hotelPlan) resourceID() uuid.UUID { return p.req.RoomTypeID }

func (p *hotelPlan) prepare(ctx context.Context, tx shared.Tx) error {
	rt, err := tx.Reads().RoomTypeByID(ctx, p.req.RoomTypeID)
	if err != nil {
		return notFoundAs(err, ErrRoomTypeNotFound)
	}
	stay, err := booking.NewDateRange(p.req.CheckIn, p.req.CheckOut)
	if err != nil {
		return booking.NewAvailabilityError(hotel.AvailabilityField, booking.ReasonInvalidDateRange)
	}
	b, err := hotel.NewBooking(p.services, rt, hotel.BookingParams{
		UserID:          p.actor.ID,
		Stay:            stay,
		Rooms:           p.req.Rooms,
		Guests:          p.req.Guests,
		Surname:         p.req.Surname,
		ContactEmail:    p.req.ContactEmail,
		SpecialRequests: p.req.SpecialRequests,
	})
	if err != nil {
		return err
	}
	avail, err := p.checker.Hotel(ctx, tx, rt, stay.Start(), stay.End(), b.Rooms())
	if err != nil {
		return err
	}
	if !avail.Available {
		return booking.NewAvailabilityError(hotel.AvailabilityField, avail.Reasons...)
	}
	p.roomType, p.booking = rt, b
	return nil
}

func (p *hotelPlan) reserve(ctx context.Context, tx shared.Tx) error {
	for _, day := range p.booking.Stay().Days() {
		ok, err := tx.HotelInventory().TakeDay(ctx, tx.DB(), p.roomType.ID(), day, p.booking.Rooms())
		if err != nil {
			return err
		}
		if !ok {
			return booking.NewAvailabilityError(hotel.AvailabilityField, hotel.InsufficientReason(day))
		}
	}
	return nil
}

func (p *hotelPlan) release(ctx context.Context, tx shared.Tx) error {
	return tx.HotelInventory().Release(ctx, tx.DB(), p.roomType.ID(), p.booking.Stay(), p.booking.Rooms(), p.roomType.TotalRooms())
}

func (p *hotelPlan) chargeRequest(currency string) payment.ChargeRequest {
	stay := p.booking.Stay()
	return payment.ChargeRequest{
		Amount:      p.booking.TotalPrice(),
		Currency:    currency,
		Description: "Hotel booking for " + p.roomType.HotelName(),
		Metadata: map[string]string{
			"booking_type": booking.KindHotel.String(),
			"hotel":        p.roomType.HotelName(),
			"room_type":    p.roomType.Kind().String(),
			"check_in":     booking.FormatDate(stay.Start()),
			"check_out":    booking.FormatDate(stay.End()),
		},
		Token:        p.req.PaymentToken,
		ReceiptEmail: p.booking.ContactEmail(),
	}
}

func (p *hotelPlan) persist(ctx context.Context, tx shared.Tx, res *payment.ChargeResult, ref string) (bool, error) {
	p.booking.ApplyCharge(res.Success, res.Reference)
	p.booking.AssignReference(ref)
	return tx.Bookings().CreateHotel(ctx, tx.DB(), p.booking)
}

func (p *hotelPlan) result() *BookingResult {
	b := p.booking
	return &BookingResult{
		Kind:             booking.KindHotel,
		ID:               b.ID(),
		Reference:        b.Reference(),
		TotalPrice:       b.TotalPrice(),
		Status:           b.Status(),
		PaymentStatus:    b.PaymentStatus(),
		PaymentReference: b.PaymentReference(),
	}
}

func (p *hotelPlan) confirmation() shared.Message {
	stay := p.booking.Stay()
	return shared.Message{
		Subject: "Hotel booking confirmation",
		Body: fmt.Sprintf("Dear %s,\n\nYour reservation at %s from %s to %s has been confirmed. Your booking reference is %s.",
			p.booking.Surname(), p.roomType.HotelName(),
			booking.FormatDate(stay.Start()), booking.FormatDate(stay.End()), p.booking.Reference()),
		Recipients: []string{p.booking.ContactEmail()},
	}
}
