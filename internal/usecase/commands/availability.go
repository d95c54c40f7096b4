package commands

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityChecker reads inventory inside the caller's transaction. Missing
// day records are created at full capacity before they are read.
type AvailabilityChecker struct{}

func (AvailabilityChecker) Hotel(ctx context.Context, tx shared.Tx, rt *hotel.RoomType, checkIn, checkOut time.Time, rooms int) (booking.Availability, error) {
	if rooms < 1 {
		return booking.Availability{}, errs.Mark(booking.NewValidationError("rooms", "must be at least 1"), errs.ErrValidation)
	}
	stay, err := booking.NewDateRange(checkIn, checkOut)
	if err != nil {
		return booking.UnavailableResult(booking.ReasonInvalidDateRange), nil
	}
	inv := tx.HotelInventory()
	if err := inv.Ensure(ctx, tx.DB(), rt.ID(), stay, rt.TotalRooms()); err != nil {
		return booking.Availability{}, err
	}
	ledger, err := inv.Load(ctx, tx.DB(), rt.ID(), stay, rt.TotalRooms())
	if err != nil {
		return booking.Availability{}, err
	}
	return hotel.CheckAvailability(ledger, stay.Start(), stay.End(), rooms), nil
}

func (AvailabilityChecker) Car(ctx context.Context, tx shared.Tx, c *car.Car, pickup, dropoff time.Time) (booking.Availability, error) {
	rental, err := booking.NewDateRange(pickup, dropoff)
	if err != nil {
		return booking.UnavailableResult(booking.ReasonInvalidDateRange), nil
	}
	inv := tx.CarInventory()
	if err := inv.Ensure(ctx, tx.DB(), c.ID(), rental, c.Units()); err != nil {
		return booking.Availability{}, err
	}
	ledger, err := inv.Load(ctx, tx.DB(), c.ID(), rental, c.Units())
	if err != nil {
		return booking.Availability{}, err
	}
	return car.CheckAvailability(ledger, rental.Start(), rental.End()), nil
}

// Flight also returns the seat rows so callers can quote without a second read.
func (AvailabilityChecker) Flight(ctx context.Context, tx shared.Tx, f *flight.Flight, passengers int, roundTrip bool) (booking.Availability, []*flight.Seat, error) {
	seats, err := tx.FlightSeats().ListSeats(ctx, tx.DB(), f.ID())
	if err != nil {
		return booking.Availability{}, nil, err
	}
	return flight.CheckAvailability(f, passengers, roundTrip, flight.CountUnreserved(seats)), seats, nil
}

type HotelAvailabilityRequest struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
}

type CarAvailabilityRequest struct {
	CarID       uuid.UUID
	PickupDate  time.Time
	DropoffDate time.Time
}

type FlightAvailabilityRequest struct {
	FlightID   uuid.UUID
	Passengers int
	RoundTrip  bool
}

// AvailabilityQuote carries a price only when the request is available.
type AvailabilityQuote struct {
	Available bool
	Reasons   []string
	Nights    int
	Total     *booking.Money
	Flight    *flight.Quote
}

type AvailabilityCommands interface {
	CheckHotel(ctx context.Context, req HotelAvailabilityRequest) (*AvailabilityQuote, error)
	CheckCar(ctx context.Context, req CarAvailabilityRequest) (*AvailabilityQuote, error)
	CheckFlight(ctx context.Context, req FlightAvailabilityRequest) (*AvailabilityQuote, error)
}

type availabilityUseCaseImpl struct {
	uow     shared.UnitOfWork
	checker AvailabilityChecker
	hotels  hotel.PriceCalculator
	cars    car.PriceCalculator
	flights flight.PriceCalculator
}

func NewAvailabilityUseCase(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityUseCaseImpl{
		uow:     uow,
		hotels:  hotel.NewDefaultPriceCalculator(),
		cars:    car.NewDefaultPriceCalculator(),
		flights: flight.NewDefaultPriceCalculator(),
	}
}

func (uc *availabilityUseCaseImpl) CheckHotel(ctx context.Context, req HotelAvailabilityRequest) (*AvailabilityQuote, error) {
	var out *AvailabilityQuote
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.Reads().RoomTypeByID(ctx, req.RoomTypeID)
		if err != nil {
			return notFoundAs(err, ErrRoomTypeNotFound)
		}
		avail, err := uc.checker.Hotel(ctx, tx, rt, req.CheckIn, req.CheckOut, req.Rooms)
		if err != nil {
			return err
		}
		out = &AvailabilityQuote{Available: avail.Available, Reasons: avail.Reasons}
		if avail.Available {
			stay, _ := booking.NewDateRange(req.CheckIn, req.CheckOut)
			total := uc.hotels.Total(rt, stay, req.Rooms)
			out.Nights = stay.Nights()
			out.Total = &total
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *availabilityUseCaseImpl) CheckCar(ctx context.Context, req CarAvailabilityRequest) (*AvailabilityQuote, error) {
	var out *AvailabilityQuote
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CarByID(ctx, req.CarID)
		if err != nil {
			return notFoundAs(err, ErrCarNotFound)
		}
		avail, err := uc.checker.Car(ctx, tx, c, req.PickupDate, req.DropoffDate)
		if err != nil {
			return err
		}
		out = &AvailabilityQuote{Available: avail.Available, Reasons: avail.Reasons}
		if avail.Available {
			rental, _ := booking.NewDateRange(req.PickupDate, req.DropoffDate)
			total := uc.cars.Total(c, rental)
			out.Nights = rental.Nights()
			out.Total = &total
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *availabilityUseCaseImpl) CheckFlight(ctx context.Context, req FlightAvailabilityRequest) (*AvailabilityQuote, error) {
	var out *AvailabilityQuote
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Reads().FlightByID(ctx, req.FlightID)
		if err != nil {
			return notFoundAs(err, ErrFlightNotFound)
		}
		avail, seats, err := uc.checker.Flight(ctx, tx, f, req.Passengers, req.RoundTrip)
		if err != nil {
			return err
		}
		out = &AvailabilityQuote{Available: avail.Available, Reasons: avail.Reasons}
		if avail.Available {
			picked := flight.PickSeats(seats, flight.LegOutbound, req.Passengers)
			q := uc.flights.Quote(f, picked, nil, req.RoundTrip)
			out.Total = &q.Total
			out.Flight = &q
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
