package flight

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeatCapacity is the fixed number of seats seeded per leg.
const SeatCapacity = 7

var (
	ErrInvalidCode       = errors.New("flight code is required")
	ErrInvalidRoute      = errors.New("origin and destination are required")
	ErrInvalidSchedule   = errors.New("arrival must be after departure")
	ErrIncompleteReturn  = errors.New("return leg requires code, route and schedule")
	ErrReturnBeforeOut   = errors.New("return departure must be after outbound arrival")
	ErrInvalidBasePrice  = errors.New("base price must not be negative")
	ErrInvalidSeatNumber = errors.New("invalid seat number")
)

type Leg string

const (
	LegOutbound Leg = "outbound"
	LegReturn   Leg = "return"
)

func (l Leg) String() string { return string(l) }

type SeatClass string

const (
	ClassEconomy  SeatClass = "economy"
	ClassBusiness SeatClass = "business"
)

type Schedule struct {
	Code          string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
}

func (s Schedule) validate() error {
	if strings.TrimSpace(s.Code) == "" {
		return ErrInvalidCode
	}
	if strings.TrimSpace(s.Origin) == "" || strings.TrimSpace(s.Destination) == "" {
		return ErrInvalidRoute
	}
	if !s.ArrivalTime.After(s.DepartureTime) {
		return ErrInvalidSchedule
	}
	return nil
}

type Params struct {
	Outbound        Schedule
	Return          *Schedule
	BasePrice       booking.Money
	ReturnBasePrice booking.Money
	Description     string
}

type Flight struct {
	id              uuid.UUID
	outbound        Schedule
	ret             *Schedule
	basePrice       booking.Money
	returnBasePrice booking.Money
	seatCapacity    int
	description     string
	isActive        bool
}

func NewFlight(p Params) (*Flight, error) {
	if err := p.Outbound.validate(); err != nil {
		return nil, err
	}
	if p.Return != nil {
		if err := p.Return.validate(); err != nil {
			return nil, ErrIncompleteReturn
		}
		if !p.Return.DepartureTime.After(p.Outbound.ArrivalTime) {
			return nil, ErrReturnBeforeOut
		}
	}
	if p.BasePrice.IsNegative() || p.ReturnBasePrice.IsNegative() {
		return nil, ErrInvalidBasePrice
	}
	return &Flight{
		id:              uuid.New(),
		outbound:        p.Outbound,
		ret:             p.Return,
		basePrice:       p.BasePrice,
		returnBasePrice: p.ReturnBasePrice,
		seatCapacity:    SeatCapacity,
		description:     p.Description,
		isActive:        true,
	}, nil
}

func ReconstructFlight(id uuid.UUID, p Params, seatCapacity int, isActive bool) *Flight {
	return &Flight{
		id:              id,
		outbound:        p.Outbound,
		ret:             p.Return,
		basePrice:       p.BasePrice,
		returnBasePrice: p.ReturnBasePrice,
		seatCapacity:    seatCapacity,
		description:     p.Description,
		isActive:        isActive,
	}
}

// DefaultSeats seeds S01..S07 economy seats on each leg the flight has.
func (f *Flight) DefaultSeats() []*Seat {
	legs := []Leg{LegOutbound}
	if f.HasReturn() {
		legs = append(legs, LegReturn)
	}
	seats := make([]*Seat, 0, len(legs)*f.seatCapacity)
	for _, leg := range legs {
		for i := 1; i <= f.seatCapacity; i++ {
			seats = append(seats, &Seat{
				id:            uuid.New(),
				flightID:      f.id,
				leg:           leg,
				number:        SeatNumber(i),
				class:         ClassEconomy,
				priceModifier: decimal.NewFromInt(1),
			})
		}
	}
	return seats
}

func (f *Flight) Reprice(basePrice, returnBasePrice *booking.Money) error {
	base := patch.Coalesce(basePrice, f.basePrice)
	ret := patch.Coalesce(returnBasePrice, f.returnBasePrice)
	if base.IsNegative() || ret.IsNegative() {
		return ErrInvalidBasePrice
	}
	f.basePrice, f.returnBasePrice = base, ret
	return nil
}

func (f *Flight) ID() uuid.UUID                  { return f.id }
func (f *Flight) Code() string                   { return f.outbound.Code }
func (f *Flight) Origin() string                 { return f.outbound.Origin }
func (f *Flight) Destination() string            { return f.outbound.Destination }
func (f *Flight) Outbound() Schedule             { return f.outbound }
func (f *Flight) Return() *Schedule              { return f.ret }
func (f *Flight) HasReturn() bool                { return f.ret != nil }
func (f *Flight) BasePrice() booking.Money       { return f.basePrice }
func (f *Flight) ReturnBasePrice() booking.Money { return f.returnBasePrice }
func (f *Flight) SeatCapacity() int              { return f.seatCapacity }
func (f *Flight) Description() string            { return f.description }
func (f *Flight) IsActive() bool                 { return f.isActive }

func SeatNumber(i int) string {
	return fmt.Sprintf("S%02d", i)
}

type Seat struct {
	id            uuid.UUID
	flightID      uuid.UUID
	leg           Leg
	number        string
	class         SeatClass
	priceModifier decimal.Decimal
	reserved      bool
}

func ReconstructSeat(id, flightID uuid.UUID, leg Leg, number string, class SeatClass, modifier decimal.Decimal, reserved bool) *Seat {
	return &Seat{
		id:            id,
		flightID:      flightID,
		leg:           leg,
		number:        number,
		class:         class,
		priceModifier: modifier,
		reserved:      reserved,
	}
}

func (s *Seat) ID() uuid.UUID                  { return s.id }
func (s *Seat) FlightID() uuid.UUID            { return s.flightID }
func (s *Seat) Leg() Leg                       { return s.leg }
func (s *Seat) Number() string                 { return s.number }
func (s *Seat) Class() SeatClass               { return s.class }
func (s *Seat) PriceModifier() decimal.Decimal { return s.priceModifier }
func (s *Seat) IsReserved() bool               { return s.reserved }
