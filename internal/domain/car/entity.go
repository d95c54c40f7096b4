package car

import (
	"errors"
	"strings"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidCompany     = errors.New("company is required")
	ErrInvalidModel       = errors.New("model is required")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
	ErrInvalidUnits       = errors.New("units must be between 1 and 1000")
	ErrInvalidCapacity    = errors.New("seats and luggage capacity must be between 0 and 100")
)

const (
	MaxUnits    = 1000
	MaxCapacity = 100
)

type PricingMode string

const (
	PricingPerTrip PricingMode = "per_trip"
	PricingPerDay  PricingMode = "per_day"
)

func (m PricingMode) IsValid() bool {
	return m == PricingPerTrip || m == PricingPerDay
}

type Car struct {
	id              uuid.UUID
	company         string
	model           string
	category        string
	seats           int
	luggageCapacity int
	location        string
	pickupLocation  string
	dropoffLocation string
	price           booking.Money
	pricingMode     PricingMode
	units           int
	isActive        bool
}

type Params struct {
	Company         string
	Model           string
	Category        string
	Seats           int
	LuggageCapacity int
	Location        string
	PickupLocation  string
	DropoffLocation string
	Price           booking.Money
	PricingMode     PricingMode
	Units           int
}

func NewCar(p Params) (*Car, error) {
	if strings.TrimSpace(p.Company) == "" {
		return nil, ErrInvalidCompany
	}
	if strings.TrimSpace(p.Model) == "" {
		return nil, ErrInvalidModel
	}
	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	mode := p.PricingMode
	if mode == "" {
		mode = PricingPerTrip
	}
	if !mode.IsValid() {
		return nil, ErrInvalidPricingMode
	}
	units := p.Units
	if units == 0 {
		units = 1
	}
	if units < 1 || units > MaxUnits {
		return nil, ErrInvalidUnits
	}
	if !inRange(p.Seats, 0, MaxCapacity) || !inRange(p.LuggageCapacity, 0, MaxCapacity) {
		return nil, ErrInvalidCapacity
	}
	c := &Car{
		id:              uuid.New(),
		company:         strings.TrimSpace(p.Company),
		model:           strings.TrimSpace(p.Model),
		category:        p.Category,
		seats:           p.Seats,
		luggageCapacity: p.LuggageCapacity,
		location:        p.Location,
		pickupLocation:  p.PickupLocation,
		dropoffLocation: p.DropoffLocation,
		price:           p.Price,
		pricingMode:     mode,
		units:           units,
		isActive:        true,
	}
	if c.pickupLocation == "" {
		c.pickupLocation = c.location
	}
	if c.dropoffLocation == "" {
		c.dropoffLocation = c.location
	}
	return c, nil
}

func ReconstructCar(id uuid.UUID, p Params, isActive bool) *Car {
	return &Car{
		id:              id,
		company:         p.Company,
		model:           p.Model,
		category:        p.Category,
		seats:           p.Seats,
		luggageCapacity: p.LuggageCapacity,
		location:        p.Location,
		pickupLocation:  p.PickupLocation,
		dropoffLocation: p.DropoffLocation,
		price:           p.Price,
		pricingMode:     p.PricingMode,
		units:           p.Units,
		isActive:        isActive,
	}
}

// Reprice applies a partial pricing update.
func (c *Car) Reprice(price *booking.Money, mode *PricingMode, units *int) error {
	newPrice := patch.Coalesce(price, c.price)
	newMode := patch.Coalesce(mode, c.pricingMode)
	newUnits := patch.Coalesce(units, c.units)
	if newPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if !newMode.IsValid() {
		return ErrInvalidPricingMode
	}
	if newUnits < 1 || newUnits > MaxUnits {
		return ErrInvalidUnits
	}
	c.price, c.pricingMode, c.units = newPrice, newMode, newUnits
	return nil
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func (c *Car) DisplayName() string {
	return c.company + " " + c.model
}

func (c *Car) ID() uuid.UUID            { return c.id }
func (c *Car) Company() string          { return c.company }
func (c *Car) Model() string            { return c.model }
func (c *Car) Category() string         { return c.category }
func (c *Car) Seats() int               { return c.seats }
func (c *Car) LuggageCapacity() int     { return c.luggageCapacity }
func (c *Car) Location() string         { return c.location }
func (c *Car) PickupLocation() string   { return c.pickupLocation }
func (c *Car) DropoffLocation() string  { return c.dropoffLocation }
func (c *Car) Price() booking.Money     { return c.price }
func (c *Car) PricingMode() PricingMode { return c.pricingMode }
func (c *Car) Units() int               { return c.units }
func (c *Car) IsActive() bool           { return c.isActive }
