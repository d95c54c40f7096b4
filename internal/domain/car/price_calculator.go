package car

import "travel-booking/internal/domain/booking"

type PriceCalculator interface {
	Total(c *Car, rental booking.DateRange) booking.Money
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Total is the flat trip price, or price x rental days for per-day cars.
func (DefaultPriceCalculator) Total(c *Car, rental booking.DateRange) booking.Money {
	if c.PricingMode() == PricingPerDay {
		return c.Price().MulInt(rental.Nights())
	}
	return c.Price()
}
