package hotel

import "travel-booking/internal/domain/booking"

type PriceCalculator interface {
	Total(rt *RoomType, stay booking.DateRange, rooms int) booking.Money
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Total is base price x nights x rooms.
func (DefaultPriceCalculator) Total(rt *RoomType, stay booking.DateRange, rooms int) booking.Money {
	return rt.BasePrice().MulInt(stay.Nights()).MulInt(rooms)
}
