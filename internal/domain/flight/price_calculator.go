package flight

import "travel-booking/internal/domain/booking"

type Quote struct {
	SeatTotal   booking.Money
	ReturnFare  booking.Money
	LuggageFees []booking.Money
	Total       booking.Money
}

type PriceCalculator interface {
	Quote(f *Flight, outbound []*Seat, passengers []Passenger, roundTrip bool) Quote
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Quote prices each outbound seat at base x modifier, adds the flat return
// fare per traveller and each passenger's checked luggage fee.
func (DefaultPriceCalculator) Quote(f *Flight, outbound []*Seat, passengers []Passenger, roundTrip bool) Quote {
	q := Quote{
		SeatTotal:   booking.ZeroMoney(),
		ReturnFare:  booking.ZeroMoney(),
		LuggageFees: make([]booking.Money, 0, len(passengers)),
	}
	for _, s := range outbound {
		q.SeatTotal = q.SeatTotal.Add(f.BasePrice().Mul(s.PriceModifier()))
	}
	if roundTrip && f.HasReturn() {
		q.ReturnFare = f.ReturnBasePrice().MulInt(len(outbound))
	}
	total := q.SeatTotal.Add(q.ReturnFare)
	for _, p := range passengers {
		fee := p.LuggageFee()
		q.LuggageFees = append(q.LuggageFees, fee)
		total = total.Add(fee)
	}
	q.Total = total
	return q
}
