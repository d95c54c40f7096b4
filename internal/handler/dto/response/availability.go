package response

import (
	"travel-booking/internal/usecase/commands"
)

type FlightQuoteResponse struct {
	SeatTotal   string   `json:"seat_total"`
	ReturnFare  string   `json:"return_fare"`
	LuggageFees []string `json:"luggage_fees"`
	Total       string   `json:"total"`
}

type AvailabilityResponse struct {
	Available  bool                 `json:"available"`
	Reasons    []string             `json:"reasons"`
	Nights     int                  `json:"nights,omitempty"`
	TotalPrice string               `json:"total_price,omitempty"`
	Flight     *FlightQuoteResponse `json:"flight,omitempty"`
}

func FromAvailabilityQuote(q *commands.AvailabilityQuote) *AvailabilityResponse {
	res := &AvailabilityResponse{
		Available: q.Available,
		Reasons:   q.Reasons,
		Nights:    q.Nights,
	}
	if res.Reasons == nil {
		res.Reasons = []string{}
	}
	if q.Total != nil {
		res.TotalPrice = q.Total.String()
	}
	if q.Flight != nil {
		fees := make([]string, len(q.Flight.LuggageFees))
		for i, f := range q.Flight.LuggageFees {
			fees[i] = f.String()
		}
		res.Flight = &FlightQuoteResponse{
			SeatTotal:   q.Flight.SeatTotal.String(),
			ReturnFare:  q.Flight.ReturnFare.String(),
			LuggageFees: fees,
			Total:       q.Flight.Total.String(),
		}
	}
	return res
}
