package response

import (
	"travel-booking/internal/usecase/queries"
)

type RoomTypeResponse struct {
	ID          string `json:"id"`
	HotelID     string `json:"hotel_id"`
	HotelName   string `json:"hotel_name"`
	RoomType    string `json:"room_type"`
	BasePrice   string `json:"base_price"`
	TotalRooms  int32  `json:"total_rooms"`
	Description string `json:"description"`
}

type HotelResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	Location     string              `json:"location"`
	Address      string              `json:"address"`
	ContactEmail string              `json:"contact_email"`
	ContactPhone string              `json:"contact_phone"`
	Amenities    []string            `json:"amenities"`
	RoomTypes    []*RoomTypeResponse `json:"room_types"`
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	res := make([]*HotelResponse, len(views))
	for i, v := range views {
		h := &HotelResponse{
			ID:           v.ID.String(),
			Name:         v.Name,
			Slug:         v.Slug,
			Description:  v.Description,
			Location:     v.Location,
			Address:      v.Address,
			ContactEmail: v.ContactEmail,
			ContactPhone: v.ContactPhone,
			Amenities:    v.Amenities,
			RoomTypes:    make([]*RoomTypeResponse, len(v.RoomTypes)),
		}
		if h.Amenities == nil {
			h.Amenities = []string{}
		}
		for j, rt := range v.RoomTypes {
			h.RoomTypes[j] = &RoomTypeResponse{}
			copyView(h.RoomTypes[j], rt)
		}
		res[i] = h
	}
	return res
}

type CarResponse struct {
	ID              string `json:"id"`
	Company         string `json:"company"`
	Model           string `json:"model"`
	Category        string `json:"category"`
	Seats           int32  `json:"seats"`
	LuggageCapacity int32  `json:"luggage_capacity"`
	Location        string `json:"location"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	Price           string `json:"price"`
	PricingMode     string `json:"pricing_mode"`
	Units           int32  `json:"units"`
}

func FromCarViews(views []*queries.CarView) []*CarResponse {
	res := make([]*CarResponse, len(views))
	for i, v := range views {
		res[i] = &CarResponse{}
		copyView(res[i], v)
	}
	return res
}

type FlightLegResponse struct {
	Code          string `json:"code"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime int64  `json:"departure_time"`
	ArrivalTime   int64  `json:"arrival_time"`
}

type FlightResponse struct {
	ID              string             `json:"id"`
	Outbound        FlightLegResponse  `json:"outbound"`
	Return          *FlightLegResponse `json:"return,omitempty"`
	BasePrice       string             `json:"base_price"`
	ReturnBasePrice string             `json:"return_base_price"`
	SeatCapacity    int32              `json:"seat_capacity"`
	AvailableSeats  int32              `json:"available_seats"`
	Description     string             `json:"description"`
}

func FromFlightViews(views []*queries.FlightView) []*FlightResponse {
	res := make([]*FlightResponse, len(views))
	for i, v := range views {
		f := &FlightResponse{
			ID:              v.ID.String(),
			BasePrice:       v.BasePrice,
			ReturnBasePrice: v.ReturnBasePrice,
			SeatCapacity:    v.SeatCapacity,
			AvailableSeats:  v.AvailableSeats,
			Description:     v.Description,
		}
		copyView(&f.Outbound, &v.Outbound)
		if v.Return != nil {
			f.Return = &FlightLegResponse{}
			copyView(f.Return, v.Return)
		}
		res[i] = f
	}
	return res
}
