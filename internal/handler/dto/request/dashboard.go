package request

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpdateBookingStatusRequest struct {
	Status        *string `json:"status" binding:"omitempty,booking_status"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,payment_status"`
}

func (r *UpdateBookingStatusRequest) ToCommand(kind booking.Kind, reference string) commands.UpdateBookingStatusRequest {
	req := commands.UpdateBookingStatusRequest{Kind: kind, Reference: reference}
	if r.Status != nil {
		req.Status = ptr.Of(booking.Status(*r.Status))
	}
	if r.PaymentStatus != nil {
		req.PaymentStatus = ptr.Of(booking.PaymentStatus(*r.PaymentStatus))
	}
	return req
}

type CreateHotelRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Description  string   `json:"description"`
	Location     string   `json:"location" binding:"required,max=150"`
	Address      string   `json:"address" binding:"max=255"`
	ContactEmail string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string   `json:"contact_phone" binding:"max=30"`
	Amenities    []string `json:"amenities" binding:"omitempty,dive,max=100"`
}

func (r *CreateHotelRequest) ToParams() hotel.HotelParams {
	return hotel.HotelParams{
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		Address:      r.Address,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Amenities:    r.Amenities,
	}
}

type CreateRoomTypeRequest struct {
	RoomType    string `json:"room_type" binding:"required,room_kind"`
	BasePrice   string `json:"base_price" binding:"required,money"`
	TotalRooms  int    `json:"total_rooms" binding:"required,min=1,max=10000"`
	Description string `json:"description"`
}

func (r *CreateRoomTypeRequest) ToCommand(hotelID uuid.UUID) (commands.CreateRoomTypeRequest, error) {
	price, err := moneyField("base_price", r.BasePrice)
	if err != nil {
		return commands.CreateRoomTypeRequest{}, err
	}
	return commands.CreateRoomTypeRequest{
		HotelID:     hotelID,
		Kind:        hotel.RoomKind(r.RoomType),
		BasePrice:   price,
		TotalRooms:  r.TotalRooms,
		Description: r.Description,
	}, nil
}

type RepriceRoomTypeRequest struct {
	BasePrice  *string `json:"base_price" binding:"omitempty,money"`
	TotalRooms *int    `json:"total_rooms" binding:"omitempty,min=1,max=10000"`
}

func (r *RepriceRoomTypeRequest) ToCommand() (commands.RepriceRoomTypeRequest, error) {
	price, err := optionalMoneyField("base_price", r.BasePrice)
	if err != nil {
		return commands.RepriceRoomTypeRequest{}, err
	}
	return commands.RepriceRoomTypeRequest{BasePrice: price, TotalRooms: r.TotalRooms}, nil
}

type CreateCarRequest struct {
	Company         string `json:"company" binding:"required,max=100"`
	Model           string `json:"model" binding:"required,max=100"`
	Category        string `json:"category" binding:"max=50"`
	Seats           int    `json:"seats" binding:"min=0,max=100"`
	LuggageCapacity int    `json:"luggage_capacity" binding:"min=0,max=100"`
	Location        string `json:"location" binding:"required,max=150"`
	PickupLocation  string `json:"pickup_location" binding:"max=150"`
	DropoffLocation string `json:"dropoff_location" binding:"max=150"`
	Price           string `json:"price" binding:"required,money"`
	PricingMode     string `json:"pricing_mode" binding:"required,pricing_mode"`
	Units           int    `json:"units" binding:"omitempty,min=1,max=1000"`
}

func (r *CreateCarRequest) ToParams() (car.Params, error) {
	price, err := moneyField("price", r.Price)
	if err != nil {
		return car.Params{}, err
	}
	units := r.Units
	if units == 0 {
		units = 1
	}
	return car.Params{
		Company:         r.Company,
		Model:           r.Model,
		Category:        r.Category,
		Seats:           r.Seats,
		LuggageCapacity: r.LuggageCapacity,
		Location:        r.Location,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		Price:           price,
		PricingMode:     car.PricingMode(r.PricingMode),
		Units:           units,
	}, nil
}

type RepriceCarRequest struct {
	Price       *string `json:"price" binding:"omitempty,money"`
	PricingMode *string `json:"pricing_mode" binding:"omitempty,pricing_mode"`
	Units       *int    `json:"units" binding:"omitempty,min=1,max=1000"`
}

func (r *RepriceCarRequest) ToCommand() (commands.RepriceCarRequest, error) {
	price, err := optionalMoneyField("price", r.Price)
	if err != nil {
		return commands.RepriceCarRequest{}, err
	}
	req := commands.RepriceCarRequest{Price: price, Units: r.Units}
	if r.PricingMode != nil {
		req.PricingMode = ptr.Of(car.PricingMode(*r.PricingMode))
	}
	return req, nil
}

type FlightLegRequest struct {
	Code          string    `json:"code" binding:"required,max=20"`
	Origin        string    `json:"origin" binding:"required,max=100"`
	Destination   string    `json:"destination" binding:"required,max=100"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
}

func (l FlightLegRequest) schedule() flight.Schedule {
	return flight.Schedule{
		Code:          l.Code,
		Origin:        l.Origin,
		Destination:   l.Destination,
		DepartureTime: l.DepartureTime,
		ArrivalTime:   l.ArrivalTime,
	}
}

type CreateFlightRequest struct {
	Outbound        FlightLegRequest  `json:"outbound" binding:"required"`
	Return          *FlightLegRequest `json:"return" binding:"omitempty"`
	BasePrice       string            `json:"base_price" binding:"required,money"`
	ReturnBasePrice *string           `json:"return_base_price" binding:"omitempty,money"`
	Description     string            `json:"description"`
}

func (r *CreateFlightRequest) ToParams() (flight.Params, error) {
	price, err := moneyField("base_price", r.BasePrice)
	if err != nil {
		return flight.Params{}, err
	}
	returnPrice, err := optionalMoneyField("return_base_price", r.ReturnBasePrice)
	if err != nil {
		return flight.Params{}, err
	}
	p := flight.Params{
		Outbound:        r.Outbound.schedule(),
		BasePrice:       price,
		ReturnBasePrice: booking.ZeroMoney(),
		Description:     r.Description,
	}
	if returnPrice != nil {
		p.ReturnBasePrice = *returnPrice
	}
	if r.Return != nil {
		p.Return = ptr.Of(r.Return.schedule())
	}
	return p, nil
}

type RepriceFlightRequest struct {
	BasePrice       *string `json:"base_price" binding:"omitempty,money"`
	ReturnBasePrice *string `json:"return_base_price" binding:"omitempty,money"`
}

func (r *RepriceFlightRequest) ToCommand() (commands.RepriceFlightRequest, error) {
	price, err := optionalMoneyField("base_price", r.BasePrice)
	if err != nil {
		return commands.RepriceFlightRequest{}, err
	}
	returnPrice, err := optionalMoneyField("return_base_price", r.ReturnBasePrice)
	if err != nil {
		return commands.RepriceFlightRequest{}, err
	}
	return commands.RepriceFlightRequest{BasePrice: price, ReturnBasePrice: returnPrice}, nil
}
