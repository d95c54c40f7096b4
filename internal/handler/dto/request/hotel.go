package request

import (
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type HotelAvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required,date"`
	CheckOut string `form:"check_out" binding:"required,date"`
	Rooms    int    `form:"rooms,default=1" binding:"min=1,max=10000"`
}

func (q *HotelAvailabilityQuery) ToCommand(roomTypeID uuid.UUID) (commands.HotelAvailabilityRequest, error) {
	in, err := dateField("check_in", q.CheckIn)
	if err != nil {
		return commands.HotelAvailabilityRequest{}, err
	}
	out, err := dateField("check_out", q.CheckOut)
	if err != nil {
		return commands.HotelAvailabilityRequest{}, err
	}
	return commands.HotelAvailabilityRequest{RoomTypeID: roomTypeID, CheckIn: in, CheckOut: out, Rooms: q.Rooms}, nil
}

type CreateHotelBookingRequest struct {
	RoomTypeID      uuid.UUID `json:"room_type_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required,date"`
	CheckOut        string    `json:"check_out" binding:"required,date"`
	Rooms           int       `json:"rooms" binding:"required,min=1,max=10000"`
	Guests          int       `json:"guests" binding:"required,min=1,max=40000"`
	Surname         string    `json:"surname" binding:"required,max=100"`
	ContactEmail    string    `json:"contact_email" binding:"required,email"`
	SpecialRequests string    `json:"special_requests" binding:"max=1000"`
	PaymentToken    *string   `json:"payment_token"`
}

func (r *CreateHotelBookingRequest) ToCommand() (commands.HotelBookingRequest, error) {
	in, err := dateField("check_in", r.CheckIn)
	if err != nil {
		return commands.HotelBookingRequest{}, err
	}
	out, err := dateField("check_out", r.CheckOut)
	if err != nil {
		return commands.HotelBookingRequest{}, err
	}
	return commands.HotelBookingRequest{
		RoomTypeID:      r.RoomTypeID,
		CheckIn:         in,
		CheckOut:        out,
		Rooms:           r.Rooms,
		Guests:          r.Guests,
		Surname:         r.Surname,
		ContactEmail:    r.ContactEmail,
		SpecialRequests: r.SpecialRequests,
		PaymentToken:    r.PaymentToken,
	}, nil
}
