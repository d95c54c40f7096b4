package request

import (
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CarAvailabilityQuery struct {
	PickupDate  string `form:"pickup_date" binding:"required,date"`
	DropoffDate string `form:"dropoff_date" binding:"required,date"`
}

func (q *CarAvailabilityQuery) ToCommand(carID uuid.UUID) (commands.CarAvailabilityRequest, error) {
	pickup, err := dateField("pickup_date", q.PickupDate)
	if err != nil {
		return commands.CarAvailabilityRequest{}, err
	}
	dropoff, err := dateField("dropoff_date", q.DropoffDate)
	if err != nil {
		return commands.CarAvailabilityRequest{}, err
	}
	return commands.CarAvailabilityRequest{CarID: carID, PickupDate: pickup, DropoffDate: dropoff}, nil
}

type CreateCarBookingRequest struct {
	CarID           uuid.UUID `json:"car_id" binding:"required"`
	PickupDate      string    `json:"pickup_date" binding:"required,date"`
	DropoffDate     string    `json:"dropoff_date" binding:"required,date"`
	PickupLocation  string    `json:"pickup_location" binding:"max=150"`
	DropoffLocation string    `json:"dropoff_location" binding:"max=150"`
	PickupAddress   string    `json:"pickup_address" binding:"max=255"`
	PickupTime      *string   `json:"pickup_time"`
	FirstName       string    `json:"first_name" binding:"required,max=100"`
	LastName        string    `json:"last_name" binding:"required,max=100"`
	ContactNumber   string    `json:"contact_number" binding:"required,max=30"`
	ContactEmail    string    `json:"contact_email" binding:"required,email"`
	PaymentToken    *string   `json:"payment_token"`
}

func (r *CreateCarBookingRequest) ToCommand() (commands.CarBookingRequest, error) {
	pickup, err := dateField("pickup_date", r.PickupDate)
	if err != nil {
		return commands.CarBookingRequest{}, err
	}
	dropoff, err := dateField("dropoff_date", r.DropoffDate)
	if err != nil {
		return commands.CarBookingRequest{}, err
	}
	return commands.CarBookingRequest{
		CarID:           r.CarID,
		PickupDate:      pickup,
		DropoffDate:     dropoff,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		PickupAddress:   r.PickupAddress,
		PickupTime:      ptr.NilIfZero(ptr.Deref(r.PickupTime)),
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ContactNumber:   r.ContactNumber,
		ContactEmail:    r.ContactEmail,
		PaymentToken:    r.PaymentToken,
	}, nil
}
