package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Money is rendered as a fixed two-decimal string.

type RoomTypeView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	RoomType    string    `json:"room_type"`
	BasePrice   string    `json:"base_price"`
	TotalRooms  int32     `json:"total_rooms"`
	Description string    `json:"description"`
}

type HotelView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Address      string          `json:"address"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone"`
	Amenities    []string        `json:"amenities"`
	RoomTypes    []*RoomTypeView `json:"room_types"`
}

type CarView struct {
	ID              uuid.UUID `json:"id"`
	Company         string    `json:"company"`
	Model           string    `json:"model"`
	Category        string    `json:"category"`
	Seats           int32     `json:"seats"`
	LuggageCapacity int32     `json:"luggage_capacity"`
	Location        string    `json:"location"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	Price           string    `json:"price"`
	PricingMode     string    `json:"pricing_mode"`
	Units           int32     `json:"units"`
}

type FlightLegView struct {
	Code          string    `json:"code"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type FlightView struct {
	ID              uuid.UUID      `json:"id"`
	Outbound        FlightLegView  `json:"outbound"`
	Return          *FlightLegView `json:"return,omitempty"`
	BasePrice       string         `json:"base_price"`
	ReturnBasePrice string         `json:"return_base_price"`
	SeatCapacity    int32          `json:"seat_capacity"`
	AvailableSeats  int32          `json:"available_seats"`
	Description     string         `json:"description"`
}

type BookingSummaryView struct {
	Kind          string    `json:"kind"`
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference_number"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	StartDate     string    `json:"start_date,omitempty"`
	EndDate       string    `json:"end_date,omitempty"`
	TotalPrice    string    `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ContactEmail  string    `json:"contact_email"`
	CreatedAt     time.Time `json:"created_at"`
}

type HotelStayView struct {
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	RoomTypeID      uuid.UUID `json:"room_type_id"`
	RoomType        string    `json:"room_type"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Rooms           int32     `json:"rooms"`
	Guests          int32     `json:"guests"`
	Surname         string    `json:"surname"`
	SpecialRequests string    `json:"special_requests"`
}

type CarRentalView struct {
	CarID           uuid.UUID `json:"car_id"`
	Company         string    `json:"company"`
	Model           string    `json:"model"`
	PickupDate      string    `json:"pickup_date"`
	DropoffDate     string    `json:"dropoff_date"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupAddress   string    `json:"pickup_address"`
	PickupTime      *string   `json:"pickup_time,omitempty"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ContactNumber   string    `json:"contact_number"`
}

type SeatAssignmentView struct {
	Leg               string `json:"leg"`
	SeatNumber        string `json:"seat_number"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ContactNumber     string `json:"contact_number"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	MainLuggageWeight string `json:"main_luggage_weight"`
	HandLuggageWeight string `json:"hand_luggage_weight"`
	LuggageFee        string `json:"luggage_fee"`
}

type FlightTripView struct {
	FlightID      uuid.UUID             `json:"flight_id"`
	Code          string                `json:"code"`
	Origin        string                `json:"origin"`
	Destination   string                `json:"destination"`
	DepartureTime time.Time             `json:"departure_time"`
	ArrivalTime   time.Time             `json:"arrival_time"`
	Passengers    int32                 `json:"passengers"`
	RoundTrip     bool                  `json:"round_trip"`
	NotifyAdmin   bool                  `json:"notify_admin"`
	Seats         []*SeatAssignmentView `json:"seats"`
}

type PaymentView struct {
	ID                uuid.UUID `json:"id"`
	BookingKind       string    `json:"booking_kind"`
	BookingID         uuid.UUID `json:"booking_id"`
	BookingReference  string    `json:"booking_reference,omitempty"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	Provider          string    `json:"provider"`
	ProviderReference string    `json:"provider_reference"`
	CreatedAt         time.Time `json:"created_at"`
}

// BookingDetailView carries exactly one of Hotel, Car or Flight, matching Kind.
type BookingDetailView struct {
	Kind             string          `json:"kind"`
	ID               uuid.UUID       `json:"id"`
	Reference        string          `json:"reference_number"`
	UserID           uuid.UUID       `json:"user_id"`
	TotalPrice       string          `json:"total_price"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference string          `json:"payment_reference"`
	ContactEmail     string          `json:"contact_email"`
	CreatedAt        time.Time       `json:"created_at"`
	Hotel            *HotelStayView  `json:"hotel,omitempty"`
	Car              *CarRentalView  `json:"car,omitempty"`
	Flight           *FlightTripView `json:"flight,omitempty"`
	Payments         []*PaymentView  `json:"payments"`
}

type BookingCounts struct {
	Hotel  int64 `json:"hotel"`
	Car    int64 `json:"car"`
	Flight int64 `json:"flight"`
}

type DashboardOverview struct {
	Counts          BookingCounts  `json:"counts"`
	TotalRevenue    string         `json:"total_revenue"`
	PendingPayments int64          `json:"pending_payments"`
	RecentPayments  []*PaymentView `json:"recent_payments"`
}

type DashboardBookings struct {
	Hotel  []*BookingSummaryView `json:"hotel"`
	Car    []*BookingSummaryView `json:"car"`
	Flight []*BookingSummaryView `json:"flight"`
}
