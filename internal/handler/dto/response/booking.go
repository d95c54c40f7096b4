package response

import (
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

type BookingCreatedResponse struct {
	Kind             string              `json:"kind"`
	ID               string              `json:"id"`
	ReferenceNumber  string              `json:"reference_number"`
	TotalPrice       string              `json:"total_price"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"payment_status"`
	PaymentReference string              `json:"payment_reference"`
	ClientSecret     string              `json:"client_secret,omitempty"`
	Seats            map[string][]string `json:"seats,omitempty"`
	NotificationSent bool                `json:"notification_sent"`
}

func FromBookingResult(r *commands.BookingResult) *BookingCreatedResponse {
	res := &BookingCreatedResponse{
		Kind:             r.Kind.String(),
		ID:               r.ID.String(),
		ReferenceNumber:  r.Reference,
		TotalPrice:       r.TotalPrice.String(),
		Status:           r.Status.String(),
		PaymentStatus:    r.PaymentStatus.String(),
		PaymentReference: r.PaymentReference,
		NotificationSent: r.NotificationErr == nil,
	}
	if r.Payment != nil {
		res.ClientSecret = r.Payment.ClientSecret
	}
	if len(r.Seats) > 0 {
		res.Seats = make(map[string][]string, len(r.Seats))
		for leg, numbers := range r.Seats {
			res.Seats[leg.String()] = numbers
		}
	}
	return res
}

type BookingSummaryResponse struct {
	Kind            string `json:"kind"`
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number"`
	UserID          string `json:"user_id"`
	Title           string `json:"title"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	TotalPrice      string `json:"total_price"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	ContactEmail    string `json:"contact_email"`
	CreatedAt       int64  `json:"created_at"`
}

func FromBookingSummaries(views []*queries.BookingSummaryView) []*BookingSummaryResponse {
	res := make([]*BookingSummaryResponse, len(views))
	for i, v := range views {
		res[i] = &BookingSummaryResponse{}
		copyView(res[i], v)
		res[i].ReferenceNumber = v.Reference
	}
	return res
}

type BookingListResponse struct {
	Bookings   []*BookingSummaryResponse `json:"bookings"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromBookingList(views []*queries.BookingSummaryView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Bookings: FromBookingSummaries(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type HotelStayResponse struct {
	HotelID         string `json:"hotel_id"`
	HotelName       string `json:"hotel_name"`
	RoomTypeID      string `json:"room_type_id"`
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Rooms           int32  `json:"rooms"`
	Guests          int32  `json:"guests"`
	Surname         string `json:"surname"`
	SpecialRequests string `json:"special_requests"`
}

type CarRentalResponse struct {
	CarID           string  `json:"car_id"`
	Company         string  `json:"company"`
	Model           string  `json:"model"`
	PickupDate      string  `json:"pickup_date"`
	DropoffDate     string  `json:"dropoff_date"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	PickupAddress   string  `json:"pickup_address"`
	PickupTime      *string `json:"pickup_time,omitempty"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	ContactNumber   string  `json:"contact_number"`
}

type SeatAssignmentResponse struct {
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

type FlightTripResponse struct {
	FlightID      string                    `json:"flight_id"`
	Code          string                    `json:"code"`
	Origin        string                    `json:"origin"`
	Destination   string                    `json:"destination"`
	DepartureTime int64                     `json:"departure_time"`
	ArrivalTime   int64                     `json:"arrival_time"`
	Passengers    int32                     `json:"passengers"`
	RoundTrip     bool                      `json:"round_trip"`
	NotifyAdmin   bool                      `json:"notify_admin"`
	Seats         []*SeatAssignmentResponse `json:"seats"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	BookingKind       string `json:"booking_kind"`
	BookingID         string `json:"booking_id"`
	BookingReference  string `json:"booking_reference,omitempty"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	Provider          string `json:"provider"`
	ProviderReference string `json:"provider_reference"`
	CreatedAt         int64  `json:"created_at"`
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(views))
	for i, v := range views {
		res[i] = &PaymentResponse{}
		copyView(res[i], v)
	}
	return res
}

type BookingDetailResponse struct {
	Kind             string              `json:"kind"`
	ID               string              `json:"id"`
	ReferenceNumber  string              `json:"reference_number"`
	UserID           string              `json:"user_id"`
	TotalPrice       string              `json:"total_price"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"payment_status"`
	PaymentReference string              `json:"payment_reference"`
	ContactEmail     string              `json:"contact_email"`
	CreatedAt        int64               `json:"created_at"`
	Hotel            *HotelStayResponse  `json:"hotel,omitempty"`
	Car              *CarRentalResponse  `json:"car,omitempty"`
	Flight           *FlightTripResponse `json:"flight,omitempty"`
	Payments         []*PaymentResponse  `json:"payments"`
}

func FromBookingDetail(v *queries.BookingDetailView) *BookingDetailResponse {
	res := &BookingDetailResponse{
		Kind:             v.Kind,
		ID:               v.ID.String(),
		ReferenceNumber:  v.Reference,
		UserID:           v.UserID.String(),
		TotalPrice:       v.TotalPrice,
		Status:           v.Status,
		PaymentStatus:    v.PaymentStatus,
		PaymentReference: v.PaymentReference,
		ContactEmail:     v.ContactEmail,
		CreatedAt:        v.CreatedAt.Unix(),
		Payments:         FromPaymentViews(v.Payments),
	}
	switch {
	case v.Hotel != nil:
		res.Hotel = &HotelStayResponse{}
		copyView(res.Hotel, v.Hotel)
	case v.Car != nil:
		res.Car = &CarRentalResponse{}
		copyView(res.Car, v.Car)
	case v.Flight != nil:
		trip := &FlightTripResponse{
			FlightID:      v.Flight.FlightID.String(),
			Code:          v.Flight.Code,
			Origin:        v.Flight.Origin,
			Destination:   v.Flight.Destination,
			DepartureTime: v.Flight.DepartureTime.Unix(),
			ArrivalTime:   v.Flight.ArrivalTime.Unix(),
			Passengers:    v.Flight.Passengers,
			RoundTrip:     v.Flight.RoundTrip,
			NotifyAdmin:   v.Flight.NotifyAdmin,
			Seats:         make([]*SeatAssignmentResponse, len(v.Flight.Seats)),
		}
		for i, s := range v.Flight.Seats {
			trip.Seats[i] = &SeatAssignmentResponse{}
			copyView(trip.Seats[i], s)
		}
		res.Flight = trip
	}
	return res
}
