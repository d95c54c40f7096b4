package pgsql

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Hotel struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	Location     string
	Address      string
	ContactEmail string
	ContactPhone string
	Amenities    []string
	IsActive     bool
}

type HotelRoomType struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	HotelName   string
	RoomType    string
	BasePrice   decimal.Decimal
	TotalRooms  int32
	Description string
	UpdatedAt   pgtype.Timestamptz
}

type Car struct {
	ID              uuid.UUID
	Company         string
	Model           string
	Category        string
	Seats           int32
	LuggageCapacity int32
	Location        string
	PickupLocation  string
	DropoffLocation string
	Price           decimal.Decimal
	PricingMode     string
	Units           int32
	IsActive        bool
}

type Flight struct {
	ID                  uuid.UUID
	Code                string
	Origin              string
	Destination         string
	DepartureTime       time.Time
	ArrivalTime         time.Time
	ReturnCode          pgtype.Text
	ReturnOrigin        pgtype.Text
	ReturnDestination   pgtype.Text
	ReturnDepartureTime pgtype.Timestamptz
	ReturnArrivalTime   pgtype.Timestamptz
	BasePrice           decimal.Decimal
	ReturnBasePrice     decimal.Decimal
	SeatCapacity        int32
	Description         string
	IsActive            bool
}

type FlightSeat struct {
	ID            uuid.UUID
	FlightID      uuid.UUID
	Leg           string
	SeatNumber    string
	SeatClass     string
	PriceModifier decimal.Decimal
	IsReserved    bool
}

type DailyInventory struct {
	Date      pgtype.Date
	Available int32
}

type Payment struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BookingKind       string
	BookingID         uuid.UUID
	Amount            decimal.Decimal
	Currency          string
	Status            string
	Provider          string
	ProviderReference string
	ClientSecret      string
	Metadata          []byte
	CreatedAt         pgtype.Timestamptz
}
