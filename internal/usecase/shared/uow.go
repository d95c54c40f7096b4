package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: Single-attempt transaction for work with external side effects (charges)
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	HotelInventory() DailyInventoryRepository
	CarInventory() DailyInventoryRepository
	FlightSeats() FlightSeatRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Catalog() CatalogRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

type CommandReads interface {
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*hotel.RoomType, error)
	CarByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	FlightByID(ctx context.Context, id uuid.UUID) (*flight.Flight, error)
	// BookingByReference locks the booking row when called inside a transaction
	BookingByReference(ctx context.Context, kind booking.Kind, reference string) (*BookingSnapshot, error)
	StaffRecipients(ctx context.Context) ([]user.Recipient, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, db pgsql.DBTX, u user.Recipient) error
}

// DailyInventoryRepository manages per-day remaining units of a hotel room type or a car.
type DailyInventoryRepository interface {
	// Ensure creates missing days of span at capacity and clamps days above it
	Ensure(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, capacity int) error
	Load(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, capacity int) (*inventory.Ledger, error)
	// TakeDay decrements one day when at least quantity units remain; false means the race was lost
	TakeDay(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, day time.Time, quantity int) (bool, error)
	Release(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, quantity, capacity int) error
}

type FlightSeatRepository interface {
	ListSeats(ctx context.Context, db pgsql.DBTX, flightID uuid.UUID) ([]*flight.Seat, error)
	// LockUnreserved locks up to n free seats of leg in seat-number order
	LockUnreserved(ctx context.Context, db pgsql.DBTX, flightID uuid.UUID, leg flight.Leg, n int) ([]*flight.Seat, error)
	MarkReserved(ctx context.Context, db pgsql.DBTX, seatIDs []uuid.UUID) (int64, error)
	Release(ctx context.Context, db pgsql.DBTX, seatIDs []uuid.UUID) error
	CreateSeats(ctx context.Context, db pgsql.DBTX, seats []*flight.Seat) error
}

// BookingRepository inserts return false when the reference number is already taken.
type BookingRepository interface {
	CreateHotel(ctx context.Context, db pgsql.DBTX, b *hotel.Booking) (bool, error)
	CreateCar(ctx context.Context, db pgsql.DBTX, b *car.Booking) (bool, error)
	CreateFlight(ctx context.Context, db pgsql.DBTX, b *flight.Booking) (bool, error)
	UpdateStatus(ctx context.Context, db pgsql.DBTX, kind booking.Kind, reference string, status booking.Status, paymentStatus booking.PaymentStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db pgsql.DBTX, r *payment.Record) error
}

type CatalogRepository interface {
	CreateHotel(ctx context.Context, db pgsql.DBTX, h *hotel.Hotel) error
	CreateRoomType(ctx context.Context, db pgsql.DBTX, rt *hotel.RoomType) error
	UpdateRoomType(ctx context.Context, db pgsql.DBTX, rt *hotel.RoomType) error
	CreateCar(ctx context.Context, db pgsql.DBTX, c *car.Car) error
	UpdateCar(ctx context.Context, db pgsql.DBTX, c *car.Car) error
	CreateFlight(ctx context.Context, db pgsql.DBTX, f *flight.Flight) error
	UpdateFlight(ctx context.Context, db pgsql.DBTX, f *flight.Flight) error
}
