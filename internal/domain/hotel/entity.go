package hotel

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName       = errors.New("hotel name is required")
	ErrInvalidLocation   = errors.New("hotel location is required")
	ErrInvalidRoomKind   = errors.New("invalid room type")
	ErrInvalidBasePrice  = errors.New("base price must not be negative")
	ErrInvalidTotalRooms = errors.New("total rooms must be between 1 and 10000")
)

// MaxTotalRooms caps the rooms of one type.
const MaxTotalRooms = 10000

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

type Hotel struct {
	id           uuid.UUID
	name         string
	slug         string
	description  string
	location     string
	address      string
	contactEmail string
	contactPhone string
	amenities    []string
	isActive     bool
}

type HotelParams struct {
	Name         string
	Description  string
	Location     string
	Address      string
	ContactEmail string
	ContactPhone string
	Amenities    []string
}

func NewHotel(p HotelParams) (*Hotel, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	location := strings.TrimSpace(p.Location)
	if location == "" {
		return nil, ErrInvalidLocation
	}
	return &Hotel{
		id:           uuid.New(),
		name:         name,
		slug:         Slugify(name),
		description:  p.Description,
		location:     location,
		address:      p.Address,
		contactEmail: p.ContactEmail,
		contactPhone: p.ContactPhone,
		amenities:    p.Amenities,
		isActive:     true,
	}, nil
}

func Slugify(name string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Slug() string         { return h.slug }
func (h *Hotel) Description() string  { return h.description }
func (h *Hotel) Location() string     { return h.location }
func (h *Hotel) Address() string      { return h.address }
func (h *Hotel) ContactEmail() string { return h.contactEmail }
func (h *Hotel) ContactPhone() string { return h.contactPhone }
func (h *Hotel) Amenities() []string  { return h.amenities }
func (h *Hotel) IsActive() bool       { return h.isActive }

// RoomType is the bookable unit of a hotel; its total rooms bound the daily inventory.
type RoomType struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	hotelName   string
	kind        RoomKind
	basePrice   booking.Money
	totalRooms  int
	description string
	updatedAt   time.Time
}

func NewRoomType(hotelID uuid.UUID, kind RoomKind, basePrice booking.Money, totalRooms int, description string) (*RoomType, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidRoomKind
	}
	if basePrice.IsNegative() {
		return nil, ErrInvalidBasePrice
	}
	if totalRooms < 1 || totalRooms > MaxTotalRooms {
		return nil, ErrInvalidTotalRooms
	}
	return &RoomType{
		id:          uuid.New(),
		hotelID:     hotelID,
		kind:        kind,
		basePrice:   basePrice,
		totalRooms:  totalRooms,
		description: description,
	}, nil
}

func ReconstructRoomType(id, hotelID uuid.UUID, hotelName string, kind RoomKind, basePrice booking.Money, totalRooms int, description string, updatedAt time.Time) *RoomType {
	return &RoomType{
		id:          id,
		hotelID:     hotelID,
		hotelName:   hotelName,
		kind:        kind,
		basePrice:   basePrice,
		totalRooms:  totalRooms,
		description: description,
		updatedAt:   updatedAt,
	}
}

// Reprice applies a partial pricing update.
func (rt *RoomType) Reprice(basePrice *booking.Money, totalRooms *int) error {
	price := patch.Coalesce(basePrice, rt.basePrice)
	total := patch.Coalesce(totalRooms, rt.totalRooms)
	if price.IsNegative() {
		return ErrInvalidBasePrice
	}
	if total < 1 || total > MaxTotalRooms {
		return ErrInvalidTotalRooms
	}
	rt.basePrice = price
	rt.totalRooms = total
	return nil
}

func (rt *RoomType) ID() uuid.UUID            { return rt.id }
func (rt *RoomType) HotelID() uuid.UUID       { return rt.hotelID }
func (rt *RoomType) HotelName() string        { return rt.hotelName }
func (rt *RoomType) Kind() RoomKind           { return rt.kind }
func (rt *RoomType) BasePrice() booking.Money { return rt.basePrice }
func (rt *RoomType) TotalRooms() int          { return rt.totalRooms }
func (rt *RoomType) Description() string      { return rt.description }
func (rt *RoomType) UpdatedAt() time.Time     { return rt.updatedAt }
