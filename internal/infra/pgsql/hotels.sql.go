package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const createHotel = `-- name: CreateHotel :one
INSERT INTO hotels (id, name, slug, description, location, address, contact_email, contact_phone, amenities)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

type CreateHotelParams struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	Location     string
	Address      string
	ContactEmail string
	ContactPhone string
	Amenities    []string
}

func (q *Queries) CreateHotel(ctx context.Context, db DBTX, arg CreateHotelParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createHotel,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Location,
		arg.Address,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.Amenities,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getHotelByID = `-- name: GetHotelByID :one
SELECT id, name, slug, description, location, address, contact_email, contact_phone, amenities, is_active
FROM hotels
WHERE id = $1
`

func (q *Queries) GetHotelByID(ctx context.Context, db DBTX, id uuid.UUID) (Hotel, error) {
	row := db.QueryRow(ctx, getHotelByID, id)
	var i Hotel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Location,
		&i.Address,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.Amenities,
		&i.IsActive,
	)
	return i, err
}

const listHotelsByLocation = `-- name: ListHotelsByLocation :many
SELECT id, name, slug, description, location, address, contact_email, contact_phone, amenities, is_active
FROM hotels
WHERE is_active = TRUE
  AND ($1::text = '' OR location ILIKE '%' || $1::text || '%')
ORDER BY name
`

func (q *Queries) ListHotelsByLocation(ctx context.Context, db DBTX, location string) ([]Hotel, error) {
	rows, err := db.Query(ctx, listHotelsByLocation, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Hotel{}
	for rows.Next() {
		var i Hotel
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Slug,
			&i.Description,
			&i.Location,
			&i.Address,
			&i.ContactEmail,
			&i.ContactPhone,
			&i.Amenities,
			&i.IsActive,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRoomType = `-- name: CreateRoomType :one
INSERT INTO hotel_room_types (id, hotel_id, room_type, base_price, total_rooms, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateRoomTypeParams struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	RoomType    string
	BasePrice   decimal.Decimal
	TotalRooms  int32
	Description string
}

func (q *Queries) CreateRoomType(ctx context.Context, db DBTX, arg CreateRoomTypeParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createRoomType,
		arg.ID,
		arg.HotelID,
		arg.RoomType,
		arg.BasePrice,
		arg.TotalRooms,
		arg.Description,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getRoomTypeByID = `-- name: GetRoomTypeByID :one
SELECT rt.id, rt.hotel_id, h.name, rt.room_type, rt.base_price, rt.total_rooms, rt.description, rt.updated_at
FROM hotel_room_types rt
JOIN hotels h ON h.id = rt.hotel_id
WHERE rt.id = $1
`

func (q *Queries) GetRoomTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (HotelRoomType, error) {
	row := db.QueryRow(ctx, getRoomTypeByID, id)
	var i HotelRoomType
	err := row.Scan(
		&i.ID,
		&i.HotelID,
		&i.HotelName,
		&i.RoomType,
		&i.BasePrice,
		&i.TotalRooms,
		&i.Description,
		&i.UpdatedAt,
	)
	return i, err
}

const listRoomTypesByHotelIDs = `-- name: ListRoomTypesByHotelIDs :many
SELECT rt.id, rt.hotel_id, h.name, rt.room_type, rt.base_price, rt.total_rooms, rt.description, rt.updated_at
FROM hotel_room_types rt
JOIN hotels h ON h.id = rt.hotel_id
WHERE rt.hotel_id = ANY($1::uuid[])
ORDER BY rt.hotel_id, rt.base_price, rt.room_type
`

func (q *Queries) ListRoomTypesByHotelIDs(ctx context.Context, db DBTX, hotelIDs []uuid.UUID) ([]HotelRoomType, error) {
	rows, err := db.Query(ctx, listRoomTypesByHotelIDs, hotelIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []HotelRoomType{}
	for rows.Next() {
		var i HotelRoomType
		if err := rows.Scan(
			&i.ID,
			&i.HotelID,
			&i.HotelName,
			&i.RoomType,
			&i.BasePrice,
			&i.TotalRooms,
			&i.Description,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRoomTypePricing = `-- name: UpdateRoomTypePricing :execrows
UPDATE hotel_room_types
SET base_price = $2,
    total_rooms = $3,
    updated_at = NOW()
WHERE id = $1
`

type UpdateRoomTypePricingParams struct {
	ID         uuid.UUID
	BasePrice  decimal.Decimal
	TotalRooms int32
}

func (q *Queries) UpdateRoomTypePricing(ctx context.Context, db DBTX, arg UpdateRoomTypePricingParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoomTypePricing, arg.ID, arg.BasePrice, arg.TotalRooms)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const ensureRoomInventory = `-- name: EnsureRoomInventory :exec
INSERT INTO hotel_room_inventories (room_type_id, date, available_rooms)
SELECT $1, d::date, $4
FROM generate_series($2::date, $3::date - 1, interval '1 day') AS d
ON CONFLICT (room_type_id, date) DO UPDATE
SET available_rooms = LEAST(hotel_room_inventories.available_rooms, EXCLUDED.available_rooms)
WHERE hotel_room_inventories.available_rooms > EXCLUDED.available_rooms
`

type EnsureInventoryParams struct {
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Capacity   int32
}

// EnsureRoomInventory creates missing days at full capacity and clamps days above it.
func (q *Queries) EnsureRoomInventory(ctx context.Context, db DBTX, arg EnsureInventoryParams) error {
	_, err := db.Exec(ctx, ensureRoomInventory, arg.ResourceID, arg.StartDate, arg.EndDate, arg.Capacity)
	return err
}

const listRoomInventory = `-- name: ListRoomInventory :many
SELECT date, available_rooms
FROM hotel_room_inventories
WHERE room_type_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`

type ListInventoryParams struct {
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

func (q *Queries) ListRoomInventory(ctx context.Context, db DBTX, arg ListInventoryParams) ([]DailyInventory, error) {
	return q.listInventory(ctx, db, listRoomInventory, arg)
}

const takeRoomInventory = `-- name: TakeRoomInventory :execrows
UPDATE hotel_room_inventories
SET available_rooms = available_rooms - $3
WHERE room_type_id = $1 AND date = $2 AND available_rooms >= $3
`

type TakeInventoryParams struct {
	ResourceID uuid.UUID
	Date       time.Time
	Quantity   int32
}

func (q *Queries) TakeRoomInventory(ctx context.Context, db DBTX, arg TakeInventoryParams) (int64, error) {
	result, err := db.Exec(ctx, takeRoomInventory, arg.ResourceID, arg.Date, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseRoomInventory = `-- name: ReleaseRoomInventory :execrows
UPDATE hotel_room_inventories
SET available_rooms = LEAST(available_rooms + $4, $5)
WHERE room_type_id = $1 AND date >= $2 AND date < $3
`

type ReleaseInventoryParams struct {
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Quantity   int32
	Capacity   int32
}

func (q *Queries) ReleaseRoomInventory(ctx context.Context, db DBTX, arg ReleaseInventoryParams) (int64, error) {
	result, err := db.Exec(ctx, releaseRoomInventory, arg.ResourceID, arg.StartDate, arg.EndDate, arg.Quantity, arg.Capacity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (q *Queries) listInventory(ctx context.Context, db DBTX, query string, arg ListInventoryParams) ([]DailyInventory, error) {
	rows, err := db.Query(ctx, query, arg.ResourceID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DailyInventory{}
	for rows.Next() {
		var i DailyInventory
		if err := rows.Scan(&i.Date, &i.Available); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
