package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const carColumns = `id, company, model, category, seats, luggage_capacity, location, pickup_location, dropoff_location, price, pricing_mode, units, is_active`

func scanCar(row interface{ Scan(...any) error }) (Car, error) {
	var i Car
	err := row.Scan(
		&i.ID,
		&i.Company,
		&i.Model,
		&i.Category,
		&i.Seats,
		&i.LuggageCapacity,
		&i.Location,
		&i.PickupLocation,
		&i.DropoffLocation,
		&i.Price,
		&i.PricingMode,
		&i.Units,
		&i.IsActive,
	)
	return i, err
}

const createCar = `-- name: CreateCar :one
INSERT INTO cars (id, company, model, category, seats, luggage_capacity, location, pickup_location, dropoff_location, price, pricing_mode, units)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`

type CreateCarParams struct {
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
}

func (q *Queries) CreateCar(ctx context.Context, db DBTX, arg CreateCarParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createCar,
		arg.ID,
		arg.Company,
		arg.Model,
		arg.Category,
		arg.Seats,
		arg.LuggageCapacity,
		arg.Location,
		arg.PickupLocation,
		arg.DropoffLocation,
		arg.Price,
		arg.PricingMode,
		arg.Units,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCarByID = `-- name: GetCarByID :one
SELECT ` + carColumns + `
FROM cars
WHERE id = $1
`

func (q *Queries) GetCarByID(ctx context.Context, db DBTX, id uuid.UUID) (Car, error) {
	return scanCar(db.QueryRow(ctx, getCarByID, id))
}

const listCarsByLocation = `-- name: ListCarsByLocation :many
SELECT ` + carColumns + `
FROM cars
WHERE is_active = TRUE
  AND ($1::text = '' OR location ILIKE '%' || $1::text || '%')
ORDER BY company, model
`

func (q *Queries) ListCarsByLocation(ctx context.Context, db DBTX, location string) ([]Car, error) {
	rows, err := db.Query(ctx, listCarsByLocation, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Car{}
	for rows.Next() {
		i, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCarPricing = `-- name: UpdateCarPricing :execrows
UPDATE cars
SET price = $2,
    pricing_mode = $3,
    units = $4,
    updated_at = NOW()
WHERE id = $1
`

type UpdateCarPricingParams struct {
	ID          uuid.UUID
	Price       decimal.Decimal
	PricingMode string
	Units       int32
}

func (q *Queries) UpdateCarPricing(ctx context.Context, db DBTX, arg UpdateCarPricingParams) (int64, error) {
	result, err := db.Exec(ctx, updateCarPricing, arg.ID, arg.Price, arg.PricingMode, arg.Units)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const ensureCarAvailability = `-- name: EnsureCarAvailability :exec
INSERT INTO car_availabilities (car_id, date, available_units)
SELECT $1, d::date, $4
FROM generate_series($2::date, $3::date - 1, interval '1 day') AS d
ON CONFLICT (car_id, date) DO UPDATE
SET available_units = LEAST(car_availabilities.available_units, EXCLUDED.available_units)
WHERE car_availabilities.available_units > EXCLUDED.available_units
`

func (q *Queries) EnsureCarAvailability(ctx context.Context, db DBTX, arg EnsureInventoryParams) error {
	_, err := db.Exec(ctx, ensureCarAvailability, arg.ResourceID, arg.StartDate, arg.EndDate, arg.Capacity)
	return err
}

const listCarAvailability = `-- name: ListCarAvailability :many
SELECT date, available_units
FROM car_availabilities
WHERE car_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`

func (q *Queries) ListCarAvailability(ctx context.Context, db DBTX, arg ListInventoryParams) ([]DailyInventory, error) {
	return q.listInventory(ctx, db, listCarAvailability, arg)
}

const takeCarAvailability = `-- name: TakeCarAvailability :execrows
UPDATE car_availabilities
SET available_units = available_units - $3
WHERE car_id = $1 AND date = $2 AND available_units >= $3
`

func (q *Queries) TakeCarAvailability(ctx context.Context, db DBTX, arg TakeInventoryParams) (int64, error) {
	result, err := db.Exec(ctx, takeCarAvailability, arg.ResourceID, arg.Date, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseCarAvailability = `-- name: ReleaseCarAvailability :execrows
UPDATE car_availabilities
SET available_units = LEAST(available_units + $4, $5)
WHERE car_id = $1 AND date >= $2 AND date < $3
`

func (q *Queries) ReleaseCarAvailability(ctx context.Context, db DBTX, arg ReleaseInventoryParams) (int64, error) {
	result, err := db.Exec(ctx, releaseCarAvailability, arg.ResourceID, arg.StartDate, arg.EndDate, arg.Quantity, arg.Capacity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
