package repository

import (
	"context"

	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	CreateHotel(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateHotelParams) (uuid.UUID, error)
	CreateRoomType(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRoomTypeParams) (uuid.UUID, error)
	UpdateRoomTypePricing(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRoomTypePricingParams) (int64, error)
	CreateCar(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateCarParams) (uuid.UUID, error)
	UpdateCarPricing(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCarPricingParams) (int64, error)
	CreateFlight(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateFlightParams) (uuid.UUID, error)
	UpdateFlightPricing(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateFlightPricingParams) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
}

func NewCatalogRepository(queries CatalogWriteQueries) *CatalogRepository {
	return &CatalogRepository{queries: queries}
}

func (r *CatalogRepository) CreateHotel(ctx context.Context, db pgsql.DBTX, h *hotel.Hotel) error {
	if _, err := r.queries.CreateHotel(ctx, db, converter.HotelToInfra(h)); err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *CatalogRepository) CreateRoomType(ctx context.Context, db pgsql.DBTX, rt *hotel.RoomType) error {
	params, err := converter.RoomTypeToInfra(rt)
	if err != nil {
		return infra.WrapRepoErr("invalid room type", err, infra.KindConflict)
	}
	if _, err := r.queries.CreateRoomType(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateRoomType(ctx context.Context, db pgsql.DBTX, rt *hotel.RoomType) error {
	params, err := converter.RoomTypeToInfra(rt)
	if err != nil {
		return infra.WrapRepoErr("invalid room type", err, infra.KindConflict)
	}
	n, err := r.queries.UpdateRoomTypePricing(ctx, db, pgsql.UpdateRoomTypePricingParams{
		ID:         params.ID,
		BasePrice:  params.BasePrice,
		TotalRooms: params.TotalRooms,
	})
	return updateOutcome("room type", n, err)
}

func (r *CatalogRepository) CreateCar(ctx context.Context, db pgsql.DBTX, c *car.Car) error {
	params, err := converter.CarToInfra(c)
	if err != nil {
		return infra.WrapRepoErr("invalid car", err, infra.KindConflict)
	}
	if _, err := r.queries.CreateCar(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateCar(ctx context.Context, db pgsql.DBTX, c *car.Car) error {
	params, err := converter.CarToInfra(c)
	if err != nil {
		return infra.WrapRepoErr("invalid car", err, infra.KindConflict)
	}
	n, err := r.queries.UpdateCarPricing(ctx, db, pgsql.UpdateCarPricingParams{
		ID:          params.ID,
		Price:       params.Price,
		PricingMode: params.PricingMode,
		Units:       params.Units,
	})
	return updateOutcome("car", n, err)
}

func (r *CatalogRepository) CreateFlight(ctx context.Context, db pgsql.DBTX, f *flight.Flight) error {
	params, err := converter.FlightToInfra(f)
	if err != nil {
		return infra.WrapRepoErr("invalid flight", err, infra.KindConflict)
	}
	if _, err := r.queries.CreateFlight(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create flight", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateFlight(ctx context.Context, db pgsql.DBTX, f *flight.Flight) error {
	n, err := r.queries.UpdateFlightPricing(ctx, db, pgsql.UpdateFlightPricingParams{
		ID:              f.ID(),
		BasePrice:       f.BasePrice().Decimal(),
		ReturnBasePrice: f.ReturnBasePrice().Decimal(),
	})
	return updateOutcome("flight", n, err)
}

func updateOutcome(what string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr("failed to update "+what, err)
	}
	if n == 0 {
		return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
	}
	return nil
}
