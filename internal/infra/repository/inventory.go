package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// inventoryQueries is the per-day statement set of one inventory table.
type inventoryQueries struct {
	ensure  func(ctx context.Context, db pgsql.DBTX, arg pgsql.EnsureInventoryParams) error
	list    func(ctx context.Context, db pgsql.DBTX, arg pgsql.ListInventoryParams) ([]pgsql.DailyInventory, error)
	take    func(ctx context.Context, db pgsql.DBTX, arg pgsql.TakeInventoryParams) (int64, error)
	release func(ctx context.Context, db pgsql.DBTX, arg pgsql.ReleaseInventoryParams) (int64, error)
}

type RoomInventoryQueries interface {
	EnsureRoomInventory(ctx context.Context, db pgsql.DBTX, arg pgsql.EnsureInventoryParams) error
	ListRoomInventory(ctx context.Context, db pgsql.DBTX, arg pgsql.ListInventoryParams) ([]pgsql.DailyInventory, error)
	TakeRoomInventory(ctx context.Context, db pgsql.DBTX, arg pgsql.TakeInventoryParams) (int64, error)
	ReleaseRoomInventory(ctx context.Context, db pgsql.DBTX, arg pgsql.ReleaseInventoryParams) (int64, error)
}

type CarAvailabilityQueries interface {
	EnsureCarAvailability(ctx context.Context, db pgsql.DBTX, arg pgsql.EnsureInventoryParams) error
	ListCarAvailability(ctx context.Context, db pgsql.DBTX, arg pgsql.ListInventoryParams) ([]pgsql.DailyInventory, error)
	TakeCarAvailability(ctx context.Context, db pgsql.DBTX, arg pgsql.TakeInventoryParams) (int64, error)
	ReleaseCarAvailability(ctx context.Context, db pgsql.DBTX, arg pgsql.ReleaseInventoryParams) (int64, error)
}

// DailyInventoryRepository serves both hotel room and car inventories; only the table differs.
type DailyInventoryRepository struct {
	name    string
	queries inventoryQueries
}

func NewHotelInventoryRepository(queries RoomInventoryQueries) *DailyInventoryRepository {
	return &DailyInventoryRepository{
		name: "room inventory",
		queries: inventoryQueries{
			ensure:  queries.EnsureRoomInventory,
			list:    queries.ListRoomInventory,
			take:    queries.TakeRoomInventory,
			release: queries.ReleaseRoomInventory,
		},
	}
}

func NewCarInventoryRepository(queries CarAvailabilityQueries) *DailyInventoryRepository {
	return &DailyInventoryRepository{
		name: "car availability",
		queries: inventoryQueries{
			ensure:  queries.EnsureCarAvailability,
			list:    queries.ListCarAvailability,
			take:    queries.TakeCarAvailability,
			release: queries.ReleaseCarAvailability,
		},
	}
}

func (r *DailyInventoryRepository) Ensure(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, capacity int) error {
	cap32, err := pgconv.Int32(capacity)
	if err != nil {
		return infra.WrapRepoErr("invalid "+r.name+" capacity", err, infra.KindConflict)
	}
	err = r.queries.ensure(ctx, db, pgsql.EnsureInventoryParams{
		ResourceID: resourceID,
		StartDate:  span.Start(),
		EndDate:    span.End(),
		Capacity:   cap32,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to ensure "+r.name, err)
	}
	return nil
}

func (r *DailyInventoryRepository) Load(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, capacity int) (*inventory.Ledger, error) {
	ledger, err := inventory.NewLedger(capacity)
	if err != nil {
		return nil, err
	}
	rows, err := r.queries.list(ctx, db, pgsql.ListInventoryParams{
		ResourceID: resourceID,
		StartDate:  span.Start(),
		EndDate:    span.End(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load "+r.name, err)
	}
	for _, row := range rows {
		ledger.Set(pgconv.DateFromPgtype(row.Date), int(row.Available))
	}
	return ledger, nil
}

func (r *DailyInventoryRepository) TakeDay(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, day time.Time, quantity int) (bool, error) {
	qty, err := pgconv.Int32(quantity)
	if err != nil {
		return false, infra.WrapRepoErr("invalid "+r.name+" quantity", err, infra.KindConflict)
	}
	n, err := r.queries.take(ctx, db, pgsql.TakeInventoryParams{
		ResourceID: resourceID,
		Date:       booking.Date(day),
		Quantity:   qty,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement "+r.name, err)
	}
	return n == 1, nil
}

func (r *DailyInventoryRepository) Release(ctx context.Context, db pgsql.DBTX, resourceID uuid.UUID, span booking.DateRange, quantity, capacity int) error {
	qty, err := pgconv.Int32(quantity)
	if err != nil {
		return infra.WrapRepoErr("invalid "+r.name+" quantity", err, infra.KindConflict)
	}
	cap32, err := pgconv.Int32(capacity)
	if err != nil {
		return infra.WrapRepoErr("invalid "+r.name+" capacity", err, infra.KindConflict)
	}
	_, err = r.queries.release(ctx, db, pgsql.ReleaseInventoryParams{
		ResourceID: resourceID,
		StartDate:  span.Start(),
		EndDate:    span.End(),
		Quantity:   qty,
		Capacity:   cap32,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release "+r.name, err)
	}
	return nil
}
