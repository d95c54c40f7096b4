//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestHotel inserts an active hotel with a single room type and returns the room type id.
func CreateTestHotel(t *testing.T, db DBLike, location, roomType, basePrice string, totalRooms int) (hotelID, roomTypeID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	hotelID, roomTypeID = uuid.New(), uuid.New()
	slug := "hotel-" + strings.ReplaceAll(hotelID.String(), "-", "")[:12]

	_, err := db.Exec(ctx, "INSERT INTO hotels (id, name, slug, location) VALUES ($1, $2, $3, $4)",
		hotelID, "Test Hotel", slug, location)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO hotel_room_types (id, hotel_id, room_type, base_price, total_rooms) VALUES ($1, $2, $3, $4, $5)",
		roomTypeID, hotelID, roomType, basePrice, totalRooms)
	require.NoError(t, err)

	return hotelID, roomTypeID
}

func CreateTestCar(t *testing.T, db DBLike, location, price, pricingMode string, units int) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (id, company, model, location, pickup_location, dropoff_location, price, pricing_mode, units) VALUES ($1, 'Test Rentals', 'Corolla', $2, $2, $2, $3, $4, $5)",
		carID, location, price, pricingMode, units)
	require.NoError(t, err)

	return carID
}

// CreateTestFlight inserts a one-way flight and its outbound seat map.
func CreateTestFlight(t *testing.T, db DBLike, code, origin, destination string, departure time.Time, basePrice string, seats int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	flightID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO flights (id, code, origin, destination, departure_time, arrival_time, base_price, seat_capacity) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		flightID, code, origin, destination, departure, departure.Add(2*time.Hour), basePrice, seats)
	require.NoError(t, err)

	for i := 1; i <= seats; i++ {
		_, err := db.Exec(ctx, "INSERT INTO flight_seats (flight_id, leg, seat_number) VALUES ($1, 'outbound', $2)",
			flightID, fmt.Sprintf("S%02d", i))
		require.NoError(t, err)
	}

	return flightID
}

// SeedReferenceData inserts the accounts the dashboard notifications go to.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, role) VALUES
		    (gen_random_uuid(), 'staff@example.com', 'staff'),
		    (gen_random_uuid(), 'admin@example.com', 'admin')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
