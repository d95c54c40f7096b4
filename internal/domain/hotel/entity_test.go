//go:build unit

package hotel_test

import (
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	h, err := hotel.NewHotel(hotel.HotelParams{Name: "  The Grand Hotel & Spa ", Location: "Kyoto"})
	require.NoError(t, err)
	assert.Equal(t, "The Grand Hotel & Spa", h.Name())
	assert.Equal(t, "the-grand-hotel-spa", h.Slug())
	assert.True(t, h.IsActive())

	_, err = hotel.NewHotel(hotel.HotelParams{Name: " ", Location: "Kyoto"})
	assert.ErrorIs(t, err, hotel.ErrInvalidName)

	_, err = hotel.NewHotel(hotel.HotelParams{Name: "Inn"})
	assert.ErrorIs(t, err, hotel.ErrInvalidLocation)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ryokan-2-0", hotel.Slugify("--Ryokan 2.0!--"))
	assert.Equal(t, "", hotel.Slugify("!!!"))
}

func TestRoomType(t *testing.T) {
	_, err := hotel.NewRoomType(uuid.New(), hotel.RoomKind("suite"), booking.MoneyFromInt(1), 1, "")
	assert.ErrorIs(t, err, hotel.ErrInvalidRoomKind)

	_, err = hotel.NewRoomType(uuid.New(), hotel.RoomSingle, booking.MustParseMoney("-1"), 1, "")
	assert.ErrorIs(t, err, hotel.ErrInvalidBasePrice)

	_, err = hotel.NewRoomType(uuid.New(), hotel.RoomSingle, booking.MoneyFromInt(1), 0, "")
	assert.ErrorIs(t, err, hotel.ErrInvalidTotalRooms)

	_, err = hotel.NewRoomType(uuid.New(), hotel.RoomSingle, booking.MoneyFromInt(1), hotel.MaxTotalRooms+1, "")
	assert.ErrorIs(t, err, hotel.ErrInvalidTotalRooms)

	t.Run("reprice is partial", func(t *testing.T) {
		rt, err := hotel.NewRoomType(uuid.New(), hotel.RoomFamily, booking.MoneyFromInt(200), 4, "")
		require.NoError(t, err)

		total := 6
		require.NoError(t, rt.Reprice(nil, &total))
		assert.Equal(t, "200.00", rt.BasePrice().String())
		assert.Equal(t, 6, rt.TotalRooms())

		bad := 0
		assert.ErrorIs(t, rt.Reprice(nil, &bad), hotel.ErrInvalidTotalRooms)
		huge := 3_000_000_000
		assert.ErrorIs(t, rt.Reprice(nil, &huge), hotel.ErrInvalidTotalRooms)
		assert.Equal(t, 6, rt.TotalRooms(), "failed reprice leaves the room type unchanged")
	})
}

func TestRoomKind_Occupancy(t *testing.T) {
	assert.Equal(t, 1, hotel.RoomSingle.Occupancy())
	assert.Equal(t, 2, hotel.RoomDouble.Occupancy())
	assert.Equal(t, 4, hotel.RoomFamily.Occupancy())
}

func TestCheckAvailability(t *testing.T) {
	ledger, err := inventory.NewLedger(3)
	require.NoError(t, err)
	ledger.Set(day(t, "2030-06-02"), 1)

	got := hotel.CheckAvailability(ledger, day(t, "2030-06-01"), day(t, "2030-06-04"), 2)
	assert.False(t, got.Available)
	assert.Equal(t, []string{"Only 1 rooms left on 2030-06-02"}, got.Reasons)

	got = hotel.CheckAvailability(ledger, day(t, "2030-06-01"), day(t, "2030-06-04"), 1)
	assert.True(t, got.Available)
	assert.Empty(t, got.Reasons)

	got = hotel.CheckAvailability(ledger, day(t, "2030-06-04"), day(t, "2030-06-01"), 1)
	assert.Equal(t, []string{booking.ReasonInvalidDateRange}, got.Reasons)
}
