//go:build unit

package car_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 5, 20, 8, 0, 0, 0, time.UTC)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func rental(t *testing.T, from, to string) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(day(t, from), day(t, to))
	require.NoError(t, err)
	return r
}

func newCar(t *testing.T, mutate func(p *car.Params)) *car.Car {
	t.Helper()
	p := car.Params{
		Company:  "Test Rentals",
		Model:    "Corolla",
		Location: "Lisbon",
		Price:    booking.MustParseMoney("45.00"),
	}
	if mutate != nil {
		mutate(&p)
	}
	c, err := car.NewCar(p)
	require.NoError(t, err)
	return c
}

func services() *car.Services {
	return &car.Services{Clock: clock.NewFixed(now), PriceCalculator: car.NewDefaultPriceCalculator()}
}

type testCase struct {
	name      string
	mutate    func(p *car.BookingParams)
	wantField string
}

func runCases(t *testing.T, c *car.Car, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := car.BookingParams{
				UserID:       uuid.New(),
				Rental:       rental(t, "2030-06-01", "2030-06-03"),
				FirstName:    "Aiko",
				LastName:     "Sato",
				ContactEmail: "aiko@example.com",
			}
			if tc.mutate != nil {
				tc.mutate(&p)
			}

			b, err := car.NewBooking(services(), c, p)

			if tc.wantField != "" {
				var verr *booking.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusBooked, b.Status())
		})
	}
}

func TestNewBooking_Validation(t *testing.T) {
	runCases(t, newCar(t, nil), []testCase{
		{name: "valid"},
		{name: "valid pickup time", mutate: func(p *car.BookingParams) { p.PickupTime = ptr.Of("23:59") }},
		{name: "pickup time out of range", mutate: func(p *car.BookingParams) { p.PickupTime = ptr.Of("24:00") }, wantField: "pickup_time"},
		{name: "pickup time without padding", mutate: func(p *car.BookingParams) { p.PickupTime = ptr.Of("9:30") }, wantField: "pickup_time"},
		{name: "bad email", mutate: func(p *car.BookingParams) { p.ContactEmail = "aiko@" }, wantField: "contact_email"},
		{name: "pickup in the past", mutate: func(p *car.BookingParams) { p.Rental = rental(t, "2030-05-19", "2030-05-21") }, wantField: "pickup_date"},
	})
}

func TestNewBooking_NoLocationAnywhere(t *testing.T) {
	c := car.ReconstructCar(uuid.New(), car.Params{Company: "X", Model: "Y", Price: booking.MoneyFromInt(10), PricingMode: car.PricingPerTrip, Units: 1}, true)
	runCases(t, c, []testCase{
		{name: "no location", wantField: "pickup_location"},
		{name: "explicit locations", mutate: func(p *car.BookingParams) {
			p.PickupLocation = "Porto"
			p.DropoffLocation = "Faro"
		}},
	})
}

func TestNewBooking_LocationsFallBackToCar(t *testing.T) {
	c := newCar(t, func(p *car.Params) { p.DropoffLocation = "Lisbon Airport" })

	b, err := car.NewBooking(services(), c, car.BookingParams{
		Rental:         rental(t, "2030-06-01", "2030-06-03"),
		PickupLocation: "  ",
		ContactEmail:   "aiko@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", b.PickupLocation())
	assert.Equal(t, "Lisbon Airport", b.DropoffLocation())
}

func TestDefaultPriceCalculator(t *testing.T) {
	calc := car.NewDefaultPriceCalculator()
	r := rental(t, "2030-06-01", "2030-06-05")

	perDay := newCar(t, func(p *car.Params) { p.PricingMode = car.PricingPerDay })
	assert.Equal(t, "180.00", calc.Total(perDay, r).String())

	perTrip := newCar(t, nil)
	assert.Equal(t, "45.00", calc.Total(perTrip, r).String())
}

func TestNewCar(t *testing.T) {
	c := newCar(t, nil)
	assert.Equal(t, car.PricingPerTrip, c.PricingMode())
	assert.Equal(t, 1, c.Units())
	assert.Equal(t, "Lisbon", c.PickupLocation())
	assert.Equal(t, "Lisbon", c.DropoffLocation())
	assert.Equal(t, "Test Rentals Corolla", c.DisplayName())

	tests := []struct {
		name   string
		mutate func(p *car.Params)
		errIs  error
	}{
		{name: "no company", mutate: func(p *car.Params) { p.Company = "" }, errIs: car.ErrInvalidCompany},
		{name: "no model", mutate: func(p *car.Params) { p.Model = " " }, errIs: car.ErrInvalidModel},
		{name: "negative price", mutate: func(p *car.Params) { p.Price = booking.MustParseMoney("-0.01") }, errIs: car.ErrInvalidPrice},
		{name: "unknown mode", mutate: func(p *car.Params) { p.PricingMode = "hourly" }, errIs: car.ErrInvalidPricingMode},
		{name: "negative units", mutate: func(p *car.Params) { p.Units = -1 }, errIs: car.ErrInvalidUnits},
		{name: "units beyond int32", mutate: func(p *car.Params) { p.Units = 3_000_000_000 }, errIs: car.ErrInvalidUnits},
		{name: "too many seats", mutate: func(p *car.Params) { p.Seats = car.MaxCapacity + 1 }, errIs: car.ErrInvalidCapacity},
		{name: "negative luggage capacity", mutate: func(p *car.Params) { p.LuggageCapacity = -1 }, errIs: car.ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := car.Params{Company: "A", Model: "B", Price: booking.MoneyFromInt(1)}
			tt.mutate(&p)
			_, err := car.NewCar(p)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestReprice(t *testing.T) {
	c := newCar(t, nil)
	mode := car.PricingPerDay
	require.NoError(t, c.Reprice(nil, &mode, nil))
	assert.Equal(t, car.PricingPerDay, c.PricingMode())
	assert.Equal(t, "45.00", c.Price().String())

	zero := 0
	assert.ErrorIs(t, c.Reprice(nil, nil, &zero), car.ErrInvalidUnits)
	huge := car.MaxUnits + 1
	assert.ErrorIs(t, c.Reprice(nil, nil, &huge), car.ErrInvalidUnits)
	assert.Equal(t, 1, c.Units())
}

func TestCheckAvailability(t *testing.T) {
	ledger, err := inventory.NewLedger(1)
	require.NoError(t, err)
	ledger.Set(day(t, "2030-06-02"), 0)

	got := car.CheckAvailability(ledger, day(t, "2030-06-01"), day(t, "2030-06-04"))
	assert.False(t, got.Available)
	assert.Equal(t, []string{"Car unavailable on 2030-06-02"}, got.Reasons)

	got = car.CheckAvailability(ledger, day(t, "2030-06-03"), day(t, "2030-06-05"))
	assert.True(t, got.Available)
}
