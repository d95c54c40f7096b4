//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCounters(t *testing.T) {
	m := metrics.New("travel")

	m.BookingCreated(booking.KindHotel, booking.MustParseMoney("360.00"))
	m.BookingCreated(booking.KindHotel, booking.MustParseMoney("40.50"))
	m.BookingFailed(booking.KindFlight, booking.PhaseCharging)

	expected := `
# HELP travel_booking_created_total Bookings committed, by kind.
# TYPE travel_booking_created_total counter
travel_booking_created_total{kind="hotel"} 2
# HELP travel_booking_revenue_total Total price of committed bookings, by kind.
# TYPE travel_booking_revenue_total counter
travel_booking_revenue_total{kind="hotel"} 400.5
# HELP travel_booking_failed_total Booking attempts that did not commit, by kind and phase.
# TYPE travel_booking_failed_total counter
travel_booking_failed_total{kind="flight",phase="charging"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"travel_booking_created_total", "travel_booking_revenue_total", "travel_booking_failed_total")
	require.NoError(t, err)
}

func TestObservations(t *testing.T) {
	m := metrics.New("travel")

	m.ObserveCharge(payment.ProviderTest, true, 120*time.Millisecond)
	m.ObserveCharge(payment.ProviderStripe, false, time.Second)
	m.ObserveHTTP(http.MethodPost, "/api/bookings/hotel", http.StatusCreated, 30*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "travel_payment_charge_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(m.Registry(), "travel_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := metrics.New("travel")
	m.BookingCreated(booking.KindCar, booking.MustParseMoney("90.00"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `travel_booking_created_total{kind="car"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
