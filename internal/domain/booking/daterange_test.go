//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantNights int
		wantErr    bool
	}{
		{name: "single night", start: "2030-01-01", end: "2030-01-02", wantNights: 1},
		{name: "across month end", start: "2030-01-30", end: "2030-02-02", wantNights: 3},
		{name: "across leap day", start: "2028-02-28", end: "2028-03-01", wantNights: 2},
		{name: "same day", start: "2030-01-01", end: "2030-01-01", wantErr: true},
		{name: "inverted", start: "2030-01-05", end: "2030-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := booking.NewDateRange(mustDate(t, tt.start), mustDate(t, tt.end))
			if tt.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidDateRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, r.Nights())
			assert.Len(t, r.Days(), tt.wantNights)
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	r, err := booking.NewDateRange(mustDate(t, "2030-03-30"), mustDate(t, "2030-04-02"))
	require.NoError(t, err)

	var got []string
	for _, d := range r.Days() {
		got = append(got, booking.FormatDate(d))
	}
	assert.Equal(t, []string{"2030-03-30", "2030-03-31", "2030-04-01"}, got)
	assert.Equal(t, "2030-03-30..2030-04-02", r.String())
}

func TestDate_TruncatesToUTCDay(t *testing.T) {
	in := time.Date(2030, 5, 6, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2030, 5, 6, 0, 0, 0, 0, time.UTC), booking.Date(in))
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"2030/01/01", "01-02-2030", "2030-13-01", ""} {
		_, err := booking.ParseDate(s)
		assert.Error(t, err, s)
	}
}
