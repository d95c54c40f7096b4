//go:build unit

package patch_test

import (
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/patch"
	"travel-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	price := booking.MustParseMoney("120.00")

	assert.Equal(t, "120.00", patch.Coalesce(nil, price).String())
	assert.Equal(t, "95.50", patch.Coalesce(ptr.Of(booking.MustParseMoney("95.50")), price).String())
	assert.Equal(t, 0, patch.Coalesce(ptr.Of(0), 5), "explicit zero is kept")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		in          *booking.Status
		wantNext    booking.Status
		wantChanged bool
	}{
		{name: "omitted", in: nil, wantNext: booking.StatusBooked},
		{name: "same value", in: ptr.Of(booking.StatusBooked), wantNext: booking.StatusBooked},
		{name: "new value", in: ptr.Of(booking.StatusCheckedIn), wantNext: booking.StatusCheckedIn, wantChanged: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed := patch.Apply(tt.in, booking.StatusBooked)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}
