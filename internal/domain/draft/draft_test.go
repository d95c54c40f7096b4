//go:build unit

package draft_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	userID, resourceID := uuid.New(), uuid.New()

	k, err := draft.NewKey(userID, booking.KindHotel, resourceID)
	require.NoError(t, err)
	assert.Equal(t, userID.String()+":hotel:"+resourceID.String(), k.String())

	_, err = draft.NewKey(uuid.Nil, booking.KindHotel, resourceID)
	assert.ErrorIs(t, err, draft.ErrInvalidKey)
	_, err = draft.NewKey(userID, booking.KindCar, uuid.Nil)
	assert.ErrorIs(t, err, draft.ErrInvalidKey)
	_, err = draft.NewKey(userID, booking.Kind("boat"), resourceID)
	assert.ErrorIs(t, err, draft.ErrInvalidKey)
}

func TestDraft_Advance(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	key, err := draft.NewKey(uuid.New(), booking.KindFlight, uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name     string
		from     draft.Step
		to       draft.Step
		errIs    error
		wantStep draft.Step
	}{
		{name: "stay on search", from: draft.StepSearch, to: draft.StepSearch, wantStep: draft.StepSearch},
		{name: "one step forward", from: draft.StepSearch, to: draft.StepDetails, wantStep: draft.StepDetails},
		{name: "skip review", from: draft.StepDetails, to: draft.StepPayment, errIs: draft.ErrInvalidTransition, wantStep: draft.StepDetails},
		{name: "back to search", from: draft.StepPayment, to: draft.StepSearch, wantStep: draft.StepSearch},
		{name: "unknown step", from: draft.StepSearch, to: draft.Step("confirm"), errIs: draft.ErrInvalidStep, wantStep: draft.StepSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft.New(key, start)
			d.Step = tt.from

			err := d.Advance(tt.to, nil, start.Add(time.Minute))

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, start, d.UpdatedAt)
			} else {
				require.NoError(t, err)
				assert.Equal(t, start.Add(time.Minute), d.UpdatedAt)
			}
			assert.Equal(t, tt.wantStep, d.Step)
		})
	}
}

func TestDraft_AdvanceMergesData(t *testing.T) {
	now := time.Now()
	key, _ := draft.NewKey(uuid.New(), booking.KindHotel, uuid.New())
	d := draft.New(key, now)

	require.NoError(t, d.Advance(draft.StepSearch, map[string]any{"check_in": "2030-06-01", "rooms": 1}, now))
	require.NoError(t, d.Advance(draft.StepDetails, map[string]any{"rooms": 2, "surname": "Tanaka"}, now))

	assert.Equal(t, map[string]any{"check_in": "2030-06-01", "rooms": 2, "surname": "Tanaka"}, d.Data)
}
