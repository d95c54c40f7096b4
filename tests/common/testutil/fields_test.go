//go:build unit

package testutil_test

import (
	"testing"

	"travel-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
)

type passenger struct {
	FirstName string `json:"first_name"`
	HandKg    string `json:"hand_luggage_weight,omitempty"`
}

type flightRequest struct {
	Passengers int         `json:"passengers"`
	Details    []passenger `json:"passenger_details"`
}

func TestField(t *testing.T) {
	req := flightRequest{Passengers: 2, Details: []passenger{{FirstName: "Aiko"}, {FirstName: "Ken"}}}

	tests := []struct {
		name  string
		key   string
		value any
		check func(t *testing.T, m map[string]any)
	}{
		{
			name:  "top level",
			key:   "passengers",
			value: 0,
			check: func(t *testing.T, m map[string]any) { assert.Equal(t, 0, m["passengers"]) },
		},
		{
			name: "delete",
			key:  "passengers",
			check: func(t *testing.T, m map[string]any) {
				assert.NotContains(t, m, "passengers")
			},
		},
		{
			name:  "nested array element",
			key:   "passenger_details.1.hand_luggage_weight",
			value: "8",
			check: func(t *testing.T, m map[string]any) {
				details := m["passenger_details"].([]any)
				assert.Equal(t, "8", details[1].(map[string]any)["hand_luggage_weight"])
				assert.NotContains(t, details[0].(map[string]any), "hand_luggage_weight")
			},
		},
		{
			name:  "index out of range is ignored",
			key:   "passenger_details.5.first_name",
			value: "Nobody",
			check: func(t *testing.T, m map[string]any) {
				assert.Len(t, m["passenger_details"], 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, testutil.DtoMap(t, req, testutil.Field(tt.key, tt.value)))
		})
	}
}
