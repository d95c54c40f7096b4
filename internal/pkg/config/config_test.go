//go:build unit

package config_test

import (
	"testing"
	"time"

	"travel-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "test defaults are valid"},
		{name: "zero reference tries", mutate: func(c *config.Config) { c.Booking.ReferenceTries = 0 }, wantErr: "BOOKING_REFERENCE_TRIES"},
		{name: "currency too long", mutate: func(c *config.Config) { c.Booking.Currency = "euro" }, wantErr: `BOOKING_CURRENCY "euro"`},
		{name: "no draft ttl", mutate: func(c *config.Config) { c.Booking.DraftTTL = 0 }, wantErr: "BOOKING_DRAFT_TTL"},
		{name: "bad jwt duration", mutate: func(c *config.Config) { c.JWT.Duration = "a day" }, wantErr: "JWT_DURATION"},
		{name: "sample ratio above one", mutate: func(c *config.Config) { c.Tracing.SampleRatio = 2 }, wantErr: "TRACING_SAMPLE_RATIO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Booking.ReferenceTries = 0
	cfg.Booking.DraftTTL = -time.Minute

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOOKING_REFERENCE_TRIES")
	assert.Contains(t, err.Error(), "BOOKING_DRAFT_TTL")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "travel")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "usd", cfg.Booking.Currency)
	assert.Equal(t, 5, cfg.Booking.ReferenceTries)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)

	t.Setenv("BOOKING_REFERENCE_TRIES", "0")
	_, err = config.LoadConfig()
	assert.ErrorContains(t, err, "BOOKING_REFERENCE_TRIES")
}
