//go:build unit

package booking_test

import (
	"testing"

	"travel-booking/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "120", want: "120.00"},
		{name: "two places", input: "99.95", want: "99.95"},
		{name: "rounds half to even down", input: "2.345", want: "2.34"},
		{name: "rounds half to even up", input: "2.355", want: "2.36"},
		{name: "negative is parsed", input: "-5", want: "-5.00"},
		{name: "garbage", input: "12,50", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := booking.ParseMoney(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("MulInt keeps two places", func(t *testing.T) {
		assert.Equal(t, "361.50", booking.MustParseMoney("120.50").MulInt(3).String())
	})

	t.Run("Mul re-quantizes", func(t *testing.T) {
		m := booking.MustParseMoney("10.00").Mul(decimal.RequireFromString("1.125"))
		assert.Equal(t, "11.25", m.String())
	})

	t.Run("Sum of nothing is zero", func(t *testing.T) {
		assert.True(t, booking.Sum().IsZero())
	})

	t.Run("Sum adds every value", func(t *testing.T) {
		total := booking.Sum(booking.MustParseMoney("0.10"), booking.MustParseMoney("0.20"), booking.MoneyFromInt(1))
		assert.True(t, total.Equal(booking.MustParseMoney("1.30")))
	})

	t.Run("MinorUnits is cents", func(t *testing.T) {
		assert.Equal(t, int64(12345), booking.MustParseMoney("123.45").MinorUnits())
		assert.Equal(t, int64(0), booking.ZeroMoney().MinorUnits())
	})

	t.Run("MustParseMoney panics on bad input", func(t *testing.T) {
		assert.Panics(t, func() { booking.MustParseMoney("abc") })
	})
}
