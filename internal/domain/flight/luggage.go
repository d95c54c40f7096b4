package flight

import (
	"travel-booking/internal/domain/booking"

	"github.com/shopspring/decimal"
)

var (
	LuggageAllowanceKg   = decimal.NewFromInt(40)
	LuggageFeePerKg      = booking.MoneyFromInt(20)
	HandLuggageMaxKg     = decimal.NewFromInt(7)
	weightPrecisionScale = int32(2)
)

// QuantizeWeight stores weights at two decimal places.
func QuantizeWeight(kg decimal.Decimal) decimal.Decimal {
	return kg.RoundBank(weightPrecisionScale)
}

// LuggageFee charges every started kilogram above the allowance.
func LuggageFee(mainKg decimal.Decimal) booking.Money {
	overage := QuantizeWeight(mainKg).Sub(LuggageAllowanceKg)
	if !overage.IsPositive() {
		return booking.ZeroMoney()
	}
	return LuggageFeePerKg.Mul(overage.Ceil())
}

func HandLuggageAllowed(handKg decimal.Decimal) bool {
	return QuantizeWeight(handKg).LessThanOrEqual(HandLuggageMaxKg)
}
