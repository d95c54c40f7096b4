package request

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/draft"
	"travel-booking/internal/domain/hotel"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking tags used in binding:"..." to v.
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"booking_kind": func(fl validator.FieldLevel) bool {
			return booking.Kind(fl.Field().String()).IsValid()
		},
		"date": func(fl validator.FieldLevel) bool {
			_, err := booking.ParseDate(fl.Field().String())
			return err == nil
		},
		"money": func(fl validator.FieldLevel) bool {
			m, err := booking.ParseMoney(fl.Field().String())
			return err == nil && !m.IsNegative()
		},
		"room_kind": func(fl validator.FieldLevel) bool {
			return hotel.RoomKind(fl.Field().String()).IsValid()
		},
		"pricing_mode": func(fl validator.FieldLevel) bool {
			return car.PricingMode(fl.Field().String()).IsValid()
		},
		"draft_step": func(fl validator.FieldLevel) bool {
			return draft.Step(fl.Field().String()).IsValid()
		},
		"booking_status": func(fl validator.FieldLevel) bool {
			s := booking.Status(fl.Field().String())
			for _, k := range booking.Kinds() {
				if s.IsValidFor(k) {
					return true
				}
			}
			return false
		},
		"payment_status": func(fl validator.FieldLevel) bool {
			return booking.PaymentStatus(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
