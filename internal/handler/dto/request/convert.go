package request

import (
	"time"

	"travel-booking/internal/domain/booking"
)

func dateField(field, s string) (time.Time, error) {
	t, err := booking.ParseDate(s)
	if err != nil {
		return time.Time{}, booking.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return t, nil
}

func optionalDateField(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dateField(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func moneyField(field, s string) (booking.Money, error) {
	m, err := booking.ParseMoney(s)
	if err != nil {
		return booking.Money{}, booking.NewValidationError(field, "must be a decimal amount")
	}
	return m, nil
}

func optionalMoneyField(field string, s *string) (*booking.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := moneyField(field, *s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
