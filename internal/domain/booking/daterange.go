package booking

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is a half-open span of calendar days [start, end).
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := Date(start), Date(end)
	if !s.Before(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Nights is the number of days covered; for rentals it is the rental day count.
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + ".." + r.end.Format(DateLayout)
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
