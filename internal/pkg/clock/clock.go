// Package clock supplies the current instant to booking validation, payment
// records, draft expiry and notification timestamps.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC, the zone booking dates are kept in.
type System struct{}

func NewSystem() Clock {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed stays at one instant until moved. Safe for concurrent use.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *Fixed) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AdvanceDays moves by calendar days, keeping the wall time.
func (c *Fixed) AdvanceDays(n int) {
	c.mu.Lock()
	c.now = c.now.AddDate(0, 0, n)
	c.mu.Unlock()
}
