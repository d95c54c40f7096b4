//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"travel-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestSystem_NowIsUTC(t *testing.T) {
	now := clock.NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixed(t *testing.T) {
	start := time.Date(2030, 3, 30, 23, 30, 0, 0, time.UTC)
	c := clock.NewFixed(start)
	assert.Equal(t, start, c.Now())

	c.Advance(45 * time.Minute)
	assert.Equal(t, time.Date(2030, 3, 31, 0, 15, 0, 0, time.UTC), c.Now())

	c.AdvanceDays(1)
	assert.Equal(t, time.Date(2030, 4, 1, 0, 15, 0, 0, time.UTC), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestFixed_ConcurrentUse(t *testing.T) {
	c := clock.NewFixed(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Advance(time.Minute)
		}()
		go func() {
			defer wg.Done()
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2030, 1, 1, 0, 8, 0, 0, time.UTC), c.Now())
}
