package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockNowMillis(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewClock(start, 1)
	assert.Equal(t, int64(0), c.NowMillis(start))
	assert.Equal(t, int64(1500), c.NowMillis(start.Add(1500*time.Millisecond)))

	fast := NewClock(start, 8)
	assert.Equal(t, int64(8000), fast.NowMillis(start.Add(time.Second)))
}

func TestClockNeverRunsBackward(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock(start, 1)

	assert.Equal(t, int64(0), c.NowMillis(start.Add(-time.Minute)))
	assert.Equal(t, float64(0), c.Tick(start.Add(-time.Minute)))
}

func TestClockTickDelta(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock(start, 2)

	assert.InDelta(t, 4.0, c.Tick(start.Add(2*time.Second)), 1e-9)
	// Poll marker advanced: the same instant yields no further delta.
	assert.InDelta(t, 0.0, c.Tick(start.Add(2*time.Second)), 1e-9)
	assert.InDelta(t, 2.0, c.Tick(start.Add(3*time.Second)), 1e-9)
}

func TestClockDefaultsMultiplier(t *testing.T) {
	start := time.Now()
	c := NewClock(start, 0)
	assert.Equal(t, float64(1), c.Multiplier())
}
