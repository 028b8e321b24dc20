package game

import "time"

// Clock maps wall-clock polling time onto virtual game time through a speed
// multiplier. It is pull-driven: virtual time only moves when observed.
type Clock struct {
	start      time.Time
	lastPoll   time.Time
	multiplier float64
}

func NewClock(start time.Time, multiplier float64) *Clock {
	if multiplier <= 0 {
		multiplier = 1
	}
	return &Clock{start: start, lastPoll: start, multiplier: multiplier}
}

// NowMillis returns virtual elapsed game time in milliseconds at the given
// wall instant. Instants before the session start clamp to zero, so virtual
// time never runs backward.
func (c *Clock) NowMillis(now time.Time) int64 {
	elapsed := now.Sub(c.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return int64(float64(elapsed.Milliseconds()) * c.multiplier)
}

// Tick returns the virtual seconds elapsed since the previous Tick and
// advances the poll marker. Used for continuous effects such as passive gold.
func (c *Clock) Tick(now time.Time) float64 {
	delta := now.Sub(c.lastPoll)
	if delta < 0 {
		return 0
	}
	c.lastPoll = now
	return delta.Seconds() * c.multiplier
}

func (c *Clock) Multiplier() float64 { return c.multiplier }
