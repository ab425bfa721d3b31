package core

import "time"

// DefaultMaxTicksPerFrame bounds how many simulation ticks a single rendered
// frame may run while catching up after a stall.
const DefaultMaxTicksPerFrame = 5

// Clock accumulates real elapsed time and converts it into a whole number of
// fixed-duration simulation ticks. Rendering rate and simulation rate stay
// decoupled: a slow frame yields several ticks, a fast one may yield none.
type Clock struct {
	step    time.Duration
	maxTick int
	last    time.Time
	acc     time.Duration
	started bool
}

// NewClock returns a clock producing ticks of the given fixed step.
// maxTicksPerFrame <= 0 selects DefaultMaxTicksPerFrame.
func NewClock(step time.Duration, maxTicksPerFrame int) *Clock {
	if maxTicksPerFrame <= 0 {
		maxTicksPerFrame = DefaultMaxTicksPerFrame
	}
	return &Clock{step: step, maxTick: maxTicksPerFrame}
}

// Advance records the current time and returns how many fixed ticks are due.
// The first call starts the clock and returns zero. When the backlog exceeds
// the per-frame cap, the excess is discarded so a long stall does not turn
// into an ever-growing catch-up burst.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	c.acc += elapsed

	ticks := 0
	for c.acc >= c.step && ticks < c.maxTick {
		c.acc -= c.step
		ticks++
	}
	if ticks == c.maxTick {
		c.acc = 0
	}
	return ticks
}
