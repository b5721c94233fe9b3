package core

import "time"

// FrameClock measures the time between frames and the frame rate.
type FrameClock struct {
	now func() time.Time

	start time.Time
	last  time.Time

	frames     int
	fpsSince   time.Time
	fps        float64
	fpsUpdated bool
}

// NewFrameClock starts a clock at the current time.
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	t := now()
	return &FrameClock{
		now:      now,
		start:    t,
		last:     t,
		fpsSince: t,
	}
}

// Tick marks the start of a frame and returns the seconds since the previous
// one.
func (c *FrameClock) Tick() float32 {
	t := c.now()
	delta := float32(t.Sub(c.last).Seconds())
	c.last = t

	c.frames++
	if elapsed := t.Sub(c.fpsSince); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.fpsSince = t
		c.fpsUpdated = true
	}
	return delta
}

// FPS returns the most recent frame rate and whether it changed since the
// last call.
func (c *FrameClock) FPS() (float64, bool) {
	updated := c.fpsUpdated
	c.fpsUpdated = false
	return c.fps, updated
}

// Elapsed is the time from the clock starting to the last Tick, in seconds.
func (c *FrameClock) Elapsed() float32 {
	return float32(c.last.Sub(c.start).Seconds())
}
