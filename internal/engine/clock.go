package engine

import "time"

// Clock is the animation clock. It only accumulates while playing; a
// paused clock keeps its time and resumes from it.
type Clock struct {
	elapsed time.Duration
	last    time.Time
	playing bool
}

func NewClock() *Clock { return &Clock{playing: true} }

// Tick folds the wall time since the previous tick into the clock and
// returns the animation time in seconds.
func (c *Clock) Tick(now time.Time) float64 {
	if c.playing && !c.last.IsZero() && now.After(c.last) {
		c.elapsed += now.Sub(c.last)
	}
	c.last = now
	return c.Time()
}

// Advance adds dt directly, for fixed-step drivers. It honors pause.
func (c *Clock) Advance(dt time.Duration) {
	if c.playing && dt > 0 {
		c.elapsed += dt
	}
}

func (c *Clock) Time() float64 { return c.elapsed.Seconds() }

func (c *Clock) Playing() bool { return c.playing }

func (c *Clock) SetPlaying(p bool) { c.playing = p }

func (c *Clock) Toggle() bool {
	c.playing = !c.playing
	return c.playing
}

// Seek sets the animation time, used by snapshots.
func (c *Clock) Seek(t float64) {
	c.elapsed = time.Duration(t * float64(time.Second))
}
