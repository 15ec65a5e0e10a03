package anim

import "time"

// MaxDelta caps a single frame step so a stalled window does not jump
// animations forward.
const MaxDelta = 0.25

// Ticker turns wall-clock samples into frame clocks, honoring a speed
// multiplier and a pause flag.
type Ticker struct {
	speed   float64
	paused  bool
	last    time.Time
	elapsed float64
}

// NewTicker returns a ticker running at the given speed. Non-positive speeds
// fall back to 1.
func NewTicker(speed float64) *Ticker {
	t := &Ticker{}
	t.SetSpeed(speed)
	return t
}

// SetSpeed changes the multiplier.
func (t *Ticker) SetSpeed(speed float64) {
	if speed <= 0 {
		speed = 1
	}
	t.speed = speed
}

// Speed returns the multiplier.
func (t *Ticker) Speed() float64 { return t.speed }

// Paused reports whether time is frozen.
func (t *Ticker) Paused() bool { return t.paused }

// SetPaused freezes or resumes time.
func (t *Ticker) SetPaused(p bool) { t.paused = p }

// TogglePause flips the pause flag and returns the new state.
func (t *Ticker) TogglePause() bool {
	t.paused = !t.paused
	return t.paused
}

// Reset restarts elapsed time at zero.
func (t *Ticker) Reset() {
	t.elapsed = 0
	t.last = time.Time{}
}

// Sample returns the clock for a frame observed at now. The first sample has
// zero delta. While paused, elapsed time does not advance.
func (t *Ticker) Sample(now time.Time) Clock {
	var dt float64
	if !t.last.IsZero() {
		dt = now.Sub(t.last).Seconds()
	}
	t.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	if t.paused {
		dt = 0
	}
	dt *= t.speed
	t.elapsed += dt
	return Clock{Elapsed: t.elapsed, Delta: dt}
}
