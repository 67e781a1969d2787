// Package timer provides the countdown used for attack delays, hurt flashes
// and the health countdown of tanks.
package timer

// Clock reports how much time the last frame took.
type Clock interface {
	Delta() float64
}

// FrameClock is advanced once per frame by the game loop and read by every
// timer during that frame.
type FrameClock struct {
	delta float64
	total float64
}

// Tick records the duration of the frame that is about to be simulated.
func (c *FrameClock) Tick(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	c.delta = deltaTime
	c.total += deltaTime
}

func (c *FrameClock) Delta() float64 { return c.delta }

// Total is the simulated time since the clock was created.
func (c *FrameClock) Total() float64 { return c.total }

// Timer counts elapsed time up to Delay. It is complete once the remaining
// time reaches zero and stays complete until Reset. Elapsed is clamped to
// Delay so the remaining time never goes negative.
type Timer struct {
	delay   float64
	elapsed float64
	clock   Clock
}

// New returns a timer that starts counting from zero.
func New(delay float64, clock Clock) *Timer {
	if delay < 0 {
		delay = 0
	}
	return &Timer{delay: delay, clock: clock}
}

// NewExpired returns a timer that is already complete, e.g. a hurt flash
// that must stay idle until the first hit.
func NewExpired(delay float64, clock Clock) *Timer {
	t := New(delay, clock)
	t.Expire()
	return t
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Expire jumps straight to completion.
func (t *Timer) Expire() {
	t.elapsed = t.delay
}

// Check reports whether the timer is complete. Unless peek is set it first
// advances by the clock's last frame delta. It is not a one-shot edge: once
// complete it keeps returning true until Reset.
func (t *Timer) Check(peek bool) bool {
	if !peek && t.clock != nil {
		t.CountBy(t.clock.Delta())
	}
	return t.Complete()
}

// CountBy advances the timer by an explicit amount, independent of the clock.
// The health countdown uses it with one unit per hit.
func (t *Timer) CountBy(v float64) {
	if v <= 0 {
		return
	}
	t.elapsed += v
	if t.elapsed > t.delay {
		t.elapsed = t.delay
	}
}

// Complete reports completion without advancing.
func (t *Timer) Complete() bool {
	return t.elapsed >= t.delay
}

func (t *Timer) Elapsed() float64 { return t.elapsed }

func (t *Timer) Remaining() float64 { return t.delay - t.elapsed }

func (t *Timer) Delay() float64 { return t.delay }

// SetDelay changes the target duration, keeping elapsed within range.
func (t *Timer) SetDelay(delay float64) {
	if delay < 0 {
		delay = 0
	}
	t.delay = delay
	if t.elapsed > delay {
		t.elapsed = delay
	}
}

// Fraction returns remaining/delay, or 0 for a zero-length timer.
func (t *Timer) Fraction() float64 {
	if t.delay <= 0 {
		return 0
	}
	return t.Remaining() / t.delay
}
