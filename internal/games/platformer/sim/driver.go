package sim

import "time"

const (
	// DefaultStepRate is the simulation rate in steps per second.
	DefaultStepRate = 60

	// DefaultMaxSteps bounds how many steps a single frame may run to catch up.
	DefaultMaxSteps = 8
)

// Driver converts variable wall-clock frame time into a count of fixed
// simulation steps. It owns only the time accumulator, never game state.
type Driver struct {
	Step     time.Duration
	MaxSteps int
	acc      time.Duration
}

// NewDriver creates a driver for the given steps-per-second rate.
func NewDriver(rate int) *Driver {
	d := &Driver{MaxSteps: DefaultMaxSteps}
	d.SetRate(rate)
	return d
}

// SetRate changes the steps-per-second rate and discards accumulated time.
// Non-positive rates use DefaultStepRate.
func (d *Driver) SetRate(rate int) {
	if rate <= 0 {
		rate = DefaultStepRate
	}
	d.Step = time.Second / time.Duration(rate)
	d.acc = 0
}

// Advance adds elapsed time and returns how many whole steps to run now.
// When more than MaxSteps are due, MaxSteps are returned and the remaining
// backlog is dropped so a stall cannot snowball into ever longer frames.
func (d *Driver) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		d.acc += elapsed
	}
	n := int(d.acc / d.Step)
	if d.MaxSteps > 0 && n > d.MaxSteps {
		d.acc %= d.Step
		return d.MaxSteps
	}
	d.acc -= time.Duration(n) * d.Step
	return n
}

// Alpha returns how far the accumulator is into the next step, in [0, 1).
func (d *Driver) Alpha() float64 {
	return float64(d.acc) / float64(d.Step)
}

// Reset discards any accumulated time.
func (d *Driver) Reset() {
	d.acc = 0
}
