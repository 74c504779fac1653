package sim

import (
	"testing"
	"time"
)

func TestDriverAdvance(t *testing.T) {
	d := NewDriver(60)
	step := d.Step

	tests := []struct {
		name    string
		elapsed time.Duration
		steps   int
	}{
		{"nothing elapsed", 0, 0},
		{"half a step", step / 2, 0},
		{"completes the half", step / 2, 1},
		{"three steps", 3 * step, 3},
		{"negative is ignored", -step, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if n := d.Advance(tc.elapsed); n != tc.steps {
				t.Errorf("Advance(%v) = %d, expected %d", tc.elapsed, n, tc.steps)
			}
		})
	}
}

func TestDriverDropsBacklogBeyondCap(t *testing.T) {
	d := NewDriver(60)
	n := d.Advance(20*d.Step + d.Step/4)
	if n != DefaultMaxSteps {
		t.Fatalf("Advance() = %d, expected the cap %d", n, DefaultMaxSteps)
	}
	if n := d.Advance(0); n != 0 {
		t.Errorf("backlog survived the cap: next Advance(0) = %d", n)
	}
	if a := d.Alpha(); a < 0.24 || a > 0.26 {
		t.Errorf("Alpha() = %v, expected the fractional quarter step", a)
	}
}

func TestDriverReset(t *testing.T) {
	d := NewDriver(30)
	if d.Step != time.Second/30 {
		t.Fatalf("Step = %v, expected %v", d.Step, time.Second/30)
	}
	d.Advance(d.Step - 1)
	d.Reset()
	if d.Alpha() != 0 {
		t.Errorf("Alpha() after Reset = %v, expected 0", d.Alpha())
	}
	if n := d.Advance(1); n != 0 {
		t.Errorf("Advance(1) after Reset = %d, expected 0", n)
	}
}

func TestNewDriverDefaultsRate(t *testing.T) {
	d := NewDriver(0)
	if d.Step != time.Second/60 || d.MaxSteps != DefaultMaxSteps {
		t.Errorf("NewDriver(0) = %+v, expected 60 steps per second", d)
	}
}

func TestDriverSetRate(t *testing.T) {
	d := NewDriver(60)
	d.Advance(d.Step / 2)

	d.SetRate(30)
	if d.Step != time.Second/30 {
		t.Fatalf("Step = %v, expected %v", d.Step, time.Second/30)
	}
	if d.Alpha() != 0 {
		t.Errorf("Alpha() after SetRate = %v, expected 0", d.Alpha())
	}

	d.SetRate(-1)
	if d.Step != time.Second/DefaultStepRate {
		t.Errorf("Step for a non-positive rate = %v, expected %v", d.Step, time.Second/DefaultStepRate)
	}
}
