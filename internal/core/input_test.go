package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionJump)
	f.Set(ActionRight)

	if !f.Has(ActionJump) || !f.WasPressed(ActionJump) {
		t.Error("Press() should mark the action held and pressed")
	}
	if !f.Has(ActionRight) || f.WasPressed(ActionRight) {
		t.Error("Set() should mark the action held only")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) || f.WasPressed(ActionJump) {
		t.Error("Clear() should drop all actions")
	}
	if !clone.WasPressed(ActionJump) {
		t.Error("Clone() should not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) || f.WasPressed(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionFire)
	if !f.WasPressed(ActionFire) {
		t.Error("Press() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRun, "Run"},
		{ActionFire, "Fire"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}
