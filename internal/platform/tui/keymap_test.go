package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"d", runeKey('d'), []core.Action{core.ActionRight}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump}},
		{"shift right", tea.KeyMsg{Type: tea.KeyShiftRight}, []core.Action{core.ActionRight, core.ActionRun}},
		{"fire", runeKey('f'), []core.Action{core.ActionFire}},
		{"pause", runeKey('p'), []core.Action{core.ActionPause}},
		{"unbound", runeKey('y'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Actions(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("Actions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Actions()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHeldKeysLatch(t *testing.T) {
	h := NewHeldKeys(3)
	h.KeyDown(core.ActionRight)

	for step := 0; step < 3; step++ {
		f := core.NewInputFrame()
		h.Frame(&f)
		if !f.Has(core.ActionRight) {
			t.Fatalf("step %d: right not held", step)
		}
		if got := f.WasPressed(core.ActionRight); got != (step == 0) {
			t.Errorf("step %d: WasPressed = %v", step, got)
		}
	}

	f := core.NewInputFrame()
	h.Frame(&f)
	if f.Has(core.ActionRight) {
		t.Error("right still held after the latch ran out")
	}
}

func TestHeldKeysRepeatIsNotAPress(t *testing.T) {
	h := NewHeldKeys(5)
	h.KeyDown(core.ActionJump)
	f := core.NewInputFrame()
	h.Frame(&f)

	// Auto-repeat while held
	h.KeyDown(core.ActionJump)
	f = core.NewInputFrame()
	h.Frame(&f)
	if !f.Has(core.ActionJump) {
		t.Fatal("jump not held")
	}
	if f.WasPressed(core.ActionJump) {
		t.Error("auto-repeat counted as a new press")
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	h := NewHeldKeys(5)
	h.KeyDown(core.ActionLeft)
	h.KeyDown(core.ActionFire)
	h.Release(core.ActionLeft)

	f := core.NewInputFrame()
	h.Frame(&f)
	if f.Has(core.ActionLeft) {
		t.Error("released action still held")
	}
	if !f.WasPressed(core.ActionFire) {
		t.Error("fire press lost")
	}

	h.Reset()
	f = core.NewInputFrame()
	h.Frame(&f)
	if len(f.Actions) != 0 || len(f.Pressed) != 0 {
		t.Errorf("frame after Reset = %+v, want empty", f)
	}
}

func TestHeldKeysNonPositiveHoldUsesDefault(t *testing.T) {
	h := NewHeldKeys(0)
	if h.hold != DefaultHoldSteps {
		t.Errorf("hold = %d, want %d", h.hold, DefaultHoldSteps)
	}
}

func TestSessionMenuToStageSelectAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	var m tea.Model = NewSessionModel(nil, nil, cfg, nil)

	// Campaign, Endless, Select Stage
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(SessionModel).view; got != viewStages {
		t.Fatalf("view = %v, want stage select", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.(SessionModel).view; got != viewMenu {
		t.Fatalf("view = %v, want menu", got)
	}

	// Stray ticks outside a game are dropped
	m, cmd := m.Update(TickMsg{})
	if cmd != nil {
		t.Error("tick outside a game scheduled another tick")
	}
	if got := m.(SessionModel).view; got != viewMenu {
		t.Errorf("view = %v after tick, want menu", got)
	}
}

func TestStageSelectOnlyOpensUnlockedStages(t *testing.T) {
	tests := []struct {
		name    string
		cleared []string
		keys    []tea.KeyMsg
		want    bool
	}{
		{"first stage", nil, nil, true},
		{"after a cleared stage", []string{"1-1"}, []tea.KeyMsg{runeKey('l')}, true},
		{"two ahead", []string{"1-1"}, []tea.KeyMsg{runeKey('l'), runeKey('l')}, false},
		{"next world", []string{"1-4"}, []tea.KeyMsg{runeKey('j')}, true},
		{"cleared earlier", []string{"3-2"}, []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('l')}, true},
		{"nothing cleared", nil, []tea.KeyMsg{runeKey('j')}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewStageSelectModel(tt.cleared, 80, 24)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			_, _, ok := m.(StageSelectModel).Chosen()
			if ok != tt.want {
				t.Errorf("Chosen() ok = %v, want %v", ok, tt.want)
			}
		})
	}
}
