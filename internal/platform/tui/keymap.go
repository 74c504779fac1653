package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldSteps is the key latch length used before a game reports its own.
const DefaultHoldSteps = 9

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	RunLeft    key.Binding
	RunRight   key.Binding
	Jump       key.Binding
	Run        key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Run, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight, k.Jump},
		{k.Run, k.Fire, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "x"),
			key.WithHelp("space/↑", "jump"),
		),
		Run: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle run"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "c"),
			key.WithHelp("f/c", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
	}
}

// Actions translates a key message into the game actions it holds.
// Run-modified arrows hold two actions.
func (k GameKeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}
	case key.Matches(msg, k.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	}
	return nil
}

// MenuKeyMap defines navigation bindings shared by the menu screens.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HeldKeys turns terminal key events into held actions.
//
// Terminals report key presses (and auto-repeats) but never releases, so an
// action stays held for a number of steps after its last key event. A key
// event for an action that was not already held also counts as a press for
// the next step.
type HeldKeys struct {
	hold    int
	left    map[core.Action]int
	pending map[core.Action]bool
}

// NewHeldKeys creates a latch that holds actions for hold steps.
func NewHeldKeys(hold int) *HeldKeys {
	h := &HeldKeys{
		left:    make(map[core.Action]int),
		pending: make(map[core.Action]bool),
	}
	h.SetHold(hold)
	return h
}

// SetHold changes the latch length. Non-positive values use the default.
func (h *HeldKeys) SetHold(hold int) {
	if hold <= 0 {
		hold = DefaultHoldSteps
	}
	h.hold = hold
}

// KeyDown records a key event for an action.
func (h *HeldKeys) KeyDown(a core.Action) {
	if h.left[a] == 0 {
		h.pending[a] = true
	}
	h.left[a] = h.hold
}

// Release drops an action from the latch.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.left, a)
	delete(h.pending, a)
}

// Frame fills an input frame for one step and ages the latch.
func (h *HeldKeys) Frame(dst *core.InputFrame) {
	for a, n := range h.left {
		if n <= 0 {
			continue
		}
		dst.Set(a)
		h.left[a] = n - 1
	}
	for a := range h.pending {
		dst.Press(a)
	}
	clear(h.pending)
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	clear(h.left)
	clear(h.pending)
}
