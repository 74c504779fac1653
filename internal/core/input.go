package core

// Action is a game input, independent of the key that produced it.
// Menu navigation and session keys never reach the game as actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Walk left
	ActionRight        // Walk right
	ActionJump         // Jump; holding it extends the jump
	ActionRun          // Run instead of walk
	ActionFire         // Throw a fireball
	ActionPause        // Pause or resume
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation step.
//
// Actions holds the actions currently held. Pressed holds the actions whose
// key went down since the previous step, which is what edge-triggered logic
// (jump buffering, pause toggling) consumes.
type InputFrame struct {
	Actions map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as held for this step.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press marks an action as both newly pressed and held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Set(a)
}

// Has returns true if the action is held this step.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// WasPressed returns true if the action went down this step.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next step.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	return c
}
