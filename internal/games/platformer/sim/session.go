package sim

import "slices"

// Status is the lifecycle state of a level session.
type Status int

const (
	StatusPlaying Status = iota
	StatusDied
	StatusCleared
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDied:
		return "died"
	case StatusCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Carry is the player progress that survives from one session to the next.
type Carry struct {
	Lives int
	Score int
	Coins int
	Power PowerTier
}

// Input is the control snapshot for one step.
type Input struct {
	Left        bool
	Right       bool
	Run         bool
	Jump        bool // Jump is held
	JumpPressed bool // Jump went down this step
	Fire        bool // Fire went down this step
}

// StepReport is the outcome of one Advance call.
type StepReport struct {
	Step   int
	Events []Event
	Status Status
}

// Session owns all mutable state of one attempt at a level: the grid copy,
// the player, enemies, pickups and fireballs. A session ends in StatusDied
// or StatusCleared and is then replaced, never revived.
type Session struct {
	level  *Level
	params Params
	start  Carry

	grid      *Grid
	player    Player
	enemies   []Enemy
	pickups   []Pickup
	fireballs []Fireball
	spawned   []Pickup

	carry     Carry
	status    Status
	step      int
	goalDwell int
	timeLeft  int // Steps; negative means no limit
	events    []Event
	closed    bool
}

// Start creates a session for a level with the given tuning and carried
// progress. The level itself is not modified.
func Start(level *Level, p Params, carry Carry) *Session {
	s := &Session{
		level:  level,
		params: p,
		start:  carry,
		grid:   level.Grid.Clone(),
		carry:  carry,
	}

	s.player = Player{Facing: 1, Power: carry.Power}
	s.player.W = PlayerWidth
	s.player.H = carry.Power.Height()
	s.player.X, s.player.Y = footAt(level.Spawn, s.player.W, s.player.H)

	for _, es := range level.Enemies {
		e := Enemy{Kind: es.Kind, Dir: -1}
		e.W, e.H = es.Kind.Size()
		e.X, e.Y = footAt(es.At, e.W, e.H)
		s.enemies = append(s.enemies, e)
	}

	for _, ps := range level.Pickups {
		pk := Pickup{Kind: ps.Kind, Static: true}
		pk.W, pk.H = ps.Kind.Size()
		pk.X = float64(ps.At.X)*TileSize + (TileSize-pk.W)/2
		pk.Y = float64(ps.At.Y)*TileSize + (TileSize-pk.H)/2
		s.pickups = append(s.pickups, pk)
	}

	limit := level.TimeLimit
	if limit <= 0 {
		limit = p.TimeLimit
	}
	s.timeLeft = -1
	if limit > 0 && p.StepsPerSecond > 0 {
		s.timeLeft = limit * p.StepsPerSecond
	}
	return s
}

// Advance runs one fixed step. Once the session has ended it does nothing
// and keeps reporting the final status.
func (s *Session) Advance(in Input) StepReport {
	s.mustBeOpen()
	if s.status != StatusPlaying {
		return StepReport{Step: s.step, Status: s.status}
	}

	s.events = nil
	s.step++

	s.grid.Tick()
	s.updatePlayer(in)
	s.updateEnemies()
	s.updatePickups()
	s.updateFireballs()
	s.resolveEnemyContacts()
	s.collectPickups()
	s.checkHazards()
	s.checkGoal()
	s.tickClock()
	s.compact()

	return StepReport{Step: s.step, Events: s.events, Status: s.status}
}

// Reset closes the session and starts a new one on the same level.
// After a death the new attempt continues from the current progress (one
// life fewer, small again); otherwise progress rolls back to the start.
func (s *Session) Reset() *Session {
	s.mustBeOpen()
	carry := s.start
	if s.status == StatusDied {
		carry = s.Carry()
	}
	s.Close()
	return Start(s.level, s.params, carry)
}

// Close ends the session. Any later query panics.
func (s *Session) Close() {
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

func (s *Session) mustBeOpen() {
	if s.closed {
		panic("sim: use of closed session")
	}
}

// Status returns the session's lifecycle state.
func (s *Session) Status() Status {
	s.mustBeOpen()
	return s.status
}

// Steps returns the number of steps advanced so far.
func (s *Session) Steps() int {
	s.mustBeOpen()
	return s.step
}

// Carry returns the progress to hand to the next session.
func (s *Session) Carry() Carry {
	s.mustBeOpen()
	c := s.carry
	c.Power = s.player.Power
	if s.status == StatusDied {
		c.Power = PowerSmall
	}
	return c
}

// StartCarry returns the progress the session started from.
func (s *Session) StartCarry() Carry {
	s.mustBeOpen()
	return s.start
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	s.mustBeOpen()
	return s.player
}

// Enemies returns a copy of the live enemies.
func (s *Session) Enemies() []Enemy {
	s.mustBeOpen()
	return slices.Clone(s.enemies)
}

// Pickups returns a copy of the live pickups.
func (s *Session) Pickups() []Pickup {
	s.mustBeOpen()
	return slices.Clone(s.pickups)
}

// Fireballs returns a copy of the live fireballs.
func (s *Session) Fireballs() []Fireball {
	s.mustBeOpen()
	return slices.Clone(s.fireballs)
}

// Grid returns the session's tile grid. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	s.mustBeOpen()
	return s.grid
}

// Level returns the level descriptor the session was started from.
func (s *Session) Level() *Level {
	s.mustBeOpen()
	return s.level
}

// TimeLeft returns the remaining level time in whole seconds, rounded up,
// or -1 when the level has no time limit.
func (s *Session) TimeLeft() int {
	s.mustBeOpen()
	if s.timeLeft < 0 {
		return -1
	}
	sps := s.params.StepsPerSecond
	return (s.timeLeft + sps - 1) / sps
}

// Camera returns the horizontal scroll offset for a viewport viewW pixels
// wide, following the player.
func (s *Session) Camera(viewW float64) float64 {
	s.mustBeOpen()
	return CameraX(s.player.CenterX(), viewW, s.grid.PixelWidth(), s.params.CameraLead)
}

func (s *Session) emit(kind EventKind, x, y float64) {
	s.events = append(s.events, Event{Kind: kind, X: x, Y: y})
}

// compact drops removed entities and appends those spawned during the step.
func (s *Session) compact() {
	s.enemies = keep(s.enemies, func(e *Enemy) bool { return !e.removed })
	s.pickups = keep(s.pickups, func(p *Pickup) bool { return !p.removed })
	s.fireballs = keep(s.fireballs, func(f *Fireball) bool { return !f.removed })
	s.pickups = append(s.pickups, s.spawned...)
	s.spawned = s.spawned[:0]
}

func keep[T any](items []T, alive func(*T) bool) []T {
	valid := items[:0]
	for i := range items {
		if alive(&items[i]) {
			valid = append(valid, items[i])
		}
	}
	return valid
}
