package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Params holds every tunable of the simulation. Velocities are in pixels
// per step, accelerations in pixels per step squared, durations in steps.
type Params struct {
	Gravity        float64
	MaxFall        float64
	JumpVelocity   float64 // Negative is up
	JumpHoldForce  float64 // Extra upward acceleration while jump is held
	JumpHoldSteps  int     // Budget of steps the hold force applies for
	WalkAccel      float64
	RunAccel       float64
	MaxWalk        float64
	MaxRun         float64
	GroundFriction float64 // Multiplier applied on ground with no input
	AirFriction    float64 // Multiplier applied in the air with no input
	DeadZone       float64 // Horizontal speeds below this snap to zero

	CoyoteSteps     int
	BufferSteps     int
	InvincibleSteps int

	StompTolerance float64 // Max depth of player bottom below enemy top for a stomp
	StompBounce    float64
	StompSteps     int // Steps a stomped enemy lingers before removal

	EnemySpeed    float64
	ItemSpeed     float64
	ActivateRange float64 // Enemies start moving within this distance of the player; 0 = always

	GoalDwellSteps int
	TimeLimit      int // Seconds; a level's own limit overrides it, 0 disables
	StepsPerSecond int

	CoinScore    int
	StompScore   int
	PowerUpScore int
	KillScore    int
	BreakScore   int
	TimeBonus    int // Score per remaining second on clear
	CoinsPerLife int

	FireballSpeed    float64
	FireballBounce   float64
	FireballCooldown int
	MaxFireballs     int

	CameraLead float64 // Fraction of the viewport kept left of the player
}

// DefaultParams returns the stock tuning at 60 steps per second.
func DefaultParams() Params {
	return Params{
		Gravity:        0.9,
		MaxFall:        12,
		JumpVelocity:   -8.5,
		JumpHoldForce:  0.4,
		JumpHoldSteps:  10,
		WalkAccel:      0.35,
		RunAccel:       0.5,
		MaxWalk:        3.5,
		MaxRun:         5.5,
		GroundFriction: 0.89,
		AirFriction:    0.95,
		DeadZone:       0.1,

		CoyoteSteps:     6,
		BufferSteps:     6,
		InvincibleSteps: 120,

		StompTolerance: 10,
		StompBounce:    -7,
		StompSteps:     20,

		EnemySpeed:    1.0,
		ItemSpeed:     2.0,
		ActivateRange: 320,

		GoalDwellSteps: 4,
		TimeLimit:      400,
		StepsPerSecond: DefaultStepRate,

		CoinScore:    200,
		StompScore:   100,
		PowerUpScore: 1000,
		KillScore:    100,
		BreakScore:   50,
		TimeBonus:    10,
		CoinsPerLife: 100,

		FireballSpeed:    6,
		FireballBounce:   -5,
		FireballCooldown: 20,
		MaxFireballs:     2,

		CameraLead: 0.4,
	}
}

// Body is a moving axis-aligned rectangle. X and Y are the top-left corner.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Ground bool // Set only by a downward collision during the latest step
}

// Box returns the body's bounding box.
func (b Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y-coordinate of the body's bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the body's horizontal center.
func (b Body) CenterX() float64 {
	return b.X + b.W/2
}

// Integrate updates a body's velocity for one step from a direction intent
// (-1, 0, +1) and the run modifier, then applies gravity.
//
// Friction only applies when there is no directional intent, and it uses
// the ground flag left by the previous step's collision pass.
func Integrate(b *Body, p Params, dir int, run bool) {
	accel, limit := p.WalkAccel, p.MaxWalk
	if run {
		accel, limit = p.RunAccel, p.MaxRun
	}

	switch {
	case dir < 0:
		b.VX -= accel
	case dir > 0:
		b.VX += accel
	case b.Ground:
		b.VX *= p.GroundFriction
	default:
		b.VX *= p.AirFriction
	}

	b.VX = core.ClampF(b.VX, -limit, limit)
	if math.Abs(b.VX) < p.DeadZone {
		b.VX = 0
	}

	ApplyGravity(b, p)
}

// ApplyGravity accelerates a body downward, capped at the maximum fall speed.
func ApplyGravity(b *Body, p Params) {
	b.VY += p.Gravity
	if b.VY > p.MaxFall {
		b.VY = p.MaxFall
	}
}
