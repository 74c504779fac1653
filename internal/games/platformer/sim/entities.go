package sim

// PowerTier is the player's body size state. Tiers are strictly ordered:
// pickups only move up, hurts only move down one tier.
type PowerTier int

const (
	PowerSmall PowerTier = iota
	PowerSuper
	PowerFire
)

// String returns the name of the tier.
func (t PowerTier) String() string {
	switch t {
	case PowerSmall:
		return "Small"
	case PowerSuper:
		return "Super"
	case PowerFire:
		return "Fire"
	default:
		return "?"
	}
}

// Player body dimensions in pixels.
const (
	PlayerWidth       = 12.0
	PlayerSmallHeight = 14.0
	PlayerTallHeight  = 28.0
)

// Height returns the player's body height at this tier.
func (t PowerTier) Height() float64 {
	if t == PowerSmall {
		return PlayerSmallHeight
	}
	return PlayerTallHeight
}

// Player is the controlled body and its per-level counters.
type Player struct {
	Body
	Power        PowerTier
	Facing       int // -1 left, +1 right
	Invincible   int // Steps of hurt immunity left
	Coyote       int // Steps a jump is still allowed after leaving ground
	Buffer       int // Steps a jump request stays armed
	Hold         int // Steps of variable-jump force left
	FireCooldown int
	descending   bool
	prevBottom   float64 // Bottom edge before this step's move
}

// setPower changes tier, resizing the body around a fixed bottom edge.
func (p *Player) setPower(t PowerTier) {
	h := t.Height()
	p.Y += p.H - h
	p.H = h
	p.Power = t
}

// EnemyKind identifies an enemy type.
type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyKoopa
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "Goomba"
	case EnemyKoopa:
		return "Koopa"
	default:
		return "?"
	}
}

// Size returns the body dimensions of the enemy kind.
func (k EnemyKind) Size() (w, h float64) {
	switch k {
	case EnemyKoopa:
		return 14, 22
	default:
		return 14, 14
	}
}

// Enemy is a patrolling hostile body.
type Enemy struct {
	Body
	Kind       EnemyKind
	Dir        int // Patrol direction, -1 or +1
	Active     bool
	Stomped    bool
	StompTimer int
	removed    bool
}

// PickupKind identifies a collectible.
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupMushroom
	PickupFlower
)

// String returns the name of the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "Coin"
	case PickupMushroom:
		return "Mushroom"
	case PickupFlower:
		return "Flower"
	default:
		return "?"
	}
}

// Size returns the body dimensions of the pickup kind.
func (k PickupKind) Size() (w, h float64) {
	switch k {
	case PickupCoin:
		return 10, 14
	default:
		return 14, 14
	}
}

// CoinPopSteps is how long a coin knocked out of a block stays visible.
const CoinPopSteps = 18

// Pickup is a collectible item.
//
// Static pickups never move. Popping pickups are the coins knocked out of a
// block: already awarded, purely visual and gone after Life steps. Everything
// else slides along Dir under gravity.
type Pickup struct {
	Body
	Kind    PickupKind
	Static  bool
	Popping bool
	Life    int
	Dir     int
	removed bool
}

// FireballSize is the edge length of a fireball in pixels.
const FireballSize = 8.0

// MaxFireballBounces is the number of floor bounces a fireball survives.
const MaxFireballBounces = 3

// Fireball is a projectile thrown by a fire-tier player.
type Fireball struct {
	Body
	Bounces int
	removed bool
}
