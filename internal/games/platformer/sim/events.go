package sim

// EventKind names something that happened during a step. Events are
// fire-and-forget notifications for sound and logging; nothing in the
// simulation waits on them.
type EventKind int

const (
	EventJump EventKind = iota
	EventStomp
	EventCoin
	EventOneUp
	EventPowerUp
	EventPowerDown
	EventDeath
	EventBlockBump
	EventBlockBreak
	EventItemSpawn
	EventFireball
	EventEnemyDefeated
	EventLevelComplete
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventStomp:
		return "stomp"
	case EventCoin:
		return "coin"
	case EventOneUp:
		return "one-up"
	case EventPowerUp:
		return "power-up"
	case EventPowerDown:
		return "power-down"
	case EventDeath:
		return "death"
	case EventBlockBump:
		return "block-bump"
	case EventBlockBreak:
		return "block-break"
	case EventItemSpawn:
		return "item-spawn"
	case EventFireball:
		return "fireball"
	case EventEnemyDefeated:
		return "enemy-defeated"
	case EventLevelComplete:
		return "level-complete"
	default:
		return "unknown"
	}
}

// Event is a single occurrence at a pixel position.
type Event struct {
	Kind EventKind
	X, Y float64
}
