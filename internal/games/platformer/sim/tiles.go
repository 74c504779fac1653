// Package sim is the platformer simulation core: tile grid, physics,
// collision, entity interaction, level sessions and the fixed-step driver.
//
// The package is pure. It draws nothing, plays nothing and reads no files;
// callers feed it an Input per step and read back entity state and events.
package sim

// TileSize is the edge length of one tile in pixels.
const TileSize = 16.0

// LevelHeight is the height of every level in tiles.
const LevelHeight = 15

// Tile is the contents of one grid cell.
type Tile uint8

const (
	TileEmpty    Tile = iota
	TileGround        // Solid floor
	TileBrick         // Solid; breaks under a strong hit from below
	TileQuestion      // Solid; one-shot, turns into TileUsed and releases its content
	TileUsed          // Solid; spent block, ignores hits
	TileHard          // Solid, permanent
	TilePipe          // Solid, decorative
	TileHazard        // Not solid; lethal on overlap
	TileFlag          // Not solid; ends the level after sustained overlap
)

// Solid reports whether bodies collide with the tile.
func (t Tile) Solid() bool {
	switch t {
	case TileGround, TileBrick, TileQuestion, TileUsed, TileHard, TilePipe:
		return true
	case TileEmpty, TileHazard, TileFlag:
		return false
	}
	return false
}

// Lethal reports whether overlapping the tile kills the player.
func (t Tile) Lethal() bool {
	return t == TileHazard
}

// Goal reports whether the tile is part of the level's goal.
func (t Tile) Goal() bool {
	return t == TileFlag
}

// String returns the name of the tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileGround:
		return "Ground"
	case TileBrick:
		return "Brick"
	case TileQuestion:
		return "Question"
	case TileUsed:
		return "Used"
	case TileHard:
		return "Hard"
	case TilePipe:
		return "Pipe"
	case TileHazard:
		return "Hazard"
	case TileFlag:
		return "Flag"
	default:
		return "?"
	}
}

// Content is what a block releases when struck from below.
type Content uint8

const (
	ContentNone     Content = iota
	ContentCoin             // Awarded immediately
	ContentPowerUp          // Mushroom for a small player, flower otherwise
	ContentMushroom         // Always a mushroom
	ContentFlower           // Always a flower
)

// String returns the name of the content.
func (c Content) String() string {
	switch c {
	case ContentNone:
		return "None"
	case ContentCoin:
		return "Coin"
	case ContentPowerUp:
		return "PowerUp"
	case ContentMushroom:
		return "Mushroom"
	case ContentFlower:
		return "Flower"
	default:
		return "?"
	}
}

// Theme selects the look and hazard rules of a level.
type Theme uint8

const (
	ThemeOverworld Theme = iota
	ThemeUnderground
	ThemeNight
	ThemeCastle
)

// String returns the name of the theme.
func (t Theme) String() string {
	switch t {
	case ThemeOverworld:
		return "overworld"
	case ThemeUnderground:
		return "underground"
	case ThemeNight:
		return "night"
	case ThemeCastle:
		return "castle"
	default:
		return "unknown"
	}
}

// ParseTheme converts a theme name back to a Theme.
func ParseTheme(name string) (Theme, bool) {
	switch name {
	case "", "overworld":
		return ThemeOverworld, true
	case "underground":
		return ThemeUnderground, true
	case "night":
		return ThemeNight, true
	case "castle":
		return ThemeCastle, true
	default:
		return ThemeOverworld, false
	}
}
