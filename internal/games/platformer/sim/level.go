package sim

import "fmt"

// Campaign bounds.
const (
	MaxWorld = 8
	MaxStage = 4
)

// TilePos is a tile coordinate.
type TilePos struct {
	X, Y int
}

// EnemySpawn places an enemy standing on the bottom of a tile.
type EnemySpawn struct {
	Kind EnemyKind
	At   TilePos
}

// PickupSpawn places a static collectible inside a tile.
type PickupSpawn struct {
	Kind PickupKind
	At   TilePos
}

// Level is a playable level descriptor. Sessions never mutate it; each
// session works on its own copy of the grid.
type Level struct {
	ID        string
	Name      string
	World     int
	Stage     int
	Theme     Theme
	Grid      *Grid
	Spawn     TilePos // Player stands on the bottom of this tile
	Enemies   []EnemySpawn
	Pickups   []PickupSpawn
	TimeLimit int // Seconds; 0 uses Params.TimeLimit
}

// StageName formats a world/stage pair the usual way, e.g. "3-2".
func StageName(world, stage int) string {
	return fmt.Sprintf("%d-%d", world, stage)
}

// Next returns the stage after the given one in the campaign.
// ok is false after the last stage.
func Next(world, stage int) (nextWorld, nextStage int, ok bool) {
	if stage < MaxStage {
		return world, stage + 1, true
	}
	if world < MaxWorld {
		return world + 1, 1, true
	}
	return world, stage, false
}

// footAt returns the top-left position of a body of the given size standing
// centered on the bottom of a tile.
func footAt(p TilePos, w, h float64) (x, y float64) {
	x = float64(p.X)*TileSize + (TileSize-w)/2
	y = float64(p.Y+1)*TileSize - h
	return x, y
}
