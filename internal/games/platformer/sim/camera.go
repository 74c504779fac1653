package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// CameraX returns the left edge of a viewW-wide viewport that keeps the
// target lead*viewW pixels from the left, clamped to [0, levelW-viewW].
// A level narrower than the viewport never scrolls.
func CameraX(targetX, viewW, levelW, lead float64) float64 {
	if levelW <= viewW {
		return 0
	}
	return core.ClampF(targetX-viewW*lead, 0, levelW-viewW)
}

// VisibleColumns returns the inclusive range of tile columns a viewport at
// camX covers, clipped to the grid.
func VisibleColumns(g *Grid, camX, viewW float64) (first, last int) {
	first = int(math.Floor(camX / TileSize))
	last = int(math.Ceil((camX+viewW)/TileSize)) - 1
	first = max(first, 0)
	last = min(last, g.Width()-1)
	return first, last
}
