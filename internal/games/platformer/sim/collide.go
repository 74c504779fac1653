package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Contact reports what a body touched while moving through the grid.
type Contact struct {
	HitLeft    bool // Stopped by a solid cell while moving left
	HitRight   bool // Stopped by a solid cell while moving right
	Landed     bool // Stopped by a solid cell while moving down
	HitCeiling bool // Stopped by a solid cell while moving up

	// Bumped is set together with HitCeiling and names the one cell struck
	// from below.
	Bumped       bool
	BumpX, BumpY int
}

// MoveAndCollide moves a body by its velocity, resolving the horizontal axis
// completely before the vertical one.
//
// On each axis only cells the leading edge newly enters are tested, so a body
// that ends up embedded in a cell (a block appearing around it) is never
// pushed out sideways. A blocked axis is clamped flush to the cell and its
// velocity is zeroed. The ground flag is cleared on entry and set again only
// by a downward collision.
func MoveAndCollide(g *Grid, b *Body) Contact {
	var c Contact
	b.Ground = false

	if b.VX != 0 {
		moveX(g, b, &c)
	}
	if b.VY != 0 {
		moveY(g, b, &c)
	}
	return c
}

func moveX(g *Grid, b *Body, c *Contact) {
	oldX := b.X
	b.X += b.VX
	top, bottom := core.CellSpan(b.Y, b.Y+b.H, TileSize)

	if b.VX > 0 {
		oldRight := oldX + b.W
		first, last := core.CellSpan(oldX, b.X+b.W, TileSize)
		for tx := first; tx <= last; tx++ {
			if float64(tx)*TileSize < oldRight {
				continue
			}
			if columnSolid(g, tx, top, bottom) {
				b.X = float64(tx)*TileSize - b.W
				b.VX = 0
				c.HitRight = true
				return
			}
		}
		return
	}

	first, last := core.CellSpan(b.X, oldX+b.W, TileSize)
	for tx := last; tx >= first; tx-- {
		if float64(tx+1)*TileSize > oldX {
			continue
		}
		if columnSolid(g, tx, top, bottom) {
			b.X = float64(tx+1) * TileSize
			b.VX = 0
			c.HitLeft = true
			return
		}
	}
}

func moveY(g *Grid, b *Body, c *Contact) {
	oldY := b.Y
	b.Y += b.VY
	left, right := core.CellSpan(b.X, b.X+b.W, TileSize)

	if b.VY > 0 {
		oldBottom := oldY + b.H
		first, last := core.CellSpan(oldY, b.Y+b.H, TileSize)
		for ty := first; ty <= last; ty++ {
			if float64(ty)*TileSize < oldBottom {
				continue
			}
			if rowSolid(g, ty, left, right) {
				b.Y = float64(ty)*TileSize - b.H
				b.VY = 0
				b.Ground = true
				c.Landed = true
				return
			}
		}
		return
	}

	first, last := core.CellSpan(b.Y, oldY+b.H, TileSize)
	for ty := last; ty >= first; ty-- {
		if float64(ty+1)*TileSize > oldY {
			continue
		}
		if rowSolid(g, ty, left, right) {
			b.Y = float64(ty+1) * TileSize
			b.VY = 0
			c.HitCeiling = true
			c.BumpX, c.Bumped = bumpColumn(g, ty, left, right, b.CenterX())
			c.BumpY = ty
			return
		}
	}
}

func columnSolid(g *Grid, tx, top, bottom int) bool {
	for ty := top; ty <= bottom; ty++ {
		if g.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}

func rowSolid(g *Grid, ty, left, right int) bool {
	for tx := left; tx <= right; tx++ {
		if g.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}

// bumpColumn picks the single struck cell of a ceiling hit: the one above
// the body's center, else the solid cell closest to it.
func bumpColumn(g *Grid, ty, left, right int, centerX float64) (int, bool) {
	best, found := 0, false
	bestDist := math.Inf(1)
	for tx := left; tx <= right; tx++ {
		if !g.IsSolid(tx, ty) {
			continue
		}
		mid := (float64(tx) + 0.5) * TileSize
		if d := math.Abs(mid - centerX); d < bestDist {
			best, bestDist, found = tx, d, true
		}
	}
	return best, found
}
