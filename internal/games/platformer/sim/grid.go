package sim

// BumpSteps is how long a brick stays visually raised after a weak hit.
const BumpSteps = 6

// HitOutcome describes what a hit from below did to a block.
type HitOutcome uint8

const (
	HitNone   HitOutcome = iota // Nothing happened (used, hard, empty, ...)
	HitBumped                   // Brick bounced but stayed intact
	HitBroken                   // Brick was destroyed
	HitSpent                    // Block turned into TileUsed and released content
)

// HitResult is returned by Grid.HitFromBelow.
type HitResult struct {
	Outcome HitOutcome
	Content Content // Valid when Outcome is HitSpent
}

// Grid is the level's tile storage.
// Cells are stored in row-major order: index = y*w + x.
type Grid struct {
	w, h    int
	tiles   []Tile
	content []Content
	bump    []uint8
}

// NewGrid creates an empty grid of w by h tiles.
func NewGrid(w, h int) *Grid {
	n := w * h
	return &Grid{
		w:       w,
		h:       h,
		tiles:   make([]Tile, n),
		content: make([]Content, n),
		bump:    make([]uint8, n),
	}
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.h }

// PixelWidth returns the grid width in pixels.
func (g *Grid) PixelWidth() float64 { return float64(g.w) * TileSize }

// PixelHeight returns the grid height in pixels.
func (g *Grid) PixelHeight() float64 { return float64(g.h) * TileSize }

// InBounds returns true if the tile coordinate is inside the grid.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < g.w && ty >= 0 && ty < g.h
}

func (g *Grid) index(tx, ty int) int {
	return ty*g.w + tx
}

// At returns the tile at the coordinate, or TileEmpty out of bounds.
func (g *Grid) At(tx, ty int) Tile {
	if !g.InBounds(tx, ty) {
		return TileEmpty
	}
	return g.tiles[g.index(tx, ty)]
}

// Set replaces the tile at the coordinate. Out of bounds is ignored.
func (g *Grid) Set(tx, ty int, t Tile) {
	if g.InBounds(tx, ty) {
		g.tiles[g.index(tx, ty)] = t
	}
}

// SetContent assigns what the block at the coordinate releases when hit.
func (g *Grid) SetContent(tx, ty int, c Content) {
	if g.InBounds(tx, ty) {
		g.content[g.index(tx, ty)] = c
	}
}

// ContentAt returns the content stored in the block at the coordinate.
func (g *Grid) ContentAt(tx, ty int) Content {
	if !g.InBounds(tx, ty) {
		return ContentNone
	}
	return g.content[g.index(tx, ty)]
}

// IsSolid reports whether the cell blocks movement.
// Cells outside the grid are never solid.
func (g *Grid) IsSolid(tx, ty int) bool {
	return g.At(tx, ty).Solid()
}

// IsLethal reports whether the cell kills on overlap.
func (g *Grid) IsLethal(tx, ty int) bool {
	return g.At(tx, ty).Lethal()
}

// IsGoal reports whether the cell belongs to the goal.
func (g *Grid) IsGoal(tx, ty int) bool {
	return g.At(tx, ty).Goal()
}

// BumpOffset returns the remaining bump animation steps of a cell.
func (g *Grid) BumpOffset(tx, ty int) int {
	if !g.InBounds(tx, ty) {
		return 0
	}
	return int(g.bump[g.index(tx, ty)])
}

// HitFromBelow applies the effect of a body striking the cell from below.
// A strong hit is one made by a grown player.
//
// Question blocks release their content exactly once; a coin when none was
// assigned. Bricks bump on a weak hit and break on a strong one, unless they
// hold content, in which case a strong hit spends them like a question block.
// Every other tile, including a spent block, is left untouched.
func (g *Grid) HitFromBelow(tx, ty int, strong bool) HitResult {
	if !g.InBounds(tx, ty) {
		return HitResult{}
	}
	i := g.index(tx, ty)

	switch g.tiles[i] {
	case TileQuestion:
		return g.spend(i)
	case TileBrick:
		if !strong {
			g.bump[i] = BumpSteps
			return HitResult{Outcome: HitBumped}
		}
		if g.content[i] != ContentNone {
			return g.spend(i)
		}
		g.tiles[i] = TileEmpty
		g.bump[i] = 0
		return HitResult{Outcome: HitBroken}
	}
	return HitResult{}
}

func (g *Grid) spend(i int) HitResult {
	c := g.content[i]
	if c == ContentNone {
		c = ContentCoin
	}
	g.tiles[i] = TileUsed
	g.content[i] = ContentNone
	g.bump[i] = BumpSteps
	return HitResult{Outcome: HitSpent, Content: c}
}

// Tick advances the bump timers by one step.
func (g *Grid) Tick() {
	for i, b := range g.bump {
		if b > 0 {
			g.bump[i] = b - 1
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		w:       g.w,
		h:       g.h,
		tiles:   make([]Tile, len(g.tiles)),
		content: make([]Content, len(g.content)),
		bump:    make([]uint8, len(g.bump)),
	}
	copy(c.tiles, g.tiles)
	copy(c.content, g.content)
	copy(c.bump, g.bump)
	return c
}
