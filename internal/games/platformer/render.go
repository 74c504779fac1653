package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Screen layout. A tile is cellsPerTile columns wide and one row tall.
const (
	hudRows      = 2
	cellsPerTile = 2
	pxPerCell    = sim.TileSize / cellsPerTile
)

// glyph is a two-cell tile picture.
type glyph struct {
	runes [cellsPerTile]rune
	color core.Color
}

func g2(s string, c core.Color) glyph {
	r := []rune(s)
	return glyph{runes: [cellsPerTile]rune{r[0], r[1]}, color: c}
}

var groundColors = map[sim.Theme]core.Color{
	sim.ThemeOverworld:   core.ColorOrange,
	sim.ThemeUnderground: core.ColorBlue,
	sim.ThemeNight:       core.ColorMagenta,
	sim.ThemeCastle:      core.ColorGray,
}

func tileGlyph(t sim.Tile, theme sim.Theme) (glyph, bool) {
	switch t {
	case sim.TileGround:
		return g2("██", groundColors[theme]), true
	case sim.TileBrick:
		return g2("▓▓", core.ColorBrown), true
	case sim.TileQuestion:
		return g2("??", core.ColorBrightYellow), true
	case sim.TileUsed:
		return g2("░░", core.ColorGray), true
	case sim.TileHard:
		return g2("▒▒", core.ColorWhite), true
	case sim.TilePipe:
		return g2("▐▌", core.ColorBrightGreen), true
	case sim.TileHazard:
		if theme == sim.ThemeCastle {
			return g2("≈≈", core.ColorBrightRed), true
		}
		return g2("^^", core.ColorRed), true
	case sim.TileFlag:
		return g2("│ ", core.ColorGreen), true
	}
	return glyph{}, false
}

var tierColors = map[sim.PowerTier]core.Color{
	sim.PowerSmall: core.ColorBrightRed,
	sim.PowerSuper: core.ColorRed,
	sim.PowerFire:  core.ColorBrightWhite,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	s := g.session
	viewW := float64(dst.Width()) * pxPerCell
	camX := s.Camera(viewW)

	g.drawTiles(dst, camX, viewW)
	for _, p := range s.Pickups() {
		drawPickup(dst, p, camX)
	}
	for _, e := range s.Enemies() {
		drawEnemy(dst, e, camX)
	}
	for _, f := range s.Fireballs() {
		drawBody(dst, f.Body, camX, '•', core.ColorOrange)
	}
	drawPlayer(dst, s.Player(), camX)

	g.drawHUD(dst)

	switch {
	case g.over && g.victory:
		drawMessageBox(dst, core.ColorBrightYellow,
			"YOU WIN!", fmt.Sprintf("Score: %d", g.State().Score), "R: Restart  B: Menu")
	case g.over:
		drawMessageBox(dst, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Score: %d", g.State().Score), "R: Restart  B: Menu")
	case g.paused:
		drawMessageBox(dst, core.ColorBrightCyan, "PAUSED", "P: Resume")
	case g.banner > 0:
		drawMessageBox(dst, core.ColorBrightWhite,
			g.bannerTitle(), fmt.Sprintf("Lives x %d", g.State().Lives))
	}
}

func (g *Game) bannerTitle() string {
	if g.custom != nil {
		if g.custom.Name != "" {
			return g.custom.Name
		}
		return g.custom.ID
	}
	return "WORLD " + sim.StageName(g.world, g.stage)
}

func (g *Game) drawTiles(dst *core.Screen, camX, viewW float64) {
	grid := g.session.Grid()
	theme := g.session.Level().Theme
	first, last := sim.VisibleColumns(grid, camX, viewW)

	for ty := 0; ty < grid.Height(); ty++ {
		row := hudRows + ty
		for tx := first; tx <= last; tx++ {
			t := grid.At(tx, ty)
			gl, ok := tileGlyph(t, theme)
			if !ok {
				continue
			}
			if t == sim.TileFlag && !grid.IsGoal(tx, ty-1) {
				gl = g2("│▶", core.ColorGreen)
			}
			if grid.BumpOffset(tx, ty) > 0 {
				gl.color = gl.color.Bright()
			}
			x := screenCol(float64(tx)*sim.TileSize, camX)
			for i, r := range gl.runes {
				dst.SetColored(x+i, row, r, gl.color)
			}
		}
	}
}

func drawPlayer(dst *core.Screen, p sim.Player, camX float64) {
	// Flicker while invincible
	if p.Invincible > 0 && (p.Invincible/4)%2 == 1 {
		return
	}
	r := '█'
	if p.Power == sim.PowerSmall {
		r = '▄'
	}
	drawBody(dst, p.Body, camX, r, tierColors[p.Power])
}

func drawEnemy(dst *core.Screen, e sim.Enemy, camX float64) {
	switch {
	case e.Stomped:
		drawBody(dst, e.Body, camX, '▁', core.ColorOrange)
	case e.Kind == sim.EnemyKoopa:
		drawBody(dst, e.Body, camX, '◆', core.ColorGreen)
	default:
		drawBody(dst, e.Body, camX, '●', core.ColorOrange)
	}
}

func drawPickup(dst *core.Screen, p sim.Pickup, camX float64) {
	switch p.Kind {
	case sim.PickupCoin:
		drawBody(dst, p.Body, camX, 'o', core.ColorBrightYellow)
	case sim.PickupMushroom:
		drawBody(dst, p.Body, camX, '♣', core.ColorBrightRed)
	case sim.PickupFlower:
		drawBody(dst, p.Body, camX, '✿', core.ColorOrange)
	}
}

// drawBody fills every cell a body overlaps.
func drawBody(dst *core.Screen, b sim.Body, camX float64, r rune, c core.Color) {
	box := b.Box()
	x0 := screenCol(box.X, camX)
	x1 := screenCol(math.Nextafter(box.Right(), math.Inf(-1)), camX)
	top, bottom := core.CellSpan(box.Y, box.Bottom(), sim.TileSize)
	for y := top; y <= bottom; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, hudRows+y, r, c)
		}
	}
}

func screenCol(px, camX float64) int {
	return int(math.Floor((px - camX) / pxPerCell))
}

func (g *Game) drawHUD(dst *core.Screen) {
	c := g.session.Carry()
	p := g.session.Player()

	stage := "WORLD " + sim.StageName(g.world, g.stage)
	if g.custom != nil {
		stage = g.bannerTitle()
	}
	clock := "---"
	if t := g.session.TimeLeft(); t >= 0 {
		clock = fmt.Sprintf("%03d", t)
	}

	hud := fmt.Sprintf(" SCORE %06d  COINS x%02d  %s  TIME %s  LIVES %d  %s",
		c.Score, c.Coins, stage, clock, c.Lives, p.Power)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.FillRect(core.NewRect(0, 1, dst.Width(), 1), '─', core.ColorGray)
}

// drawMessageBox draws a centered box with a colored title line followed by
// plain lines.
func drawMessageBox(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	r := core.NewRect(x, y, boxW, boxH)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	dst.DrawTextCenteredColored(y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(y+3+i, l)
	}
}
