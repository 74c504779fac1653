package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// GenOptions tunes procedural level generation. Zero fields use defaults.
type GenOptions struct {
	Seed         int64   // 0 derives the seed from world and stage
	GapChance    float64 // Base per-column chance of a pit, grows by phase
	EnemyDensity float64 // Per-column chance of an enemy
	CoinDensity  float64 // Per-column chance of starting a coin row
}

// Default generation tuning.
const (
	DefaultGapChance    = 0.07
	DefaultEnemyDensity = 0.06
	DefaultCoinDensity  = 0.05
)

// Layout constants of generated levels.
const (
	groundRow    = LevelHeight - 2 // Top row of the two-row floor
	clusterRow   = groundRow - 4
	safeStart    = 10 // Columns of guaranteed floor at the start
	safeEnd      = 14 // Columns of guaranteed floor at the end
	flagFromEnd  = 8
	spawnColumn  = 3
	genPhases    = 3
	castleTime   = 300
	defaultTime  = 400
	minPipeEvery = 5
)

// SeedFor returns the generation seed of a campaign stage.
func SeedFor(world, stage int) int64 {
	return int64(world*777 + stage*19)
}

// generator holds the state of one Generate call.
type generator struct {
	rng   *rand.Rand
	opts  GenOptions
	world int
	stage int
	theme Theme
	width int
	grid  *Grid
	level *Level
}

// Generate builds a campaign-style level for a world and stage.
// The same arguments always produce the same level.
func Generate(world, stage int, opts GenOptions) *Level {
	world = core.Clamp(world, 1, MaxWorld)
	stage = core.Clamp(stage, 1, MaxStage)
	if opts.Seed == 0 {
		opts.Seed = SeedFor(world, stage)
	}
	if opts.GapChance <= 0 {
		opts.GapChance = DefaultGapChance
	}
	if opts.EnemyDensity <= 0 {
		opts.EnemyDensity = DefaultEnemyDensity
	}
	if opts.CoinDensity <= 0 {
		opts.CoinDensity = DefaultCoinDensity
	}

	width := 120 + world*8 + (stage-1)*4
	gen := &generator{
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
		world: world,
		stage: stage,
		theme: themeForStage(stage),
		width: width,
		grid:  NewGrid(width, LevelHeight),
	}
	gen.level = &Level{
		ID:        fmt.Sprintf("gen-%d-%d-%d", world, stage, opts.Seed),
		Name:      "World " + StageName(world, stage),
		World:     world,
		Stage:     stage,
		Theme:     gen.theme,
		Grid:      gen.grid,
		Spawn:     TilePos{X: spawnColumn, Y: groundRow - 1},
		TimeLimit: defaultTime,
	}
	if gen.theme == ThemeCastle {
		gen.level.TimeLimit = castleTime
	}

	gen.floor()
	if gen.theme == ThemeUnderground {
		gen.ceiling()
	}
	pyramidX := gen.pyramid()
	gen.pipes(pyramidX - 3)
	gen.clusters(pyramidX - 2)
	gen.coins(pyramidX - 2)
	gen.enemies(pyramidX - 1)
	gen.flag()
	return gen.level
}

func themeForStage(stage int) Theme {
	switch stage {
	case 2:
		return ThemeUnderground
	case 3:
		return ThemeNight
	case 4:
		return ThemeCastle
	default:
		return ThemeOverworld
	}
}

func (g *generator) phase(x int) int {
	return min(genPhases-1, x*genPhases/g.width)
}

func (g *generator) fillFloor(x int) {
	g.grid.Set(x, groundRow, TileGround)
	g.grid.Set(x, groundRow+1, TileGround)
}

// floor lays ground spans separated by pits. Castle pits hold lava.
func (g *generator) floor() {
	for x := 0; x < g.width; {
		g.fillFloor(x)
		x++
		if x < safeStart || x >= g.width-safeEnd {
			continue
		}

		ph := g.phase(x)
		if g.rng.Float64() >= g.opts.GapChance+0.02*float64(ph) {
			continue
		}
		gap := 1 + g.rng.Intn(2+ph)
		for i := 0; i < gap && x < g.width-safeEnd; i++ {
			if g.theme == ThemeCastle {
				g.grid.Set(x, groundRow+1, TileHazard)
			}
			x++
		}
		for i := 0; i < 4 && x < g.width; i++ {
			g.fillFloor(x)
			x++
		}
	}
}

func (g *generator) ceiling() {
	for x := 0; x < g.width; x++ {
		g.grid.Set(x, 0, TileBrick)
	}
}

// pyramid builds a 3-5 step hard-block staircase before the flag and
// returns its first column.
func (g *generator) pyramid() int {
	steps := 3 + g.rng.Intn(3)
	flagX := g.width - flagFromEnd
	start := flagX - 4 - steps
	for i := 0; i < steps; i++ {
		x := start + i
		g.fillFloor(x)
		for h := 0; h <= i; h++ {
			g.grid.Set(x, groundRow-1-h, TileHard)
		}
	}
	return start
}

func (g *generator) grounded(x int) bool {
	return g.grid.At(x, groundRow) == TileGround
}

func (g *generator) clearColumn(x, fromRow, toRow int) bool {
	for y := fromRow; y <= toRow; y++ {
		if g.grid.At(x, y) != TileEmpty {
			return false
		}
	}
	return true
}

// pipes places two-wide pipes on solid ground at a spacing that shrinks
// with the world and the phase of the level.
func (g *generator) pipes(limit int) {
	for x := safeStart + 4; x+1 < limit; {
		ph := g.phase(x)
		h := 2 + g.rng.Intn(2)
		top := groundRow - h
		if g.grounded(x) && g.grounded(x+1) &&
			g.clearColumn(x, top-3, groundRow-1) && g.clearColumn(x+1, top-3, groundRow-1) {
			for y := top; y < groundRow; y++ {
				g.grid.Set(x, y, TilePipe)
				g.grid.Set(x+1, y, TilePipe)
			}
			x += 2
		}
		x += max(minPipeEvery, 12-g.world/2-ph) + g.rng.Intn(6)
	}
}

// clusters places rows of bricks and question blocks above the floor.
// The first cluster always offers a power-up; later ones sometimes do.
func (g *generator) clusters(limit int) {
	first := true
	for x := safeStart + 2; ; {
		x += 6 + g.rng.Intn(8)
		n := 1 + g.rng.Intn(5)
		if x+n >= limit {
			return
		}
		if !g.clusterFits(x, n) {
			continue
		}

		powerUp := first || g.rng.Intn(3) == 0
		first = false
		for i := 0; i < n; i++ {
			tx := x + i
			switch {
			case g.rng.Intn(3) == 0 || (powerUp && i == n/2):
				g.grid.Set(tx, clusterRow, TileQuestion)
				c := ContentCoin
				if powerUp {
					c = ContentPowerUp
					powerUp = false
				}
				g.grid.SetContent(tx, clusterRow, c)
			case g.rng.Intn(8) == 0:
				g.grid.Set(tx, clusterRow, TileBrick)
				g.grid.SetContent(tx, clusterRow, ContentCoin)
			default:
				g.grid.Set(tx, clusterRow, TileBrick)
			}
		}

		if n >= 3 && g.rng.Intn(3) == 0 {
			mid := x + n/2
			g.grid.Set(mid, clusterRow-4, TileQuestion)
			g.grid.SetContent(mid, clusterRow-4, ContentCoin)
		}
		x += n
	}
}

func (g *generator) clusterFits(x, n int) bool {
	for i := -1; i <= n; i++ {
		if !g.clearColumn(x+i, clusterRow-4, groundRow-1) {
			return false
		}
	}
	return true
}

// coins places short floating coin rows over solid ground.
func (g *generator) coins(limit int) {
	row := groundRow - 3
	for x := safeStart; x < limit; x++ {
		if g.rng.Float64() >= g.opts.CoinDensity {
			continue
		}
		n := 3 + g.rng.Intn(3)
		for i := 0; i < n && x < limit; i++ {
			if g.grounded(x) && g.clearColumn(x, row-1, groundRow-1) {
				g.level.Pickups = append(g.level.Pickups, PickupSpawn{Kind: PickupCoin, At: TilePos{X: x, Y: row}})
			}
			x++
		}
	}
}

// enemies scatters walkers on open floor, with koopas more likely in later
// worlds.
func (g *generator) enemies(limit int) {
	koopaChance := 0.2 + 0.03*float64(g.world)
	for x := safeStart + 6; x < limit; x++ {
		if g.rng.Float64() >= g.opts.EnemyDensity {
			continue
		}
		if !g.grounded(x) || !g.clearColumn(x, groundRow-2, groundRow-1) {
			continue
		}
		kind := EnemyGoomba
		if g.rng.Float64() < koopaChance {
			kind = EnemyKoopa
		}
		g.level.Enemies = append(g.level.Enemies, EnemySpawn{Kind: kind, At: TilePos{X: x, Y: groundRow - 1}})
		x += 2
	}
}

// flag raises the goal pole on a hard base. The pole reaches row 1 so it
// cannot be jumped over.
func (g *generator) flag() {
	x := g.width - flagFromEnd
	g.fillFloor(x)
	g.grid.Set(x, groundRow-1, TileHard)
	for y := groundRow - 2; y >= 1; y-- {
		g.grid.Set(x, y, TileFlag)
	}
}
