// Package levels reads and writes platformer levels as YAML tile maps and
// ships a set of bundled levels.
package levels

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var (
	ErrEmptyLevel   = errors.New("levels: level has no rows")
	ErrLevelTooTall = errors.New("levels: level is too tall")
	ErrNoSpawn      = errors.New("levels: level has no spawn point")
	ErrUnknownTile  = errors.New("levels: unknown tile")
	ErrNotFound     = errors.New("levels: level not found")
)

// document is the on-disk form of a level. Rows are drawn top to bottom and
// bottom-aligned into the level height.
type document struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name,omitempty"`
	Theme     string   `yaml:"theme,omitempty"`
	TimeLimit int      `yaml:"time_limit,omitempty"`
	Rows      []string `yaml:"rows"`
}

// Map characters.
const (
	charEmpty     = '.'
	charGround    = '#'
	charBrick     = 'B'
	charCoinBrick = 'C'
	charCoinBlock = '?'
	charItemBlock = 'M'
	charUsed      = 'U'
	charHard      = 'H'
	charPipe      = 'P'
	charHazard    = '^'
	charFlag      = '|'
	charCoin      = 'o'
	charMushroom  = 'm'
	charFlower    = 'f'
	charGoomba    = 'g'
	charKoopa     = 'k'
	charSpawn     = 'S'
)

// ParseYAML decodes a level document.
func ParseYAML(data []byte) (*sim.Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("levels: cannot parse yaml: %w", err)
	}
	return build(doc)
}

func build(doc document) (*sim.Level, error) {
	width := 0
	for _, row := range doc.Rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	if width == 0 {
		return nil, ErrEmptyLevel
	}
	if len(doc.Rows) > sim.LevelHeight {
		return nil, fmt.Errorf("%w: %d rows, at most %d", ErrLevelTooTall, len(doc.Rows), sim.LevelHeight)
	}

	theme, ok := sim.ParseTheme(strings.ToLower(doc.Theme))
	if !ok {
		return nil, fmt.Errorf("levels: unknown theme %q", doc.Theme)
	}

	lvl := &sim.Level{
		ID:        doc.ID,
		Name:      doc.Name,
		Theme:     theme,
		Grid:      sim.NewGrid(width, sim.LevelHeight),
		TimeLimit: doc.TimeLimit,
	}
	if lvl.Name == "" {
		lvl.Name = doc.ID
	}

	top := sim.LevelHeight - len(doc.Rows)
	spawns := 0
	for i, row := range doc.Rows {
		x := 0
		for _, ch := range row {
			if !place(lvl, ch, x, top+i) {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownTile, ch, i+1, x+1)
			}
			if ch == charSpawn {
				spawns++
			}
			x++
		}
	}

	switch {
	case spawns == 0:
		return nil, ErrNoSpawn
	case spawns > 1:
		return nil, fmt.Errorf("levels: %d spawn points, expected one", spawns)
	}
	return lvl, nil
}

// place applies one map character to the level. It reports false for an
// unknown character.
func place(lvl *sim.Level, ch rune, x, y int) bool {
	g := lvl.Grid
	pos := sim.TilePos{X: x, Y: y}
	switch ch {
	case charEmpty, ' ':
	case charGround:
		g.Set(x, y, sim.TileGround)
	case charBrick:
		g.Set(x, y, sim.TileBrick)
	case charCoinBrick:
		g.Set(x, y, sim.TileBrick)
		g.SetContent(x, y, sim.ContentCoin)
	case charCoinBlock:
		g.Set(x, y, sim.TileQuestion)
		g.SetContent(x, y, sim.ContentCoin)
	case charItemBlock:
		g.Set(x, y, sim.TileQuestion)
		g.SetContent(x, y, sim.ContentPowerUp)
	case charUsed:
		g.Set(x, y, sim.TileUsed)
	case charHard:
		g.Set(x, y, sim.TileHard)
	case charPipe:
		g.Set(x, y, sim.TilePipe)
	case charHazard:
		g.Set(x, y, sim.TileHazard)
	case charFlag:
		g.Set(x, y, sim.TileFlag)
	case charCoin:
		lvl.Pickups = append(lvl.Pickups, sim.PickupSpawn{Kind: sim.PickupCoin, At: pos})
	case charMushroom:
		lvl.Pickups = append(lvl.Pickups, sim.PickupSpawn{Kind: sim.PickupMushroom, At: pos})
	case charFlower:
		lvl.Pickups = append(lvl.Pickups, sim.PickupSpawn{Kind: sim.PickupFlower, At: pos})
	case charGoomba:
		lvl.Enemies = append(lvl.Enemies, sim.EnemySpawn{Kind: sim.EnemyGoomba, At: pos})
	case charKoopa:
		lvl.Enemies = append(lvl.Enemies, sim.EnemySpawn{Kind: sim.EnemyKoopa, At: pos})
	case charSpawn:
		lvl.Spawn = pos
	default:
		return false
	}
	return true
}

// Encode writes a level in the document format. Spawn points, enemies and
// pickups are drawn over empty cells only; a spawn on top of a tile is lost.
func Encode(lvl *sim.Level) ([]byte, error) {
	g := lvl.Grid
	rows := make([][]rune, g.Height())
	for y := range rows {
		rows[y] = make([]rune, g.Width())
		for x := range rows[y] {
			rows[y][x] = tileChar(g, x, y)
		}
	}

	overlay := func(p sim.TilePos, ch rune) {
		if g.InBounds(p.X, p.Y) && rows[p.Y][p.X] == charEmpty {
			rows[p.Y][p.X] = ch
		}
	}
	for _, p := range lvl.Pickups {
		overlay(p.At, pickupChar(p.Kind))
	}
	for _, e := range lvl.Enemies {
		overlay(e.At, enemyChar(e.Kind))
	}
	overlay(lvl.Spawn, charSpawn)

	doc := document{
		ID:        lvl.ID,
		Name:      lvl.Name,
		TimeLimit: lvl.TimeLimit,
		Rows:      make([]string, len(rows)),
	}
	if lvl.Theme != sim.ThemeOverworld {
		doc.Theme = lvl.Theme.String()
	}
	for y, r := range rows {
		doc.Rows[y] = string(r)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot encode %s: %w", lvl.ID, err)
	}
	return data, nil
}

func tileChar(g *sim.Grid, x, y int) rune {
	switch g.At(x, y) {
	case sim.TileGround:
		return charGround
	case sim.TileBrick:
		if g.ContentAt(x, y) != sim.ContentNone {
			return charCoinBrick
		}
		return charBrick
	case sim.TileQuestion:
		if g.ContentAt(x, y) == sim.ContentCoin {
			return charCoinBlock
		}
		return charItemBlock
	case sim.TileUsed:
		return charUsed
	case sim.TileHard:
		return charHard
	case sim.TilePipe:
		return charPipe
	case sim.TileHazard:
		return charHazard
	case sim.TileFlag:
		return charFlag
	default:
		return charEmpty
	}
}

func pickupChar(k sim.PickupKind) rune {
	switch k {
	case sim.PickupMushroom:
		return charMushroom
	case sim.PickupFlower:
		return charFlower
	default:
		return charCoin
	}
}

func enemyChar(k sim.EnemyKind) rune {
	if k == sim.EnemyKoopa {
		return charKoopa
	}
	return charGoomba
}
