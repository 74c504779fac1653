package sim

import "testing"

// levelFrom builds a level from ASCII rows, top row first.
//
//	# ground  B brick  ? coin block  M power-up block  H hard  ^ hazard  | flag
//	S spawn   g goomba k koopa       o coin             m mushroom     f flower
func levelFrom(t *testing.T, rows ...string) *Level {
	t.Helper()
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	lvl := &Level{ID: "test", Name: "test", Grid: NewGrid(w, len(rows))}
	spawned := false
	for y, r := range rows {
		for x, ch := range r {
			pos := TilePos{X: x, Y: y}
			switch ch {
			case '#':
				lvl.Grid.Set(x, y, TileGround)
			case 'B':
				lvl.Grid.Set(x, y, TileBrick)
			case '?':
				lvl.Grid.Set(x, y, TileQuestion)
				lvl.Grid.SetContent(x, y, ContentCoin)
			case 'M':
				lvl.Grid.Set(x, y, TileQuestion)
				lvl.Grid.SetContent(x, y, ContentPowerUp)
			case 'H':
				lvl.Grid.Set(x, y, TileHard)
			case '^':
				lvl.Grid.Set(x, y, TileHazard)
			case '|':
				lvl.Grid.Set(x, y, TileFlag)
			case 'S':
				lvl.Spawn = pos
				spawned = true
			case 'g':
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Kind: EnemyGoomba, At: pos})
			case 'k':
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Kind: EnemyKoopa, At: pos})
			case 'o':
				lvl.Pickups = append(lvl.Pickups, PickupSpawn{Kind: PickupCoin, At: pos})
			case 'm':
				lvl.Pickups = append(lvl.Pickups, PickupSpawn{Kind: PickupMushroom, At: pos})
			case 'f':
				lvl.Pickups = append(lvl.Pickups, PickupSpawn{Kind: PickupFlower, At: pos})
			}
		}
	}
	if !spawned {
		t.Fatal("levelFrom: no spawn")
	}
	return lvl
}

// testParams returns default tuning without the level clock and with
// every enemy active from the first step.
func testParams() Params {
	p := DefaultParams()
	p.TimeLimit = 0
	p.ActivateRange = 0
	return p
}

func startTest(t *testing.T, carry Carry, rows ...string) *Session {
	t.Helper()
	return Start(levelFrom(t, rows...), testParams(), carry)
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// overlapsSolid reports whether a body overlaps any solid cell.
func overlapsSolid(g *Grid, b *Body) bool {
	box := b.Box()
	for ty := 0; ty < g.Height(); ty++ {
		for tx := 0; tx < g.Width(); tx++ {
			if !g.IsSolid(tx, ty) {
				continue
			}
			cell := Body{X: float64(tx) * TileSize, Y: float64(ty) * TileSize, W: TileSize, H: TileSize}
			if box.Overlaps(cell.Box()) {
				return true
			}
		}
	}
	return false
}
