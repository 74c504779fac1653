package sim

import "testing"

func TestTileSolidity(t *testing.T) {
	tests := []struct {
		tile   Tile
		solid  bool
		lethal bool
		goal   bool
	}{
		{TileEmpty, false, false, false},
		{TileGround, true, false, false},
		{TileBrick, true, false, false},
		{TileQuestion, true, false, false},
		{TileUsed, true, false, false},
		{TileHard, true, false, false},
		{TilePipe, true, false, false},
		{TileHazard, false, true, false},
		{TileFlag, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if tc.tile.Solid() != tc.solid {
				t.Errorf("Solid() = %v, expected %v", tc.tile.Solid(), tc.solid)
			}
			if tc.tile.Lethal() != tc.lethal {
				t.Errorf("Lethal() = %v, expected %v", tc.tile.Lethal(), tc.lethal)
			}
			if tc.tile.Goal() != tc.goal {
				t.Errorf("Goal() = %v, expected %v", tc.tile.Goal(), tc.goal)
			}
		})
	}
}

func TestGridOutOfBoundsIsEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			g.Set(x, y, TileHard)
		}
	}

	coords := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {-100, 100}}
	for _, c := range coords {
		if g.IsSolid(c[0], c[1]) {
			t.Errorf("IsSolid(%d, %d) = true, expected false off-grid", c[0], c[1])
		}
		if g.At(c[0], c[1]) != TileEmpty {
			t.Errorf("At(%d, %d) = %v, expected Empty", c[0], c[1], g.At(c[0], c[1]))
		}
	}

	// Writes off-grid are ignored rather than wrapping into another row.
	g.Set(4, 0, TileEmpty)
	if g.At(0, 1) != TileHard {
		t.Error("Set() off-grid modified an in-bounds cell")
	}
}

func TestHitFromBelowQuestionIsOneShot(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, TileQuestion)
	g.SetContent(1, 1, ContentPowerUp)

	first := g.HitFromBelow(1, 1, false)
	if first.Outcome != HitSpent || first.Content != ContentPowerUp {
		t.Fatalf("first hit = %+v, expected spent power-up", first)
	}
	if g.At(1, 1) != TileUsed {
		t.Errorf("tile after hit = %v, expected Used", g.At(1, 1))
	}

	for _, strong := range []bool{false, true} {
		again := g.HitFromBelow(1, 1, strong)
		if again.Outcome != HitNone || again.Content != ContentNone {
			t.Errorf("repeat hit (strong=%v) = %+v, expected no-op", strong, again)
		}
	}
	if g.At(1, 1) != TileUsed {
		t.Errorf("used block changed to %v", g.At(1, 1))
	}
}

func TestHitFromBelowEmptyQuestionYieldsCoin(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, TileQuestion)

	res := g.HitFromBelow(0, 0, false)
	if res.Outcome != HitSpent || res.Content != ContentCoin {
		t.Errorf("HitFromBelow() = %+v, expected spent coin", res)
	}
}

func TestHitFromBelowBrick(t *testing.T) {
	tests := []struct {
		name     string
		content  Content
		strong   bool
		outcome  HitOutcome
		after    Tile
		released Content
	}{
		{"weak plain brick bumps", ContentNone, false, HitBumped, TileBrick, ContentNone},
		{"strong plain brick breaks", ContentNone, true, HitBroken, TileEmpty, ContentNone},
		{"weak coin brick bumps", ContentCoin, false, HitBumped, TileBrick, ContentNone},
		{"strong coin brick spends", ContentCoin, true, HitSpent, TileUsed, ContentCoin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(1, 1)
			g.Set(0, 0, TileBrick)
			g.SetContent(0, 0, tc.content)

			res := g.HitFromBelow(0, 0, tc.strong)
			if res.Outcome != tc.outcome || res.Content != tc.released {
				t.Errorf("HitFromBelow() = %+v, expected outcome %v content %v", res, tc.outcome, tc.released)
			}
			if g.At(0, 0) != tc.after {
				t.Errorf("tile after hit = %v, expected %v", g.At(0, 0), tc.after)
			}
		})
	}
}

func TestBumpTimerCountsDown(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, TileBrick)
	g.HitFromBelow(0, 0, false)

	if g.BumpOffset(0, 0) != BumpSteps {
		t.Fatalf("BumpOffset() = %d, expected %d", g.BumpOffset(0, 0), BumpSteps)
	}
	for i := 0; i < BumpSteps+3; i++ {
		g.Tick()
	}
	if g.BumpOffset(0, 0) != 0 {
		t.Errorf("BumpOffset() after ticks = %d, expected 0", g.BumpOffset(0, 0))
	}
	if !g.IsSolid(0, 0) {
		t.Error("bumped brick should stay solid")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, TileQuestion)
	g.SetContent(0, 0, ContentFlower)

	c := g.Clone()
	c.HitFromBelow(0, 0, true)

	if g.At(0, 0) != TileQuestion || g.ContentAt(0, 0) != ContentFlower {
		t.Error("mutating a clone changed the original grid")
	}
	if c.At(0, 0) != TileUsed {
		t.Errorf("clone tile = %v, expected Used", c.At(0, 0))
	}
}
