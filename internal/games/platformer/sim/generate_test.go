package sim

import (
	"reflect"
	"testing"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(3, 2, GenOptions{})
	b := Generate(3, 2, GenOptions{})
	if !reflect.DeepEqual(a, b) {
		t.Error("Generate() with equal arguments produced different levels")
	}

	c := Generate(3, 2, GenOptions{Seed: 99})
	if reflect.DeepEqual(a.Grid, c.Grid) {
		t.Error("Generate() ignored an explicit seed")
	}
}

func TestGenerateLayout(t *testing.T) {
	for world := 1; world <= MaxWorld; world++ {
		for stage := 1; stage <= MaxStage; stage++ {
			lvl := Generate(world, stage, GenOptions{})
			name := StageName(world, stage)
			g := lvl.Grid

			if want := 120 + world*8 + (stage-1)*4; g.Width() != want {
				t.Errorf("%s: width = %d, expected %d", name, g.Width(), want)
			}
			if g.Height() != LevelHeight {
				t.Errorf("%s: height = %d, expected %d", name, g.Height(), LevelHeight)
			}

			// Spawn is clear with floor underneath.
			sp := lvl.Spawn
			if g.IsSolid(sp.X, sp.Y) || g.IsSolid(sp.X, sp.Y-1) || !g.IsSolid(sp.X, sp.Y+1) {
				t.Errorf("%s: spawn %+v is not a clear spot on the floor", name, sp)
			}

			// The pole blocks the whole jumpable height.
			flagX := g.Width() - flagFromEnd
			for y := 1; y < groundRow-1; y++ {
				if !g.IsGoal(flagX, y) {
					t.Errorf("%s: no goal tile at (%d, %d)", name, flagX, y)
					break
				}
			}

			for _, e := range lvl.Enemies {
				if !g.IsSolid(e.At.X, e.At.Y+1) {
					t.Errorf("%s: enemy %+v has no floor", name, e)
				}
			}

			if lvl.Theme != themeForStage(stage) {
				t.Errorf("%s: theme = %v, expected %v", name, lvl.Theme, themeForStage(stage))
			}
		}
	}
}

func TestGenerateCastleUsesLava(t *testing.T) {
	lvl := Generate(5, 4, GenOptions{GapChance: 0.5})
	if lvl.TimeLimit != castleTime {
		t.Errorf("time limit = %d, expected %d", lvl.TimeLimit, castleTime)
	}

	g := lvl.Grid
	pits := 0
	for x := 0; x < g.Width(); x++ {
		if g.At(x, groundRow) != TileEmpty {
			continue
		}
		pits++
		if !g.IsLethal(x, groundRow+1) {
			t.Errorf("castle pit at column %d has no lava", x)
		}
	}
	if pits == 0 {
		t.Fatal("expected at least one pit with a high gap chance")
	}
}

func TestGenerateClampsArguments(t *testing.T) {
	lvl := Generate(0, 9, GenOptions{})
	if lvl.World != 1 || lvl.Stage != MaxStage {
		t.Errorf("Generate(0, 9) = %s, expected world 1 stage %d", StageName(lvl.World, lvl.Stage), MaxStage)
	}
}

func TestGenerateOffersPowerUp(t *testing.T) {
	lvl := Generate(1, 1, GenOptions{})
	g := lvl.Grid
	for x := 0; x < g.Width(); x++ {
		if g.ContentAt(x, clusterRow) == ContentPowerUp {
			return
		}
	}
	t.Error("no power-up block in a generated level")
}

func TestNext(t *testing.T) {
	tests := []struct {
		world, stage int
		nextW, nextS int
		ok           bool
	}{
		{1, 1, 1, 2, true},
		{1, 4, 2, 1, true},
		{7, 4, 8, 1, true},
		{8, 4, 8, 4, false},
	}

	for _, tc := range tests {
		t.Run(StageName(tc.world, tc.stage), func(t *testing.T) {
			w, s, ok := Next(tc.world, tc.stage)
			if w != tc.nextW || s != tc.nextS || ok != tc.ok {
				t.Errorf("Next() = (%d, %d, %v), expected (%d, %d, %v)", w, s, ok, tc.nextW, tc.nextS, tc.ok)
			}
		})
	}
}
