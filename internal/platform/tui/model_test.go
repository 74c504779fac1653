package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// countingGame records every step it is given.
type countingGame struct {
	rate   int
	resets int
	state  core.GameState
	frames []core.InputFrame
}

func (g *countingGame) ID() string               { return "counting" }
func (g *countingGame) Title() string            { return "Counting" }
func (g *countingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *countingGame) Render(*core.Screen)      {}
func (g *countingGame) State() core.GameState    { return g.state }
func (g *countingGame) StepsPerSecond() int      { return g.rate }
func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

var tickStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(g *countingGame, fps int) tea.Model {
	m := NewModel(g, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: fps})
	m.Init()
	return m
}

func TestModelStepRateIgnoresRenderRate(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		rate int
		want int // Steps over two seconds
	}{
		{"60 fps", 60, 60, 120},
		{"30 fps", 30, 60, 120},
		{"20 fps", 20, 60, 120},
		{"120 fps", 120, 60, 120},
		{"slower game", 60, 30, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &countingGame{rate: tc.rate}
			m := newTestModel(g, tc.fps)
			if g.resets != 1 {
				t.Fatalf("Reset called %d times, expected 1", g.resets)
			}

			interval := time.Second / time.Duration(tc.fps)
			for i := 0; i <= 2*tc.fps; i++ {
				m, _ = m.Update(TickMsg(tickStart.Add(time.Duration(i) * interval)))
			}

			if got := len(g.frames); got < tc.want-1 || got > tc.want {
				t.Errorf("steps = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestModelFeedsHeldKeysIntoSteps(t *testing.T) {
	g := &countingGame{rate: 60}
	m := newTestModel(g, 60)
	step := time.Second / 60

	m, _ = m.Update(TickMsg(tickStart))
	m, _ = m.Update(runeKey('d'))
	m, _ = m.Update(TickMsg(tickStart.Add(2 * step)))
	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.frames))
	}
	if f := g.frames[0]; !f.Has(core.ActionRight) || !f.WasPressed(core.ActionRight) {
		t.Errorf("first step = %+v, expected right pressed", f)
	}
	if f := g.frames[1]; !f.Has(core.ActionRight) || f.WasPressed(core.ActionRight) {
		t.Errorf("second step = %+v, expected right held only", f)
	}

	// Run toggle
	m, _ = m.Update(runeKey('z'))
	m, _ = m.Update(TickMsg(tickStart.Add(3 * step)))
	if len(g.frames) != 3 || !g.frames[2].Has(core.ActionRun) {
		t.Fatalf("frames = %+v, expected the third step to run", g.frames)
	}
	if !m.(Model).running {
		t.Error("run toggle not kept on the model")
	}
}

func TestModelTickSchedulesNextTick(t *testing.T) {
	g := &countingGame{rate: 60}
	m := newTestModel(g, 30)

	_, cmd := m.Update(TickMsg(tickStart))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &countingGame{rate: 60, state: core.GameState{Score: 300, GameOver: true}}
	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.Init()

	var tm tea.Model = m
	for i := 0; i < 4; i++ {
		tm, _ = tm.Update(TickMsg(tickStart.Add(time.Duration(i) * time.Second / 60)))
	}

	scores, err := store.TopScores("counting", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 300 {
		t.Errorf("scores = %+v, expected a single run of 300", scores)
	}
}
