package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// LevelReloadMsg asks the running game to swap in a changed level.
type LevelReloadMsg struct {
	Level *sim.Level
}

// levelReplacer is implemented by games that can hot-swap their level.
type levelReplacer interface {
	ReplaceLevel(l *sim.Level)
}

// Model is the Bubble Tea model that runs one game.
//
// Ticks arrive at roughly TickRate, but the game is stepped by a sim.Driver
// at the game's own step rate from the wall time between ticks. The render
// rate never changes how fast the game runs.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	held       *HeldKeys
	driver     *sim.Driver
	lastTick   time.Time
	running    bool // Run toggle
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // No menu to go back to
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game. Cleared
// stages of platformer games are recorded in the store.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if pg, ok := game.(*platformer.Game); ok && store != nil {
		pg.SetRecorder(func(c platformer.StageClear) {
			_, err := store.SaveStageClear(storage.StageClear{
				GameID:   c.GameID,
				LevelID:  c.LevelID,
				Score:    c.Score,
				Coins:    c.Coins,
				TimeLeft: c.TimeLeft,
				Steps:    c.Steps,
			})
			if err != nil {
				logger.Warn("could not record stage clear", "level", c.LevelID, "err", err)
			}
		})
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		log:    logger,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		held:   NewHeldKeys(DefaultHoldSteps),
		driver: sim.NewDriver(sim.DefaultStepRate),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.applyGameRates()
	return tickCmd(m.config.TickRate)
}

// applyGameRates adopts the step rate and key latch length a game reports
// once Reset has loaded its configuration.
func (m *Model) applyGameRates() {
	if sr, ok := m.game.(interface{ StepsPerSecond() int }); ok {
		m.driver.SetRate(sr.StepsPerSecond())
	}
	if hs, ok := m.game.(interface{ HoldSteps() int }); ok {
		m.held.SetHold(hs.HoldSteps())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case LevelReloadMsg:
		if r, ok := m.game.(levelReplacer); ok && msg.Level != nil {
			r.ReplaceLevel(msg.Level)
			m.held.Reset()
			m.gameState = m.game.State()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	case key.Matches(msg, m.keys.Run):
		m.running = !m.running
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		switch a {
		case core.ActionLeft:
			m.held.Release(core.ActionRight)
		case core.ActionRight:
			m.held.Release(core.ActionLeft)
		}
		m.held.KeyDown(a)
	}
	return m, nil
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.held.Reset()
	m.driver.Reset()
	m.applyGameRates()
}

// handleTick runs as many fixed steps as the time since the last tick
// calls for.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := core.NewInputFrame()
	for range m.driver.Advance(elapsed) {
		frame.Clear()
		m.held.Frame(&frame)
		if m.running {
			frame.Set(core.ActionRun)
		}
		m.gameState = m.game.Step(frame).State
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("could not read high score", "game", m.game.ID(), "err", err)
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.log.Warn("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.log.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "new_best", m.gameState.Score > best)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game. The program is handed
// to attach before it starts, so callers can forward messages such as
// LevelReloadMsg into it.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, attach func(*tea.Program)) error {
	model := NewModel(game, store, logger, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	if attach != nil {
		attach(p)
	}
	_, err := p.Run()
	return err
}
