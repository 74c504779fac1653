package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewStages
	viewLevels
	viewScores
	viewGame
)

// SessionModel manages the full flow of one player: menu, the pickers,
// the scoreboard and the game, and back to the menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	store    *storage.Store
	log      *log.Logger
	config   core.RuntimeConfig
	levels   []*sim.Level
	view     view
	menu     MenuModel
	stages   StageSelectModel
	picker   LevelPickerModel
	scores   ScoreboardModel
	game     Model
	quitting bool
}

// NewSessionModel creates a session starting at the main menu. levels are
// offered in the level picker.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, levels []*sim.Level) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		log:    logger,
		config: cfg,
		levels: levels,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, len(levels) > 0),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}
	// Ticks left over from a finished game stop here
	if _, ok := msg.(TickMsg); ok && m.view != viewGame {
		return m, nil
	}

	switch m.view {
	case viewStages:
		return m.updateStages(msg)
	case viewLevels:
		return m.updateLevels(msg)
	case viewScores:
		return m.updateScores(msg)
	case viewGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceCampaign:
		return m.startGame(platformer.CampaignID, func(g *platformer.Game) { g.StartAt(1, 1) })
	case ChoiceEndless:
		return m.startGame(platformer.EndlessID, nil)
	case ChoiceStageSelect:
		var cleared []string
		if m.store != nil {
			ids, err := m.store.ClearedStages(platformer.CampaignID)
			if err != nil {
				m.log.Warn("could not load cleared stages", "err", err)
			}
			cleared = ids
		}
		m.stages = NewStageSelectModel(cleared, m.config.ScreenW, m.config.ScreenH)
		m.view = viewStages
	case ChoiceLevels:
		m.picker = NewLevelPickerModel(m.levels, m.config.ScreenW, m.config.ScreenH)
		m.view = viewLevels
	case ChoiceScoreboard:
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
	}
	return m, cmd
}

func (m SessionModel) updateStages(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stages.Update(msg)
	m.stages = next.(StageSelectModel)

	if m.stages.Back() {
		return m.toMenu()
	}
	if w, s, ok := m.stages.Chosen(); ok {
		return m.startGame(platformer.CampaignID, func(g *platformer.Game) { g.StartAt(w, s) })
	}
	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	m.picker = next.(LevelPickerModel)

	if m.picker.Back() {
		return m.toMenu()
	}
	if l := m.picker.Chosen(); l != nil {
		return m.startGame(platformer.CampaignID, func(g *platformer.Game) { g.UseLevel(l) })
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

// startGame creates a game from the registry, lets setup adjust it and
// switches to it.
func (m SessionModel) startGame(id string, setup func(*platformer.Game)) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.log.Error("cannot create game", "game", id, "err", err)
		return m.toMenu()
	}
	if pg, ok := game.(*platformer.Game); ok && setup != nil {
		setup(pg)
	}
	m.log.Info("game started", "game", id)
	m.game = NewModel(game, m.store, m.log, m.config)
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, len(m.levels) > 0)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewStages:
		return m.stages.View()
	case viewLevels:
		return m.picker.View()
	case viewScores:
		return m.scores.View()
	case viewGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, levels []*sim.Level) error {
	p := tea.NewProgram(
		NewSessionModel(store, logger, cfg, levels),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
