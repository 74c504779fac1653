package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	clearedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceCampaign
	ChoiceEndless
	ChoiceStageSelect
	ChoiceLevels
	ChoiceScoreboard
	ChoiceQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

// MenuModel is the main menu.
type MenuModel struct {
	items  []menuItem
	cursor int
	width  int
	height int
	keys   MenuKeyMap
	help   help.Model
	choice MenuChoice
}

// NewMenuModel creates the main menu. The level list entry only appears
// when there are levels to pick from.
func NewMenuModel(width, height int, hasLevels bool) MenuModel {
	items := []menuItem{
		{"Campaign", ChoiceCampaign},
		{"Endless", ChoiceEndless},
		{"Select Stage", ChoiceStageSelect},
	}
	if hasLevels {
		items = append(items, menuItem{"Levels", ChoiceLevels})
	}
	items = append(items,
		menuItem{"High Scores", ChoiceScoreboard},
		menuItem{"Quit", ChoiceQuit},
	)

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.choice = m.items[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.title + "  "
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.title + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the picked entry, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// StageSelectModel lets the user pick a campaign stage. Stages cleared
// before are marked.
type StageSelectModel struct {
	world   int
	stage   int
	cleared map[string]bool
	width   int
	height  int
	keys    MenuKeyMap
	help    help.Model
	chosen  bool
	back    bool
}

// NewStageSelectModel creates a stage selector. cleared holds stage names
// such as "1-1". Only 1-1, cleared stages and the stage after a cleared one
// can be picked.
func NewStageSelectModel(cleared []string, width, height int) StageSelectModel {
	set := make(map[string]bool, len(cleared))
	for _, id := range cleared {
		set[id] = true
	}
	return StageSelectModel{
		world:   1,
		stage:   1,
		cleared: set,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
func (m StageSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StageSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.back = true
		case key.Matches(msg, m.keys.Up):
			m.world = max(1, m.world-1)
		case key.Matches(msg, m.keys.Down):
			m.world = min(sim.MaxWorld, m.world+1)
		case key.Matches(msg, m.keys.Left):
			m.stage = max(1, m.stage-1)
		case key.Matches(msg, m.keys.Right):
			m.stage = min(sim.MaxStage, m.stage+1)
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.unlocked(m.world, m.stage)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the stage grid.
func (m StageSelectModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT STAGE"), m.width))
	b.WriteString("\n\n")

	for w := 1; w <= sim.MaxWorld; w++ {
		cells := make([]string, 0, sim.MaxStage)
		for s := 1; s <= sim.MaxStage; s++ {
			name := sim.StageName(w, s)
			mark := " "
			if m.cleared[name] {
				mark = "*"
			}
			cell := fmt.Sprintf(" %s%s ", name, mark)
			switch {
			case w == m.world && s == m.stage:
				cell = selectedStyle.Render(cell)
			case m.cleared[name]:
				cell = clearedStyle.Render(cell)
			case !m.unlocked(w, s):
				cell = dimStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		b.WriteString(centerText(strings.Join(cells, " "), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("* cleared, dimmed stages are locked"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// unlocked reports whether a stage can be entered.
func (m StageSelectModel) unlocked(world, stage int) bool {
	if world == 1 && stage == 1 {
		return true
	}
	if m.cleared[sim.StageName(world, stage)] {
		return true
	}
	pw, ps := world, stage-1
	if ps < 1 {
		pw, ps = world-1, sim.MaxStage
	}
	return m.cleared[sim.StageName(pw, ps)]
}

// Chosen returns the picked stage. ok is false until one is picked.
func (m StageSelectModel) Chosen() (world, stage int, ok bool) {
	return m.world, m.stage, m.chosen
}

// Back returns true if the user left without picking.
func (m StageSelectModel) Back() bool {
	return m.back
}

// LevelPickerModel lists loaded level files.
type LevelPickerModel struct {
	levels []*sim.Level
	cursor int
	width  int
	height int
	keys   MenuKeyMap
	help   help.Model
	chosen *sim.Level
	back   bool
}

// NewLevelPickerModel creates a picker over the given levels.
func NewLevelPickerModel(levels []*sim.Level, width, height int) LevelPickerModel {
	return LevelPickerModel{
		levels: levels,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.back = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.chosen = m.levels[m.cursor]
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("LEVELS"), m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("  %-20s %-24s %-11s  ", l.ID, l.Name, l.Theme)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the picked level, or nil.
func (m LevelPickerModel) Chosen() *sim.Level {
	return m.chosen
}

// Back returns true if the user left without picking.
func (m LevelPickerModel) Back() bool {
	return m.back
}

// centerText centers possibly styled text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
