package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// maxScores is the number of runs the scoreboard loads.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Clears   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Clears, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Clears, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Clears: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "runs/clears"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type scoreboardTab struct {
	gameID string
	title  string
}

var scoreboardTabs = []scoreboardTab{
	{platformer.CampaignID, "Campaign"},
	{platformer.EndlessID, "Endless"},
}

// ScoreboardModel shows the best runs or the best stage clears per mode.
type ScoreboardModel struct {
	store      *storage.Store
	tab        int
	showClears bool
	table      table.Model
	rows       int
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	loadErr    error
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// StartWithClears switches the initial view to stage clears.
func (m *ScoreboardModel) StartWithClears() {
	m.showClears = true
	m.reload()
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.showClears {
		return []table.Column{
			{Title: "Stage", Width: 16},
			{Title: "Score", Width: 10},
			{Title: "Coins", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Steps", Width: 8},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 18},
	}
}

// reload rebuilds the table for the current tab and view.
func (m *ScoreboardModel) reload() {
	var rows []table.Row
	m.loadErr = nil
	gameID := scoreboardTabs[m.tab].gameID

	if m.store != nil && m.showClears {
		clears, err := m.store.BestClears(gameID)
		m.loadErr = err
		for _, c := range clears {
			rows = append(rows, table.Row{
				c.LevelID,
				fmt.Sprintf("%d", c.Score),
				fmt.Sprintf("%d", c.Coins),
				fmt.Sprintf("%d", c.TimeLeft),
				fmt.Sprintf("%d", c.Steps),
				c.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	} else if m.store != nil {
		scores, err := m.store.TopScores(gameID, maxScores)
		m.loadErr = err
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.rows = len(rows)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.tab = (m.tab + 1) % len(scoreboardTabs)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.tab = (m.tab + len(scoreboardTabs) - 1) % len(scoreboardTabs)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Clears):
			m.showClears = !m.showClears
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	view := "HIGH SCORES"
	if m.showClears {
		view = "BEST CLEARS"
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(view), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(scoreboardTabs))
	for i, t := range scoreboardTabs {
		if i == m.tab {
			tabs[i] = selectedStyle.Padding(0, 1).Render(t.title)
		} else {
			tabs[i] = dimStyle.Render(" " + t.title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.tableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are not being saved.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.rows == 0 && m.showClears:
		return emptyStyle.Render("No stages cleared yet.")
	case m.rows == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own.
func RunScoreboard(store *storage.Store, width, height int, clears bool) error {
	model := NewScoreboardModel(store, width, height)
	if clears {
		model.StartWithClears()
	}
	_, err := tea.NewProgram(quitWhenDone{model}, tea.WithAltScreen()).Run()
	return err
}

// quitWhenDone runs a scoreboard as a whole program, quitting on back.
type quitWhenDone struct {
	ScoreboardModel
}

func (q quitWhenDone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := q.ScoreboardModel.Update(msg)
	q.ScoreboardModel = next.(ScoreboardModel)
	if q.IsGoingBack() || q.IsQuitting() {
		return q, tea.Quit
	}
	return q, cmd
}
