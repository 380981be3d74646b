package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/signals"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

// Harbor layout constants
const (
	historyRows   = 5
	shopMinHeight = 4
)

// RunHistory lists past runs. *storage.Store implements it.
type RunHistory interface {
	RecentRuns(profile string, limit int) ([]storage.RunRecord, error)
}

// HarborKeyMap defines the key bindings for the harbor screen.
type HarborKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Sail key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HarborKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Sail, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HarborKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Buy, k.Sail},
		{k.Help, k.Quit},
	}
}

// DefaultHarborKeyMap returns default key bindings.
func DefaultHarborKeyMap() HarborKeyMap {
	return HarborKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy upgrade"),
		),
		Sail: key.NewBinding(
			key.WithKeys("s", " ", "space"),
			key.WithHelp("s", "set sail"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HarborAction is what the player asked for in the harbor.
type HarborAction int

const (
	HarborNone HarborAction = iota
	HarborSail
	HarborQuit
)

// HarborModel is the upgrade shop shown between runs.
type HarborModel struct {
	ledger  *legacy.Ledger
	catalog []config.UpgradeDef
	history RunHistory

	table  table.Model
	help   help.Model
	keys   HarborKeyMap
	runs   []storage.RunRecord
	notice string
	width  int
	height int
}

// NewHarborModel creates the shop for ledger's profile. history may be nil.
func NewHarborModel(ledger *legacy.Ledger, catalog []config.UpgradeDef, history RunHistory, width, height int) HarborModel {
	m := HarborModel{
		ledger:  ledger,
		catalog: catalog,
		history: history,
		help:    help.New(),
		keys:    DefaultHarborKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.Refresh()
	return m
}

func (m *HarborModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 14},
		{Title: "Effect", Width: 12},
		{Title: "Cost", Width: 5},
		{Title: "Owned", Width: 6},
		{Title: "", Width: 40},
	}
	if avail := m.width - 4 - 14 - 12 - 5 - 6 - 10; avail < 40 {
		columns[4].Width = max(avail, 0)
	}

	tableHeight := m.height - historyRows - 12
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(tableHeight, shopMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Refresh reloads the shop rows and the voyage history.
func (m *HarborModel) Refresh() {
	rows := make([]table.Row, len(m.catalog))
	for i, u := range m.catalog {
		owned := fmt.Sprintf("%d", m.ledger.Count(u.ID))
		if !u.Stackable && m.ledger.Count(u.ID) > 0 {
			owned = "max"
		}
		rows[i] = table.Row{u.ID, effect(u), fmt.Sprintf("%d", u.LegacyCost), owned, u.Description}
	}
	m.table.SetRows(rows)

	m.runs = nil
	if m.history != nil {
		if runs, err := m.history.RecentRuns(m.ledger.Profile(), historyRows); err == nil {
			m.runs = runs
		}
	}
}

func effect(u config.UpgradeDef) string {
	switch u.Type {
	case config.UpgradeLight:
		return fmt.Sprintf("+%.0fm light", u.Value)
	case config.UpgradeHull:
		return fmt.Sprintf("+%.0f hull", u.Value)
	case config.UpgradeFuel:
		return fmt.Sprintf("+%.0fs fuel", u.Value)
	case config.UpgradeSeats:
		return fmt.Sprintf("+%.0f seat", u.Value)
	}
	return string(u.Type)
}

// Update handles a message and reports what the player asked for.
func (m HarborModel) Update(msg tea.Msg) (HarborModel, HarborAction, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, HarborQuit, nil
		case key.Matches(msg, m.keys.Sail):
			m.notice = ""
			return m, HarborSail, nil
		case key.Matches(msg, m.keys.Buy):
			m.buySelected()
			return m, HarborNone, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, HarborNone, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.Refresh()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, HarborNone, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, HarborNone, cmd
}

func (m *HarborModel) buySelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.catalog) {
		return
	}
	u := m.catalog[i]
	switch {
	case !u.Stackable && m.ledger.Count(u.ID) > 0:
		m.notice = fmt.Sprintf("%s already fitted", u.ID)
	case !m.ledger.Purchase(u):
		m.notice = fmt.Sprintf("Not enough Legacy for %s (%d needed)", u.ID, u.LegacyCost)
	default:
		m.notice = fmt.Sprintf("Fitted %s", u.ID)
		m.Refresh()
	}
}

var (
	harborTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	harborPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	harborDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	harborNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	harborFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the harbor.
func (m HarborModel) View() string {
	var b strings.Builder

	b.WriteString(harborTitleStyle.Render(centerText("DARK SEAS · HARBOR", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Skipper %s · Legacy Points %d", m.ledger.Profile(), m.ledger.Points()), m.width))
	b.WriteString("\n\n")

	b.WriteString(harborPanelStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(harborNoticeStyle.Render(m.notice))
	}
	b.WriteString("\n")

	b.WriteString(harborPanelStyle.Render(m.historyView()))
	b.WriteString("\n")
	b.WriteString(harborDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HarborModel) historyView() string {
	var b strings.Builder
	b.WriteString("Recent voyages\n")
	if len(m.runs) == 0 {
		b.WriteString(harborDimStyle.Italic(true).Render("No voyages logged yet."))
		return b.String()
	}
	for i, r := range m.runs {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%-9s rescued %d  +%-3d %6s  %s",
			r.Result, r.Rescued, r.PointsEarned,
			voyageLength(r.Duration),
			humanize.Time(r.CreatedAt),
		)
		if r.Result == signals.ResultSank {
			line = harborFailStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

func voyageLength(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
