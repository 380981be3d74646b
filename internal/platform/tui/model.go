package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/run"
	"github.com/vovakirdan/dark-seas/internal/sim"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

// Options configure a game session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil plays without persistence
	Profile string
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one player's session: harbor, sea and debrief.
type Model struct {
	sim      *sim.Sim
	recorder *runRecorder
	harbor   HarborModel
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	hold     *HoldTracker
	frame    core.InputFrame
	phase    run.Phase
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a session model. The profile's ledger is loaded from the
// store when one is given.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Typed nils must not leak into the interfaces below
	var (
		ledgerStore legacy.Store
		runStore    RunStore
		history     RunHistory
	)
	if opts.Store != nil {
		ledgerStore, runStore, history = opts.Store, opts.Store, opts.Store
	}

	// The bottom row holds the key help
	seaRuntime := opts.Runtime
	seaRuntime.ScreenH = seaHeight(opts.Runtime.ScreenH)

	ledger := legacy.NewLedger(ledgerStore, opts.Profile, opts.Config.Legacy, logger)
	s := sim.New(opts.Config, ledger, seaRuntime, logger)

	return Model{
		sim:      s,
		recorder: newRunRecorder(s, runStore, logger),
		harbor:   NewHarborModel(ledger, opts.Config.Upgrades, history, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		screen:   core.NewScreen(seaRuntime.ScreenW, seaRuntime.ScreenH),
		runtime:  opts.Runtime,
		keys:     NewKeyMapper(),
		help:     help.New(),
		hold:     NewHoldTracker(),
		frame:    core.NewInputFrame(),
		phase:    s.Phase(),
		logger:   logger,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.sim.Phase() == run.PhaseHarbor {
			return m.handleHarborKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleHarborKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		action HarborAction
		cmd    tea.Cmd
	)
	m.harbor, action, cmd = m.harbor.Update(msg)

	switch action {
	case HarborQuit:
		return m.quit()
	case HarborSail:
		m.hold.Reset()
		m.frame.Clear()
		m.sim.StartRun()
	}
	return m, cmd
}

// handleKey maps keys at sea. Helm and rescue keys are tracked as held.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch {
	case action == core.ActionNone:
	case m.hold.Holdable(action):
		m.hold.Press(action, m.now())
	case action == core.ActionBack && m.sim.Phase() == run.PhaseDebrief:
		m.frame.Set(core.ActionConfirm)
	default:
		m.frame.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, seaHeight(msg.Height))
	m.sim.Resize(msg.Width, seaHeight(msg.Height))
	m.help.Width = msg.Width

	var cmd tea.Cmd
	m.harbor, _, cmd = m.harbor.Update(msg)
	return m, cmd
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.sim.Phase() == run.PhaseExpedition {
		m.hold.Apply(&m.frame, now)
	}
	m.sim.Step(m.frame)
	m.frame.Clear()

	// Back in harbor: show the new points and the logged voyage
	if phase := m.sim.Phase(); phase != m.phase {
		if phase == run.PhaseHarbor {
			m.sim.Ledger().Reload()
			m.harbor.Refresh()
		}
		if phase != run.PhaseExpedition {
			m.hold.Reset()
		}
		m.phase = phase
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

// Close detaches the session from its simulation.
func (m Model) Close() {
	m.recorder.Release()
	m.sim.Close()
}

// saveScreenshot writes the current frame as plain text under ~/.darkseas/screenshots.
func (m *Model) saveScreenshot() {
	m.sim.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".darkseas", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.sim.Ledger().Profile(), m.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sim.Phase() == run.PhaseHarbor {
		return m.harbor.View()
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

func seaHeight(h int) int {
	return max(h-1, 1)
}

// Sim exposes the simulation, for the CLI and tests.
func (m Model) Sim() *sim.Sim {
	return m.sim
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
