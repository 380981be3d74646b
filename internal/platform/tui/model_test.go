package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/run"
	"github.com/vovakirdan/dark-seas/internal/signals"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "legacy.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := NewModel(Options{
		Config:  config.DefaultGameConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 7},
		Store:   store,
		Profile: "ahab",
	})
	t.Cleanup(m.Close)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelRunRecorded(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)

	if !strings.Contains(m.View(), "HARBOR") {
		t.Fatal("session should open in the harbor")
	}

	m = send(t, m, runeKey('s'))
	if m.Sim().Phase() != run.PhaseExpedition {
		t.Fatalf("s in harbor should set sail, phase = %v", m.Sim().Phase())
	}
	m = tick(t, m)

	m = send(t, m, runeKey('x'))
	m = tick(t, m)
	if m.Sim().Phase() != run.PhaseDebrief {
		t.Fatalf("x should abandon the run, phase = %v", m.Sim().Phase())
	}
	if !strings.Contains(m.View(), "Run Complete") {
		t.Error("debrief panel should be shown")
	}

	runs, err := store.RecentRuns("ahab", 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Result != signals.ResultAbandoned || r.Seed != 7 {
		t.Errorf("run record = %+v", r)
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("run id %q is not a UUID: %v", r.RunID, err)
	}

	// Esc leaves the debrief like Enter
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.Sim().Phase() != run.PhaseHarbor {
		t.Fatalf("esc in debrief should return to harbor, phase = %v", m.Sim().Phase())
	}
	if !strings.Contains(m.View(), "Abandoned") {
		t.Error("harbor should list the logged voyage")
	}
}

func TestModelBuyUpgrade(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.AddLegacyPoints("ahab", 10); err != nil {
		t.Fatalf("AddLegacyPoints: %v", err)
	}
	m := newTestModel(t, store)

	// First row is the lamp lens
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	ledger := m.Sim().Ledger()
	if ledger.Points() != 8 || ledger.Count("lamp-lens") != 1 {
		t.Fatalf("points %d lamp-lens %d, expected 8 and 1", ledger.Points(), ledger.Count("lamp-lens"))
	}

	state, err := store.LoadLegacy("ahab")
	if err != nil {
		t.Fatalf("LoadLegacy: %v", err)
	}
	if state.Points != 8 || state.Upgrades["lamp-lens"] != 1 {
		t.Errorf("persisted state = %+v", state)
	}
	if !strings.Contains(m.View(), "Fitted lamp-lens") {
		t.Error("harbor should confirm the purchase")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('s'))
	m = send(t, m, runeKey('x'))
	m = tick(t, m)

	if m.Sim().Phase() != run.PhaseDebrief {
		t.Fatalf("phase = %v, expected Debrief", m.Sim().Phase())
	}
	if len(m.recorder.saved) != 1 {
		t.Errorf("recorder kept %d runs, expected 1", len(m.recorder.saved))
	}
}

func TestModelHeldRescueKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('s'))

	base := time.Unix(5000, 0)
	m.now = func() time.Time { return base }
	m = send(t, m, runeKey('e'))

	// Within the grace window the tick sees a held rescue
	m.hold.Apply(&m.frame, base.Add(300*time.Millisecond))
	if !m.frame.Has(core.ActionRescue) {
		t.Error("rescue key should be held between key repeats")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ice", core.ColorIce)
	s.DrawText(0, 1, "sea")

	out := RenderScreen(s)
	if !strings.Contains(out, "ice") || !strings.Contains(out, "sea") {
		t.Errorf("rendered output missing text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestModelSeesOutsidePurchase(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.AddLegacyPoints("ahab", 5); err != nil {
		t.Fatalf("AddLegacyPoints: %v", err)
	}
	m := newTestModel(t, store)

	m = send(t, m, runeKey('s'))
	m = tick(t, m)

	// Bought from the command line while the session is at sea
	if _, ok, err := store.BuyUpgrade("ahab", "extra-seat", 5, false); err != nil || !ok {
		t.Fatalf("BuyUpgrade: ok=%v err=%v", ok, err)
	}

	m = send(t, m, runeKey('x'))
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if m.Sim().Phase() != run.PhaseHarbor {
		t.Fatalf("phase = %v, expected Harbor", m.Sim().Phase())
	}

	ledger := m.Sim().Ledger()
	if ledger.Points() != 0 || ledger.Count("extra-seat") != 1 {
		t.Errorf("ledger points %d seat %d, expected the outside purchase", ledger.Points(), ledger.Count("extra-seat"))
	}
}
