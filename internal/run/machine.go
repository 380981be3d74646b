// Package run implements the run lifecycle: Harbor -> Expedition -> Debrief -> Harbor.
package run

import (
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// Phase is a run lifecycle state.
type Phase int

const (
	PhaseHarbor Phase = iota
	PhaseExpedition
	PhaseDebrief
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHarbor:
		return "Harbor"
	case PhaseExpedition:
		return "Expedition"
	case PhaseDebrief:
		return "Debrief"
	default:
		return "Unknown"
	}
}

// Outcome is how the last run ended.
type Outcome struct {
	Result  string
	Rescued int
}

// Machine is the run state machine. Invalid transitions are ignored.
//
// The machine also listens for RunEnd so runs ended elsewhere (a sinking hull)
// land in Debrief.
type Machine struct {
	bus   *signals.Bus
	sub   *signals.Subscription
	phase Phase
	seed  int64
	last  Outcome
}

// NewMachine creates a machine in Harbor, subscribed to bus.
func NewMachine(bus *signals.Bus) *Machine {
	m := &Machine{bus: bus, phase: PhaseHarbor}
	m.sub = signals.Subscribe(bus, m.onRunEnd)
	return m
}

// StartRun moves Harbor -> Expedition and publishes RunStart.
func (m *Machine) StartRun(seed int64) bool {
	if m.phase != PhaseHarbor {
		return false
	}
	m.phase = PhaseExpedition
	m.seed = seed
	m.last = Outcome{}
	m.bus.Publish(signals.RunStart{Seed: seed})
	return true
}

// EndRun moves Expedition -> Debrief and publishes RunEnd.
func (m *Machine) EndRun(result string, rescued int) bool {
	if m.phase != PhaseExpedition {
		return false
	}
	// Enter Debrief first so our own RunEnd handler sees a finished run
	m.phase = PhaseDebrief
	m.last = Outcome{Result: result, Rescued: rescued}
	m.bus.Publish(signals.RunEnd{Result: result, RescuedCount: rescued})
	return true
}

// ReturnToHarbor moves Debrief -> Harbor.
func (m *Machine) ReturnToHarbor() bool {
	if m.phase != PhaseDebrief {
		return false
	}
	m.phase = PhaseHarbor
	return true
}

func (m *Machine) onRunEnd(e signals.RunEnd) {
	if m.phase != PhaseExpedition {
		return
	}
	m.phase = PhaseDebrief
	m.last = Outcome{Result: e.Result, Rescued: e.RescuedCount}
}

// Release drops the machine's bus subscription.
func (m *Machine) Release() {
	m.sub.Release()
}

func (m *Machine) Phase() Phase         { return m.phase }
func (m *Machine) Seed() int64          { return m.seed }
func (m *Machine) LastOutcome() Outcome { return m.last }
