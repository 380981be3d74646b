package boat

import (
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// DefaultHullHP is the stock hull strength.
const DefaultHullHP = 100

// Hull tracks hull points. Reaching zero latches sinking, cuts forward
// control and ends the run as "Sank".
type Hull struct {
	bus *signals.Bus

	maxHP   int
	hp      int
	sinking bool
	onSink  func()
}

// NewHull creates an undamaged hull. Non-positive maxHP uses DefaultHullHP.
func NewHull(bus *signals.Bus, maxHP int) *Hull {
	h := &Hull{bus: bus}
	h.SetMaxHP(maxHP)
	return h
}

// OnSink registers the callback invoked once when the hull starts sinking.
func (h *Hull) OnSink(fn func()) {
	h.onSink = fn
}

// SetMaxHP changes hull strength and repairs the hull.
func (h *Hull) SetMaxHP(maxHP int) {
	if maxHP <= 0 {
		maxHP = DefaultHullHP
	}
	h.maxHP = maxHP
	h.Repair()
}

// ApplyDamage subtracts damage from the hull. Negative amounts are treated as
// zero and a sinking hull ignores further damage.
func (h *Hull) ApplyDamage(amount int) {
	if h.sinking {
		return
	}
	if amount < 0 {
		amount = 0
	}

	h.hp -= amount
	if h.hp > 0 {
		return
	}

	h.hp = 0
	h.sinking = true
	if h.onSink != nil {
		h.onSink()
	}
	h.bus.Publish(signals.RunEnd{Result: signals.ResultSank, RescuedCount: 0})
}

// Repair restores full HP and clears the sinking latch.
func (h *Hull) Repair() {
	h.hp = h.maxHP
	h.sinking = false
}

func (h *Hull) HP() int         { return h.hp }
func (h *Hull) MaxHP() int      { return h.maxHP }
func (h *Hull) IsSinking() bool { return h.sinking }

// Fraction returns hp/maxHP for gauges.
func (h *Hull) Fraction() float64 {
	return float64(h.hp) / float64(h.maxHP)
}
