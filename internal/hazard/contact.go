package hazard

import (
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// Damageable receives collision damage.
type Damageable interface {
	ApplyDamage(amount int)
}

// Hit describes a new contact between the hull and a floe.
type Hit struct {
	Ice           *Ice
	RelativeSpeed float64
	Damage        int
}

// ContactTracker remembers which floes touch the hull. A floe deals damage
// once when contact begins and re-arms after the hull pulls clear.
type ContactTracker struct {
	bus    *signals.Bus
	curve  Curve
	target Damageable

	touching map[int]bool
}

// NewContactTracker creates a tracker that damages target.
func NewContactTracker(bus *signals.Bus, curve Curve, target Damageable) *ContactTracker {
	return &ContactTracker{
		bus:      bus,
		curve:    curve,
		target:   target,
		touching: make(map[int]bool),
	}
}

// SetCurve replaces the damage curve (per run configuration).
func (t *ContactTracker) SetCurve(c Curve) {
	t.curve = c
}

// Reset forgets all contacts.
func (t *ContactTracker) Reset() {
	clear(t.touching)
}

// Touching reports whether the floe with the given id is in contact.
func (t *ContactTracker) Touching(id int) bool {
	return t.touching[id]
}

// Update checks the hull circle against every floe. For each contact that
// begins this tick it publishes CollideIce, then applies damage, so a fatal
// strike is observed before the RunEnd it causes.
// Returns the new contacts in floe order.
func (t *ContactTracker) Update(hullPos, hullVel core.Vec2, hullRadius float64, ice []*Ice) []Hit {
	var hits []Hit
	for _, floe := range ice {
		inContact := hullPos.Dist(floe.Pos) <= hullRadius+floe.Radius()
		if !inContact {
			delete(t.touching, floe.ID)
			continue
		}
		if t.touching[floe.ID] {
			continue
		}
		t.touching[floe.ID] = true

		rel := hullVel.Sub(floe.Vel).Len()
		dmg := floe.ComputeDamage(rel, t.curve)
		t.bus.Publish(signals.CollideIce{Size: int(floe.Size()), RelativeSpeed: rel})
		if t.target != nil {
			t.target.ApplyDamage(dmg)
		}
		hits = append(hits, Hit{Ice: floe, RelativeSpeed: rel, Damage: dmg})
	}
	return hits
}
