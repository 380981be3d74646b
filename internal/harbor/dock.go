// Package harbor implements the dock where rescued passengers are delivered
// for Legacy Points.
package harbor

import (
	"math"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// Roster is the passenger side of a delivery.
type Roster interface {
	PassengerCount() int
	DeliverPassengers() int
}

// Awarder converts delivered passengers into points and returns the award.
type Awarder interface {
	AddFromPassengers(count int) int
}

// Dock is a circular trigger zone with a delivery cooldown.
type Dock struct {
	bus    *signals.Bus
	ledger Awarder

	Pos            core.Vec2
	Radius         float64
	Cooldown       float64
	DeliverOnEnter bool

	lastDelivery float64
	inside       bool
}

// NewDock creates a dock at pos.
func NewDock(bus *signals.Bus, ledger Awarder, pos core.Vec2, cfg config.DockConfig) *Dock {
	d := &Dock{
		bus:            bus,
		ledger:         ledger,
		Pos:            pos,
		Radius:         cfg.Radius,
		Cooldown:       core.NonNeg(cfg.CooldownSeconds),
		DeliverOnEnter: cfg.DeliverOnEnter,
	}
	d.Reset()
	return d
}

// Reset forgets the last delivery and zone occupancy.
func (d *Dock) Reset() {
	d.lastDelivery = math.Inf(-1)
	d.inside = false
}

// MoveTo relocates the dock (a new patch puts the harbor elsewhere).
func (d *Dock) MoveTo(pos core.Vec2) {
	d.Pos = pos
	d.Reset()
}

// Contains reports whether pos is inside the dock zone.
func (d *Dock) Contains(pos core.Vec2) bool {
	return d.Pos.Dist(pos) <= d.Radius
}

// TryDeliver hands the roster to the ledger when the cooldown has elapsed and
// someone is aboard. Returns the number delivered.
func (d *Dock) TryDeliver(now float64, r Roster) int {
	if r == nil || now-d.lastDelivery < d.Cooldown {
		return 0
	}
	count := r.PassengerCount()
	if count <= 0 {
		return 0
	}

	r.DeliverPassengers()
	points := 0
	if d.ledger != nil {
		points = d.ledger.AddFromPassengers(count)
	}
	d.bus.Publish(signals.Delivered{Count: count, Points: points})
	d.lastDelivery = now
	return count
}

// Update tracks the boat against the zone. In enter mode it delivers when the
// boat crosses into the zone; in stay mode on every update while inside.
func (d *Dock) Update(now float64, boatPos core.Vec2, r Roster) int {
	inside := d.Contains(boatPos)
	entered := inside && !d.inside
	d.inside = inside

	if d.DeliverOnEnter {
		if entered {
			return d.TryDeliver(now, r)
		}
		return 0
	}
	if inside {
		return d.TryDeliver(now, r)
	}
	return 0
}

// Inside reports whether the boat was inside the zone at the last Update.
func (d *Dock) Inside() bool {
	return d.inside
}
