// Package boat holds the player's boat state: fuel tank, hull, movement
// controller and headlight. Components publish threshold crossings on the
// signal bus and never return errors.
package boat

import (
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// Fuel defaults.
const (
	DefaultFuelCapacity       = 180.0
	DefaultFuelBaseRate       = 1.0
	DefaultThrottleMultiplier = 1.5
)

// FuelParams configures a fuel tank.
type FuelParams struct {
	Capacity           float64 // seconds at idle, must be > 0
	BaseRate           float64 // units per second at idle
	ThrottleMultiplier float64 // extra burn at full throttle
}

// Fuel is the boat's fuel tank. Burn rate grows with throttle.
// Empty is edge triggered: FuelEmpty is published once per depletion.
type Fuel struct {
	bus *signals.Bus

	capacity     float64
	current      float64
	baseRate     float64
	throttleMult float64
	throttle     float64
	empty        bool
	clock        float64
}

// NewFuel creates a full tank.
func NewFuel(bus *signals.Bus, p FuelParams) *Fuel {
	f := &Fuel{bus: bus}
	f.Configure(p)
	return f
}

// Configure replaces the tank parameters and refills it.
func (f *Fuel) Configure(p FuelParams) {
	if p.Capacity <= 0 {
		p.Capacity = DefaultFuelCapacity
	}
	f.capacity = p.Capacity
	f.baseRate = core.NonNeg(p.BaseRate)
	f.throttleMult = core.NonNeg(p.ThrottleMultiplier)
	f.clock = 0
	f.Refill()
}

// SetThrottle stores the absolute throttle position, clamped to [0, 1].
func (f *Fuel) SetThrottle(x float64) {
	if x < 0 {
		x = -x
	}
	f.throttle = core.Clamp01(x)
}

// Tick burns fuel for dt seconds. Negative dt is treated as zero.
func (f *Fuel) Tick(dt float64) {
	dt = core.NonNeg(dt)
	f.clock += dt
	if f.empty {
		return
	}

	rate := f.baseRate * (1 + f.throttle*f.throttleMult)
	f.current -= rate * dt
	if f.current <= 0 {
		f.current = 0
		f.empty = true
		f.bus.Publish(signals.FuelEmpty{Time: f.clock})
	}
}

// Refill resets the tank to capacity and clears the empty flag.
func (f *Fuel) Refill() {
	f.current = f.capacity
	f.empty = false
}

func (f *Fuel) Current() float64  { return f.current }
func (f *Fuel) Capacity() float64 { return f.capacity }
func (f *Fuel) Throttle() float64 { return f.throttle }
func (f *Fuel) IsEmpty() bool     { return f.empty }

// Fraction returns current/capacity in [0, 1] for gauges.
func (f *Fuel) Fraction() float64 {
	return core.Clamp01(f.current / f.capacity)
}
