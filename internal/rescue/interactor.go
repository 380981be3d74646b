package rescue

import (
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/signals"
)

// Interactor defaults.
const (
	DefaultHoldSeconds   = 1.5
	DefaultMaxPassengers = 2
)

// Interactor runs the hold-to-rescue state machine for one boat:
//
//	Idle -> Attempting(target, elapsed) -> Idle
//
// An attempt ends in a pickup when the hold completes, or is canceled when the
// target leaves range, the boat is interrupted, or the hold is released.
type Interactor struct {
	bus      *signals.Bus
	registry *Registry
	locate   func() core.Vec2

	holdSeconds   float64
	maxPassengers int
	passengers    []string

	attempting  bool
	target      *Target
	elapsed     float64
	interrupted bool
	clock       float64
}

// NewInteractor creates an idle interactor. locate reports the boat position.
func NewInteractor(bus *signals.Bus, registry *Registry, locate func() core.Vec2) *Interactor {
	return &Interactor{
		bus:           bus,
		registry:      registry,
		locate:        locate,
		holdSeconds:   DefaultHoldSeconds,
		maxPassengers: DefaultMaxPassengers,
	}
}

// SetHoldSeconds sets how long a rescue must be held.
func (in *Interactor) SetHoldSeconds(s float64) {
	in.holdSeconds = core.NonNeg(s)
}

// SetMaxPassengers sets roster capacity. Passengers already aboard stay.
func (in *Interactor) SetMaxPassengers(n int) {
	in.maxPassengers = core.Max(n, 0)
}

// StartAttempt begins rescuing the nearest target in range.
// No-op while attempting, at capacity, or with nothing in range.
func (in *Interactor) StartAttempt() {
	if in.attempting || !in.HasCapacity() || in.registry == nil {
		return
	}
	t := in.registry.Nearest(in.position())
	if t == nil {
		return
	}

	in.attempting = true
	in.target = t
	in.elapsed = 0
	in.interrupted = false
	in.bus.Publish(signals.RescueStarted{ID: t.ID})
}

// Interrupt cancels the current attempt on the next tick, before the hold
// accumulates further. Used for collisions.
func (in *Interactor) Interrupt() {
	if in.attempting {
		in.interrupted = true
	}
}

// Tick advances the hold timer by dt seconds.
func (in *Interactor) Tick(dt float64) {
	dt = core.NonNeg(dt)
	in.clock += dt
	if !in.attempting {
		return
	}

	if in.interrupted || !in.target.InRange(in.position()) {
		in.cancel()
		return
	}

	in.elapsed += dt
	in.bus.Publish(signals.RescueProgress{ID: in.target.ID, Progress: in.Progress()})
	if in.elapsed < in.holdSeconds {
		return
	}

	t := in.target
	in.idle()
	id, ok := t.Claim()
	if !ok {
		// Claimed elsewhere between start and completion
		in.bus.Publish(signals.RescueCanceled{ID: t.ID})
		return
	}
	if in.registry != nil {
		in.registry.Unregister(id)
	}
	in.passengers = append(in.passengers, id)
	in.bus.Publish(signals.RescuePickedUp{ID: id, Time: in.clock})
}

// StopAttempt cancels an active attempt immediately.
func (in *Interactor) StopAttempt() {
	if in.attempting {
		in.cancel()
	}
}

// DeliverPassengers empties the roster and returns how many were aboard.
func (in *Interactor) DeliverPassengers() int {
	n := len(in.passengers)
	in.passengers = nil
	return n
}

// Reset cancels any attempt and clears the roster and clock.
func (in *Interactor) Reset() {
	in.StopAttempt()
	in.passengers = nil
	in.clock = 0
}

func (in *Interactor) cancel() {
	id := in.target.ID
	in.idle()
	in.bus.Publish(signals.RescueCanceled{ID: id})
}

func (in *Interactor) idle() {
	in.attempting = false
	in.target = nil
	in.elapsed = 0
	in.interrupted = false
}

func (in *Interactor) position() core.Vec2 {
	if in.locate == nil {
		return core.Vec2{}
	}
	return in.locate()
}

// PassengerCount returns the roster size. A nil interactor has no passengers.
func (in *Interactor) PassengerCount() int {
	if in == nil {
		return 0
	}
	return len(in.passengers)
}

// Passengers returns a copy of the roster in pickup order.
func (in *Interactor) Passengers() []string {
	return append([]string(nil), in.passengers...)
}

func (in *Interactor) MaxPassengers() int { return in.maxPassengers }
func (in *Interactor) HasCapacity() bool  { return len(in.passengers) < in.maxPassengers }
func (in *Interactor) IsAttempting() bool { return in.attempting }

// Target returns the target of the current attempt, or nil.
func (in *Interactor) Target() *Target {
	return in.target
}

// Progress returns the hold completion in [0, 1].
func (in *Interactor) Progress() float64 {
	if !in.attempting {
		return 0
	}
	if in.holdSeconds <= 0 {
		return 1
	}
	return core.Clamp01(in.elapsed / in.holdSeconds)
}
