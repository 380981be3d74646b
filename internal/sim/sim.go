// Package sim wires the Dark Seas components into one tick-driven simulation.
//
// A Sim owns a signal bus and every gameplay component subscribed to it. It
// is single threaded: the platform layer calls Step at a fixed rate and
// Render after each step.
package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dark-seas/internal/boat"
	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/harbor"
	"github.com/vovakirdan/dark-seas/internal/hazard"
	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/rescue"
	"github.com/vovakirdan/dark-seas/internal/run"
	"github.com/vovakirdan/dark-seas/internal/signals"
	"github.com/vovakirdan/dark-seas/internal/worldgen"
)

// Toast durations in seconds.
const (
	deliveryToastSeconds = 2.0
	pickupToastSeconds   = 1.5
	hitToastSeconds      = 1.0
)

// Debrief summarizes a finished run.
type Debrief struct {
	Seed     int64
	Result   string
	Rescued  int
	Earned   int
	Total    int
	Duration float64
}

// Failed reports whether the run ended with the boat lost.
func (d Debrief) Failed() bool {
	return d.Result == signals.ResultSank
}

type toast struct {
	text  string
	color core.Color
	left  float64
}

// Sim is one player's game: harbor, expeditions and debriefs.
type Sim struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	ledger  *legacy.Ledger

	bus     *signals.Bus
	subs    signals.Releaser
	machine *run.Machine

	// Boat
	boatCfg    config.BoatConfig
	controller *boat.Controller
	fuel       *boat.Fuel
	hull       *boat.Hull
	light      boat.Headlight

	// Sea
	patch      worldgen.Patch
	drift      *hazard.DriftField
	contacts   *hazard.ContactTracker
	registry   *rescue.Registry
	interactor *rescue.Interactor
	dock       *harbor.Dock
	difficulty *config.DifficultyManager

	// Run state
	seed      int64
	elapsed   float64
	pickedUp  int
	delivered int
	earned    int
	paused    bool
	debrief   Debrief
	toast     toast
	tick      int
}

// New creates a simulation in the harbor. A nil ledger keeps progress in
// memory; a nil logger discards output.
func New(cfg config.GameConfig, ledger *legacy.Ledger, runtime core.RuntimeConfig, logger *log.Logger) *Sim {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if ledger == nil {
		ledger = legacy.NewLedger(nil, legacy.DefaultProfile, cfg.Legacy, logger)
	}

	s := &Sim{
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		ledger:  ledger,
		bus:     signals.NewBus(),
		seed:    runtime.Seed,
	}
	s.machine = run.NewMachine(s.bus)

	s.boatCfg = cfg.Boat
	s.controller = boat.NewController(&s.boatCfg)
	s.fuel = boat.NewFuel(s.bus, s.fuelParams())
	s.hull = boat.NewHull(s.bus, s.boatCfg.HullHP)
	s.hull.OnSink(s.onSink)

	s.registry = rescue.NewRegistry()
	s.interactor = rescue.NewInteractor(s.bus, s.registry, s.controller.Position)
	s.contacts = hazard.NewContactTracker(s.bus, s.damageCurve(), s.hull)
	s.dock = harbor.NewDock(s.bus, s.ledger, core.Vec2{}, cfg.Dock)
	s.difficulty = config.NewDifficultyManager(cfg.Run.Difficulty)

	s.subs.Add(
		signals.Subscribe(s.bus, s.onRunStart),
		signals.Subscribe(s.bus, s.onRunEnd),
		signals.Subscribe(s.bus, s.onCollide),
		signals.Subscribe(s.bus, s.onPickedUp),
		signals.Subscribe(s.bus, s.onDelivered),
		signals.Subscribe(s.bus, s.onFuelEmpty),
	)
	return s
}

// Bus exposes the signal bus so outer layers can observe the run.
func (s *Sim) Bus() *signals.Bus { return s.bus }

// Ledger returns the profile ledger the sim awards points to.
func (s *Sim) Ledger() *legacy.Ledger { return s.ledger }

// Config returns the game configuration.
func (s *Sim) Config() config.GameConfig { return s.cfg }

// Phase returns the run phase.
func (s *Sim) Phase() run.Phase { return s.machine.Phase() }

// LastDebrief returns the summary of the most recent run.
func (s *Sim) LastDebrief() Debrief { return s.debrief }

// SetSeed sets the seed for the next run. Zero picks a random seed per run.
func (s *Sim) SetSeed(seed int64) { s.seed = seed }

// Resize updates the viewport size.
func (s *Sim) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
}

// StartRun sets sail from the harbor. Returns false outside the harbor.
func (s *Sim) StartRun() bool {
	seed := s.seed
	if seed == 0 {
		seed = worldgen.RandomSeed()
	}
	return s.machine.StartRun(seed)
}

// ReturnToHarbor leaves the debrief. Returns false outside the debrief.
func (s *Sim) ReturnToHarbor() bool {
	return s.machine.ReturnToHarbor()
}

// Step advances the simulation by one tick.
func (s *Sim) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if in.Has(core.ActionPause) && s.Phase() == run.PhaseExpedition {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	dt := s.runtime.Dt()
	s.toast.left -= dt

	switch s.Phase() {
	case run.PhaseHarbor:
		if in.Has(core.ActionConfirm) {
			s.StartRun()
		}
	case run.PhaseExpedition:
		s.stepExpedition(in, dt)
	case run.PhaseDebrief:
		if in.Has(core.ActionConfirm) {
			s.ReturnToHarbor()
		}
	}

	return core.StepResult{State: s.State()}
}

func (s *Sim) stepExpedition(in core.InputFrame, dt float64) {
	s.elapsed += dt

	// Engine
	s.fuel.SetThrottle(math.Abs(s.controller.Lever()))
	s.fuel.Tick(dt)
	throttle := in.Axis(core.ActionThrottleDown, core.ActionThrottleUp)
	steer := in.Axis(core.ActionSteerLeft, core.ActionSteerRight)
	s.controller.Update(dt, throttle, steer, !s.fuel.IsEmpty())
	s.controller.ClampTo(s.patch.Width/2, s.patch.Depth/2)

	// Ice drifts harder as the run goes on
	scale := s.difficulty.DriftScale(s.difficulty.Level(s.elapsed, s.pickedUp))
	for _, ice := range s.patch.Ice {
		ice.Vel = s.drift.At(ice.Pos, s.elapsed).Scale(scale)
		ice.Drift(dt)
	}

	// Collisions may sink the hull, which ends the run
	hits := s.contacts.Update(s.controller.Position(), s.boatVelocity(), s.boatCfg.Radius, s.patch.Ice)
	for _, hit := range hits {
		s.logger.Debug("ice strike", "size", hit.Ice.Size(), "speed", hit.RelativeSpeed, "damage", hit.Damage, "hp", s.hull.HP())
		if !s.hull.IsSinking() {
			s.showToast(fmt.Sprintf("Struck %s ice -%d hull", hit.Ice.Size(), hit.Damage), core.ColorDanger, hitToastSeconds)
		}
	}
	if s.Phase() != run.PhaseExpedition {
		return
	}

	// Rescue hold
	if in.Has(core.ActionRescue) {
		s.interactor.StartAttempt()
	} else {
		s.interactor.StopAttempt()
	}
	s.interactor.Tick(dt)

	// Harbor
	pos := s.controller.Position()
	s.dock.Update(s.elapsed, pos, s.interactor)

	switch {
	case in.Has(core.ActionConfirm) && s.dock.Contains(pos):
		s.dock.TryDeliver(s.elapsed, s.interactor)
		// Passengers still aboard means the dock is cooling down
		if s.interactor.PassengerCount() == 0 {
			s.machine.EndRun(signals.ResultReturned, s.delivered)
		}
	case in.Has(core.ActionAbandon):
		s.machine.EndRun(signals.ResultAbandoned, s.delivered)
	case s.fuel.IsEmpty() && s.controller.Stopped() && !s.dock.Contains(pos):
		s.machine.EndRun(signals.ResultStranded, s.delivered)
	}
}

func (s *Sim) boatVelocity() core.Vec2 {
	return core.FromHeading(s.controller.Heading()).Scale(s.controller.Speed())
}

// State returns the state reported to the platform.
func (s *Sim) State() core.GameState {
	return core.GameState{
		Score:    s.ledger.Points(),
		GameOver: s.Phase() == run.PhaseDebrief,
		Paused:   s.paused,
		Phase:    s.Phase().String(),
	}
}

// Close releases every bus subscription.
func (s *Sim) Close() {
	s.subs.Release()
	s.machine.Release()
}

// Status is a snapshot of the boat for HUDs.
type Status struct {
	Fuel          float64 // fraction
	Hull          float64 // fraction
	HullHP        int
	Passengers    int
	MaxPassengers int
	Throttle      float64 // lever in [-1, 1]
	Speed         float64
	HarborDist    float64
	HarborBearing float64 // compass degrees from the boat
	InHarbor      bool
	Rescuing      bool
	Progress      float64
	Elapsed       float64
	Delivered     int
	Earned        int
}

// Status returns the current boat status.
func (s *Sim) Status() Status {
	pos := s.controller.Position()
	toHarbor := s.patch.Harbor.Sub(pos)
	return Status{
		Fuel:          s.fuel.Fraction(),
		Hull:          s.hull.Fraction(),
		HullHP:        s.hull.HP(),
		Passengers:    s.interactor.PassengerCount(),
		MaxPassengers: s.interactor.MaxPassengers(),
		Throttle:      s.controller.Lever(),
		Speed:         s.controller.Speed(),
		HarborDist:    toHarbor.Len(),
		HarborBearing: toHarbor.Heading(),
		InHarbor:      s.dock.Contains(pos),
		Rescuing:      s.interactor.IsAttempting(),
		Progress:      s.interactor.Progress(),
		Elapsed:       s.elapsed,
		Delivered:     s.delivered,
		Earned:        s.earned,
	}
}

// Signal handlers

func (s *Sim) onRunStart(e signals.RunStart) {
	s.patch = worldgen.Generate(e.Seed, s.cfg.Run)
	s.drift = hazard.NewDriftField(s.cfg.Run.Drift, e.Seed)

	base := s.cfg.Boat
	base.FuelCapacity = s.cfg.EffectiveFuelCapacity()
	s.boatCfg = s.ledger.ApplyUpgrades(base, s.cfg.Upgrades)
	s.light = boat.Headlight{Range: s.boatCfg.HeadlightRange, Angle: s.boatCfg.HeadlightAngle}

	s.controller.Place(s.patch.Spawn, 0)
	s.fuel.Configure(s.fuelParams())
	s.hull.SetMaxHP(s.boatCfg.HullHP)
	s.contacts.SetCurve(s.damageCurve())
	s.contacts.Reset()

	s.registry.Clear()
	for _, t := range s.patch.Targets {
		s.registry.Register(t)
	}
	s.interactor.Reset()
	s.interactor.SetHoldSeconds(s.cfg.Run.RescueHoldSeconds)
	s.interactor.SetMaxPassengers(s.boatCfg.Seats)
	s.dock.MoveTo(s.patch.Harbor)

	s.elapsed = 0
	s.pickedUp = 0
	s.delivered = 0
	s.earned = 0
	s.paused = false
	s.toast = toast{}
	s.debrief = Debrief{}

	if len(s.patch.Ice) < s.cfg.Run.MinIceCount {
		s.logger.Warn("patch too crowded for ice target",
			"seed", e.Seed,
			"placed", len(s.patch.Ice),
			"target", s.cfg.Run.MinIceCount,
		)
	}

	s.logger.Info("run started",
		"profile", s.ledger.Profile(),
		"seed", e.Seed,
		"ice", len(s.patch.Ice),
		"survivors", len(s.patch.Targets),
	)
}

func (s *Sim) onRunEnd(signals.RunEnd) {
	// The machine subscribed first and has already recorded the outcome
	if s.machine.Phase() != run.PhaseDebrief {
		return
	}
	out := s.machine.LastOutcome()
	s.debrief = Debrief{
		Seed:     s.machine.Seed(),
		Result:   out.Result,
		Rescued:  out.Rescued,
		Earned:   s.earned,
		Total:    s.ledger.Points(),
		Duration: s.elapsed,
	}
	s.interactor.StopAttempt()
	s.paused = false
	s.logger.Info("run ended",
		"profile", s.ledger.Profile(),
		"result", out.Result,
		"rescued", out.Rescued,
		"earned", s.earned,
		"duration", fmt.Sprintf("%.1fs", s.elapsed),
	)
}

func (s *Sim) onSink() {
	s.controller.Disable()
	s.interactor.StopAttempt()
	s.showToast("The hull gives way", core.ColorDanger, deliveryToastSeconds)
}

func (s *Sim) onCollide(signals.CollideIce) {
	if s.hull.IsSinking() {
		return
	}
	s.controller.Bounce(s.cfg.Run.CollisionBounce)
	s.interactor.Interrupt()
}

func (s *Sim) onPickedUp(e signals.RescuePickedUp) {
	s.pickedUp++
	s.showToast(fmt.Sprintf("Survivor aboard %d/%d", s.interactor.PassengerCount(), s.interactor.MaxPassengers()),
		core.ColorSurvivor, pickupToastSeconds)
	s.logger.Debug("survivor picked up", "id", e.ID, "at", e.Time)
}

func (s *Sim) onDelivered(e signals.Delivered) {
	s.delivered += e.Count
	s.earned += e.Points
	s.showToast(fmt.Sprintf("Delivered %d -> +%d Legacy", e.Count, e.Points), core.ColorHarbor, deliveryToastSeconds)
}

func (s *Sim) onFuelEmpty(e signals.FuelEmpty) {
	s.showToast("Out of fuel", core.ColorDanger, deliveryToastSeconds)
	s.logger.Debug("fuel empty", "at", e.Time)
}

func (s *Sim) showToast(text string, c core.Color, seconds float64) {
	s.toast = toast{text: text, color: c, left: seconds}
}

func (s *Sim) fuelParams() boat.FuelParams {
	return boat.FuelParams{
		Capacity:           s.boatCfg.FuelCapacity,
		BaseRate:           s.cfg.Run.FuelBaseRate,
		ThrottleMultiplier: s.cfg.Run.FuelThrottleMultiplier,
	}
}

func (s *Sim) damageCurve() hazard.Curve {
	if c := hazard.NewKeyframeCurve(s.cfg.Run.CollisionDamageCurve); c != nil {
		return c
	}
	return hazard.DefaultCurve
}
