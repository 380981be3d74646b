package boat

import (
	"math"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
)

const (
	// leverRate is how far the throttle lever moves per second of input.
	leverRate = 1.0
	// reverseFraction caps astern speed as a fraction of max speed.
	reverseFraction = 0.5
	// minSteerage is the share of turn rate available at standstill.
	minSteerage = 0.3
)

// Controller integrates boat movement on the sea plane.
// Heading is in compass degrees, speed in m/s (negative is astern).
type Controller struct {
	cfg *config.BoatConfig

	pos      core.Vec2
	heading  float64
	speed    float64
	lever    float64
	rudder   float64
	disabled bool
}

// NewController creates a controller. A nil config leaves the boat adrift:
// Update skips movement entirely.
func NewController(cfg *config.BoatConfig) *Controller {
	return &Controller{cfg: cfg}
}

// SetConfig replaces the boat configuration (upgrades are applied per run).
func (c *Controller) SetConfig(cfg *config.BoatConfig) {
	c.cfg = cfg
}

// Place puts the boat at pos with the given heading, stopped and enabled.
func (c *Controller) Place(pos core.Vec2, heading float64) {
	c.pos = pos
	c.heading = core.WrapDegrees(heading)
	c.speed = 0
	c.lever = 0
	c.rudder = 0
	c.disabled = false
}

// Disable cuts forward movement control. The boat coasts to a stop.
func (c *Controller) Disable() {
	c.disabled = true
	c.lever = 0
}

// Update advances the boat by dt seconds.
// throttle and steer are input axes in [-1, 1]; engineOn is false when the tank is dry.
func (c *Controller) Update(dt, throttle, steer float64, engineOn bool) {
	if c.cfg == nil {
		return
	}
	dt = core.NonNeg(dt)

	if !c.disabled {
		c.lever = core.ClampF(c.lever+core.ClampF(throttle, -1, 1)*leverRate*dt, -1, 1)
		c.rudder += (core.ClampF(steer, -1, 1) - c.rudder) * math.Min(1, c.cfg.AngularDrag*dt)
	} else {
		c.rudder = 0
	}

	steerage := minSteerage + (1-minSteerage)*core.Clamp01(math.Abs(c.speed)/c.maxSpeed())
	c.heading = core.WrapDegrees(c.heading + c.rudder*c.cfg.TurnRate*steerage*dt)

	target, rate := 0.0, c.cfg.Drag
	if engineOn && !c.disabled && c.lever != 0 {
		target = c.lever * c.maxSpeed()
		if target < 0 {
			target = math.Max(target, -c.maxSpeed()*reverseFraction)
		}
		// Accelerate toward the lever target, coast down when it is below current speed
		if math.Abs(target) > math.Abs(c.speed) || target*c.speed < 0 {
			rate = c.cfg.Acceleration
		}
	}
	c.speed = approach(c.speed, target, rate*dt)

	c.pos = c.pos.Add(core.FromHeading(c.heading).Scale(c.speed * dt))
}

// Bounce reverses the boat's speed, keeping the given fraction.
func (c *Controller) Bounce(keep float64) {
	c.speed = -c.speed * core.Clamp01(keep)
}

// ClampTo keeps the boat inside the half extents around the origin,
// stopping it against the edge.
func (c *Controller) ClampTo(halfW, halfD float64) {
	x := core.ClampF(c.pos.X, -halfW, halfW)
	z := core.ClampF(c.pos.Z, -halfD, halfD)
	if x != c.pos.X || z != c.pos.Z {
		c.speed = 0
	}
	c.pos = core.V(x, z)
}

func (c *Controller) maxSpeed() float64 {
	if c.cfg.MaxSpeed <= 0 {
		return 1
	}
	return c.cfg.MaxSpeed
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

func (c *Controller) Position() core.Vec2 { return c.pos }
func (c *Controller) Heading() float64    { return c.heading }
func (c *Controller) Speed() float64      { return c.speed }
func (c *Controller) Lever() float64      { return c.lever }
func (c *Controller) IsDisabled() bool    { return c.disabled }

// Stopped reports whether the boat is effectively stationary.
func (c *Controller) Stopped() bool {
	return math.Abs(c.speed) < 0.05
}
