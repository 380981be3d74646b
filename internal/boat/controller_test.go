package boat

import (
	"math"
	"testing"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
)

const dt = 1.0 / 30

func runFor(c *Controller, seconds, throttle, steer float64, engineOn bool) {
	for i := 0; i < int(seconds/dt); i++ {
		c.Update(dt, throttle, steer, engineOn)
	}
}

func TestControllerAccelerates(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 0)

	runFor(c, 10, 1, 0, true)

	if c.Lever() != 1 {
		t.Errorf("Lever() = %f, expected 1 after holding throttle", c.Lever())
	}
	if c.Speed() <= 0 || c.Speed() > cfg.MaxSpeed {
		t.Errorf("Speed() = %f, expected in (0, %f]", c.Speed(), cfg.MaxSpeed)
	}
	if c.Position().Z <= 0 || math.Abs(c.Position().X) > 1e-6 {
		t.Errorf("heading north should move along +Z, got %v", c.Position())
	}
}

func TestControllerReverseCapped(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 0)

	runFor(c, 20, -1, 0, true)

	if c.Speed() < -cfg.MaxSpeed*reverseFraction-1e-9 {
		t.Errorf("Speed() = %f, astern speed should be capped at %f", c.Speed(), -cfg.MaxSpeed*reverseFraction)
	}
	if c.Speed() >= 0 {
		t.Errorf("Speed() = %f, expected astern", c.Speed())
	}
}

func TestControllerEngineOffCoasts(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 90)

	runFor(c, 5, 1, 0, true)
	moving := c.Speed()

	runFor(c, 1, 0, 0, false)
	if c.Speed() >= moving {
		t.Errorf("dry engine should lose speed: %f -> %f", moving, c.Speed())
	}

	runFor(c, 30, 0, 0, false)
	if !c.Stopped() {
		t.Errorf("boat should coast to a stop, speed %f", c.Speed())
	}
}

func TestControllerSteering(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 0)

	runFor(c, 1, 0, 1, true)
	if c.Heading() <= 0 || c.Heading() >= 180 {
		t.Errorf("steering right should turn clockwise, heading %f", c.Heading())
	}

	c.Place(core.V(0, 0), 0)
	runFor(c, 1, 0, -1, true)
	if c.Heading() <= 180 {
		t.Errorf("steering left should turn counter-clockwise, heading %f", c.Heading())
	}
}

func TestControllerDisable(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 0)
	runFor(c, 5, 1, 0, true)

	c.Disable()
	heading := c.Heading()
	runFor(c, 1, 1, 1, true)

	if c.Lever() != 0 {
		t.Errorf("disabled controller should ignore throttle, lever %f", c.Lever())
	}
	if c.Heading() != heading {
		t.Errorf("disabled controller should ignore steering: %f -> %f", heading, c.Heading())
	}
	if !c.IsDisabled() {
		t.Error("IsDisabled() should be true")
	}

	c.Place(core.V(1, 1), 0)
	if c.IsDisabled() {
		t.Error("Place should re-enable the controller")
	}
}

func TestControllerNilConfig(t *testing.T) {
	c := NewController(nil)
	c.Place(core.V(3, 4), 0)
	c.Update(1, 1, 1, true)
	if c.Position() != core.V(3, 4) || c.Speed() != 0 {
		t.Error("controller without config should not move")
	}
}

func TestControllerBounceAndClamp(t *testing.T) {
	cfg := config.DefaultBoatConfig()
	c := NewController(&cfg)
	c.Place(core.V(0, 0), 0)
	runFor(c, 5, 1, 0, true)
	speed := c.Speed()

	c.Bounce(0.3)
	if math.Abs(c.Speed()+0.3*speed) > 1e-9 {
		t.Errorf("Bounce(0.3) speed = %f, expected %f", c.Speed(), -0.3*speed)
	}

	c.Place(core.V(80, -5), 0)
	c.ClampTo(50, 50)
	if c.Position() != core.V(50, -5) {
		t.Errorf("ClampTo() = %v, expected (50, -5)", c.Position())
	}
}

func TestHeadlightCone(t *testing.T) {
	h := Headlight{Range: 20, Angle: 90}
	origin := core.V(0, 0)

	tests := []struct {
		name string
		p    core.Vec2
		want bool
	}{
		{"dead ahead", core.V(0, 10), true},
		{"inside cone edge", core.V(7, 10), true},
		{"outside cone", core.V(10, 1), false},
		{"behind", core.V(0, -5), false},
		{"beyond range", core.V(0, 25), false},
		{"at origin", origin, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Illuminates(origin, 0, tc.p); got != tc.want {
				t.Errorf("Illuminates(%v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}
