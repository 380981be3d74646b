// Package hazard implements drifting ice: damage by impact speed, contact
// tracking against the hull, the drift field and seeded spawning.
package hazard

import (
	"math"

	"github.com/vovakirdan/dark-seas/internal/core"
)

// Size is the ice floe size class.
type Size int

const (
	SizeSmall  Size = 1
	SizeMedium Size = 2
	SizeLarge  Size = 3
)

// String returns a human-readable size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Radius returns the collision radius in meters for the size class.
func (s Size) Radius() float64 {
	switch s {
	case SizeMedium:
		return 1.8
	case SizeLarge:
		return 2.6
	default:
		return 1.0
	}
}

// DefaultBaseDamage is the per-size damage at full curve.
const DefaultBaseDamage = 10

// Descriptor is immutable after spawn.
type Descriptor struct {
	Size       Size
	BaseDamage float64
	Mass       float64
}

// Ice is a single floe on the patch.
type Ice struct {
	ID  int
	Pos core.Vec2
	Vel core.Vec2 // current drift velocity

	desc Descriptor
}

// NewIce creates a floe. Size is clamped to the known classes.
func NewIce(id int, pos core.Vec2, desc Descriptor) *Ice {
	desc.Size = Size(core.Clamp(int(desc.Size), int(SizeSmall), int(SizeLarge)))
	desc.BaseDamage = core.NonNeg(desc.BaseDamage)
	return &Ice{ID: id, Pos: pos, desc: desc}
}

func (i *Ice) Descriptor() Descriptor { return i.desc }
func (i *Ice) Size() Size             { return i.desc.Size }
func (i *Ice) Radius() float64        { return i.desc.Size.Radius() }

// ComputeDamage returns round(baseDamage × size × clamp01(curve(relativeSpeed))).
// A nil curve uses DefaultCurve.
func (i *Ice) ComputeDamage(relativeSpeed float64, curve Curve) int {
	if curve == nil {
		curve = DefaultCurve
	}
	f := core.Clamp01(curve.Evaluate(relativeSpeed))
	return int(math.Round(i.desc.BaseDamage * float64(i.desc.Size) * f))
}

// Drift moves the floe along its velocity.
func (i *Ice) Drift(dt float64) {
	i.Pos = i.Pos.Add(i.Vel.Scale(dt))
}
