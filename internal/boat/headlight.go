package boat

import (
	"math"

	"github.com/vovakirdan/dark-seas/internal/core"
)

// Headlight is the bow spotlight. It lights a cone ahead of the boat.
type Headlight struct {
	Range float64 // meters
	Angle float64 // full cone angle in degrees
}

// Illuminates reports whether p is lit by a headlight mounted at origin facing heading.
func (h Headlight) Illuminates(origin core.Vec2, heading float64, p core.Vec2) bool {
	d := p.Sub(origin)
	dist := d.Len()
	if dist > h.Range {
		return false
	}
	if dist == 0 {
		return true
	}
	return math.Abs(core.AngleDelta(heading, d.Heading())) <= h.Angle/2
}
