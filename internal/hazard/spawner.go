package hazard

import (
	"math/rand"

	"github.com/vovakirdan/dark-seas/internal/core"
)

// maxAttemptsPerFloe bounds rejection sampling so crowded patches terminate.
const maxAttemptsPerFloe = 30

// KeepOut is a circle the spawner must stay clear of.
type KeepOut struct {
	Center core.Vec2
	Radius float64
}

// Spawner scatters ice over a rectangular patch centered at the origin.
type Spawner struct {
	Count      int     // floes wanted
	Spacing    float64 // minimum distance between floes
	Width      float64 // patch extent along X
	Depth      float64 // patch extent along Z
	BaseDamage float64
}

// Spawn places up to Count floes using rng. Candidates closer than Spacing to
// an earlier floe, or inside a keep-out circle, are rejected and retried.
// Count is a target: once the attempt budget runs out the patch keeps what fit.
// Ids are assigned from 1 in spawn order.
func (s Spawner) Spawn(rng *rand.Rand, keepOut []KeepOut) []*Ice {
	if s.Count <= 0 {
		return nil
	}
	baseDamage := s.BaseDamage
	if baseDamage <= 0 {
		baseDamage = DefaultBaseDamage
	}

	ice := make([]*Ice, 0, s.Count)
	for attempts := 0; len(ice) < s.Count && attempts < s.Count*maxAttemptsPerFloe; attempts++ {
		pos := RandomPoint(rng, s.Width, s.Depth)
		size := randomSize(rng)
		if !Fits(pos, s.Spacing, ice, keepOut) {
			continue
		}
		ice = append(ice, NewIce(len(ice)+1, pos, Descriptor{
			Size:       size,
			BaseDamage: baseDamage,
			Mass:       float64(size),
		}))
	}
	return ice
}

// RandomPoint returns a uniform point in a width×depth rectangle centered at the origin.
func RandomPoint(rng *rand.Rand, width, depth float64) core.Vec2 {
	return core.V((rng.Float64()-0.5)*width, (rng.Float64()-0.5)*depth)
}

// randomSize draws a size class: 60% small, 30% medium, 10% large.
func randomSize(rng *rand.Rand) Size {
	r := rng.Float64()
	switch {
	case r < 0.6:
		return SizeSmall
	case r < 0.9:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Fits reports whether pos is at least spacing from every floe and outside every keep-out circle.
func Fits(pos core.Vec2, spacing float64, ice []*Ice, keepOut []KeepOut) bool {
	for _, k := range keepOut {
		if pos.Dist(k.Center) < k.Radius {
			return false
		}
	}
	for _, other := range ice {
		if pos.Dist(other.Pos) < spacing {
			return false
		}
	}
	return true
}
