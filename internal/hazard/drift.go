package hazard

import (
	"math"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
)

// DriftField is a wind vector plus smooth 2D noise, sampled per position and time.
type DriftField struct {
	wind       core.Vec2
	strength   float64
	noiseScale float64
	noiseSpeed float64
	seed       uint32
}

// NewDriftField creates a field from config. The seed decorrelates patches.
func NewDriftField(cfg config.DriftConfig, seed int64) *DriftField {
	return &DriftField{
		wind:       core.FromHeading(cfg.WindDirection),
		strength:   core.NonNeg(cfg.WindStrength),
		noiseScale: cfg.NoiseScale,
		noiseSpeed: cfg.NoiseSpeed,
		seed:       uint32(seed) ^ uint32(seed>>32),
	}
}

// SetWind changes the wind strength and compass direction.
func (d *DriftField) SetWind(strength, direction float64) {
	d.strength = core.NonNeg(strength)
	d.wind = core.FromHeading(direction)
}

// At returns the drift velocity at pos and time t (seconds), in m/s.
func (d *DriftField) At(pos core.Vec2, t float64) core.Vec2 {
	tt := t * d.noiseSpeed
	nx := d.noise(pos.X*d.noiseScale+tt, pos.Z*d.noiseScale)
	nz := d.noise(pos.X*d.noiseScale+100, pos.Z*d.noiseScale+tt)

	noise := core.V(nx-0.5, nz-0.5).Scale(2)
	return d.wind.Add(noise).Scale(d.strength)
}

// noise is seeded value noise in [0, 1] with smoothstep interpolation.
func (d *DriftField) noise(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int32(x0), int32(y0)

	v00 := d.lattice(ix, iy)
	v10 := d.lattice(ix+1, iy)
	v01 := d.lattice(ix, iy+1)
	v11 := d.lattice(ix+1, iy+1)

	sx := fx * fx * (3 - 2*fx)
	sy := fy * fy * (3 - 2*fy)
	top := v00 + (v10-v00)*sx
	bottom := v01 + (v11-v01)*sx
	return top + (bottom-top)*sy
}

// lattice hashes a grid point to [0, 1].
func (d *DriftField) lattice(x, y int32) float64 {
	h := d.seed
	h ^= uint32(x) * 0x27d4eb2d
	h = (h ^ (h >> 15)) * 0x85ebca6b
	h ^= uint32(y) * 0x165667b1
	h = (h ^ (h >> 13)) * 0xc2b2ae35
	h ^= h >> 16
	return float64(h) / float64(math.MaxUint32)
}
