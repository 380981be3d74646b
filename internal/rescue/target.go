// Package rescue implements survivors waiting on the ice, the spatial
// registry that finds them, and the hold-to-rescue interaction.
package rescue

import (
	"github.com/vovakirdan/dark-seas/internal/core"
)

// DefaultRadius is the interaction radius around a survivor in meters.
const DefaultRadius = 3.0

// Target is a survivor that can be pulled aboard exactly once.
type Target struct {
	ID     string
	Pos    core.Vec2
	Radius float64

	claimed bool
}

// NewTarget creates an unclaimed target. Non-positive radius uses DefaultRadius.
func NewTarget(id string, pos core.Vec2, radius float64) *Target {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Target{ID: id, Pos: pos, Radius: radius}
}

// InRange reports whether the target is unclaimed and within its radius of pos.
func (t *Target) InRange(pos core.Vec2) bool {
	if t == nil || t.claimed {
		return false
	}
	return t.Pos.Dist(pos) <= t.Radius
}

// Claim latches the target. Only the first call succeeds.
func (t *Target) Claim() (string, bool) {
	if t.claimed {
		return "", false
	}
	t.claimed = true
	return t.ID, true
}

// IsClaimed reports whether the target has been rescued.
func (t *Target) IsClaimed() bool {
	return t.claimed
}
