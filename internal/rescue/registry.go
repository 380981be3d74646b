package rescue

import (
	"github.com/vovakirdan/dark-seas/internal/core"
)

// Registry holds the unclaimed targets of the current patch in registration order.
type Registry struct {
	targets []*Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a target. Registering the same id twice is a no-op.
func (r *Registry) Register(t *Target) {
	if t == nil || r.index(t.ID) >= 0 {
		return
	}
	r.targets = append(r.targets, t)
}

// Unregister removes the target with id, keeping the order of the rest.
func (r *Registry) Unregister(id string) {
	i := r.index(id)
	if i < 0 {
		return
	}
	r.targets = append(r.targets[:i:i], r.targets[i+1:]...)
}

// Clear removes every target.
func (r *Registry) Clear() {
	r.targets = nil
}

// Nearest returns the closest target in range of pos, or nil.
// Equal distances resolve to the earlier registration.
func (r *Registry) Nearest(pos core.Vec2) *Target {
	var best *Target
	bestDist := 0.0
	for _, t := range r.targets {
		if !t.InRange(pos) {
			continue
		}
		d := t.Pos.Dist(pos)
		if best == nil || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// Targets returns the registered targets in registration order.
func (r *Registry) Targets() []*Target {
	return append([]*Target(nil), r.targets...)
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

func (r *Registry) index(id string) int {
	for i, t := range r.targets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
