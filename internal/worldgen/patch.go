// Package worldgen builds the sea patch for a run from a seed.
package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/hazard"
	"github.com/vovakirdan/dark-seas/internal/rescue"
)

const (
	// harborInset is how far north of the southern edge the harbor sits.
	harborInset = 8.0
	// spawnOffset puts the boat just outside the default dock radius.
	spawnOffset = 8.0

	maxAttemptsPerTarget = 50
)

// Patch is one generated stretch of sea.
type Patch struct {
	Seed    int64
	Width   float64
	Depth   float64
	Harbor  core.Vec2
	Spawn   core.Vec2
	Ice     []*hazard.Ice
	Targets []*rescue.Target
}

// Generate lays out a patch. The same seed and config always give the same patch.
func Generate(seed int64, cfg config.RunConfig) Patch {
	rng := rand.New(rand.NewSource(seed))

	width, depth := cfg.PatchSize[0], cfg.PatchSize[1]
	if width <= 0 {
		width = 100
	}
	if depth <= 0 {
		depth = 100
	}
	spacing := cfg.MinHazardSpacing
	if spacing <= 0 {
		spacing = 5
	}

	harbor := core.V(0, -depth/2+harborInset)
	spawn := harbor.Add(core.V(0, spawnOffset))
	keepOut := []hazard.KeepOut{
		{Center: spawn, Radius: spacing * 2},
		{Center: harbor, Radius: spacing * 2},
	}

	ice := hazard.Spawner{
		Count:      cfg.MinIceCount,
		Spacing:    spacing,
		Width:      width,
		Depth:      depth,
		BaseDamage: cfg.IceBaseDamage,
	}.Spawn(rng, keepOut)

	return Patch{
		Seed:    seed,
		Width:   width,
		Depth:   depth,
		Harbor:  harbor,
		Spawn:   spawn,
		Ice:     ice,
		Targets: placeTargets(rng, cfg, width, depth, spacing, ice, keepOut),
	}
}

func placeTargets(rng *rand.Rand, cfg config.RunConfig, width, depth, spacing float64, ice []*hazard.Ice, keepOut []hazard.KeepOut) []*rescue.Target {
	lo, hi := cfg.RescueTargetsMin, cfg.RescueTargetsMax
	if lo <= 0 {
		lo = 1
	}
	if hi < lo {
		hi = max(lo, 2)
	}
	count := lo + rng.Intn(hi-lo+1)

	blocked := append([]hazard.KeepOut(nil), keepOut...)
	targets := make([]*rescue.Target, 0, count)
	for attempts := 0; len(targets) < count && attempts < count*maxAttemptsPerTarget; attempts++ {
		pos := hazard.RandomPoint(rng, width, depth)
		if !hazard.Fits(pos, spacing, ice, blocked) {
			continue
		}
		targets = append(targets, rescue.NewTarget(targetID(rng, len(targets)), pos, cfg.RescueRadius))
		blocked = append(blocked, hazard.KeepOut{Center: pos, Radius: spacing})
	}
	return targets
}

func targetID(rng *rand.Rand, n int) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return fmt.Sprintf("survivor-%d", n+1)
	}
	return id.String()
}
