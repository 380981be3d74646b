package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// ApplyPreset modifies the run configuration based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Run.Difficulty.Enabled = false
	} else {
		cfg.Run.Difficulty.Enabled = true
		cfg.Run.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the sea based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Run.MinIceCount = max(cfg.Run.MinIceCount*3/5, 1)
		cfg.Run.RescueHoldSeconds = 1.0
		cfg.Run.Drift.WindStrength *= 0.5
	case DifficultyHard:
		cfg.Run.MinIceCount = cfg.Run.MinIceCount * 8 / 5
		cfg.Run.RescueHoldSeconds = 2.0
		cfg.Run.FuelThrottleMultiplier *= 1.3
		cfg.Run.Drift.WindStrength *= 1.5
	}
}

// DifficultyManager scales the sea state as a run goes on.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on run time or rescues.
func (d *DifficultyManager) Level(elapsed float64, rescued int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "time":
		progress = elapsed / maxAt
	case "rescued":
		progress = float64(rescued) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DriftScale returns the multiplier applied to ice drift at the given level.
func (d *DifficultyManager) DriftScale(level float64) float64 {
	return 1.0 + level*d.cfg.Scaling.DriftMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
