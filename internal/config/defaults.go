package config

import (
	_ "embed"
)

//go:embed defaults/darkseas.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// It mirrors defaults/darkseas.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Boat: DefaultBoatConfig(),
		Run:  DefaultRunConfig(),
		Dock: DockConfig{
			Radius:          6,
			CooldownSeconds: 1,
			DeliverOnEnter:  true,
		},
		Legacy: LegacyConfig{
			PointsPerPassenger: 1,
		},
		Upgrades: []UpgradeDef{
			{ID: "lamp-lens", Type: UpgradeLight, Value: 6, LegacyCost: 2, Stackable: true,
				Description: "Polished lens, the headlight reaches further."},
			{ID: "hull-plating", Type: UpgradeHull, Value: 25, LegacyCost: 3, Stackable: true,
				Description: "Riveted plating adds hull points."},
			{ID: "reserve-tank", Type: UpgradeFuel, Value: 60, LegacyCost: 3, Stackable: true,
				Description: "Extra tank adds a minute of fuel at idle."},
			{ID: "extra-seat", Type: UpgradeSeats, Value: 1, LegacyCost: 5, Stackable: false,
				Description: "Room for one more survivor aboard."},
		},
	}
}

// DefaultBoatConfig returns the default skiff.
func DefaultBoatConfig() BoatConfig {
	return BoatConfig{
		ID:             "skiff",
		MaxSpeed:       8,
		Acceleration:   2,
		TurnRate:       90,
		Drag:           1,
		AngularDrag:    5,
		HullHP:         100,
		FuelCapacity:   180,
		Seats:          2,
		HeadlightRange: 22,
		HeadlightAngle: 45,
		Radius:         1.5,
	}
}

// DefaultRunConfig returns the default expedition settings.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		BaseFuelSeconds:        180,
		FuelBaseRate:           1,
		FuelThrottleMultiplier: 1.5,
		RescueHoldSeconds:      1.5,
		RescueRadius:           3,
		RescueTargetsMin:       1,
		RescueTargetsMax:       2,
		MinIceCount:            20,
		IceBaseDamage:          10,
		CollisionDamageCurve: []CurveKey{
			{Time: 0, Value: 0},
			{Time: 10, Value: 1},
		},
		CollisionBounce:   0.3,
		PatchSize:         [2]float64{100, 100},
		MinHazardSpacing:  5,
		AmbientVisibility: 5,
		Drift: DriftConfig{
			WindDirection: 90,
			WindStrength:  0.15,
			NoiseScale:    0.1,
			NoiseSpeed:    0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				DriftMultiplier: 1.5,
			},
		},
	}
}
