// Package config provides YAML-based game configuration loading and
// difficulty presets for Dark Seas.
package config

// GameConfig is the complete game content configuration.
type GameConfig struct {
	Boat     BoatConfig   `yaml:"boat"`
	Run      RunConfig    `yaml:"run"`
	Dock     DockConfig   `yaml:"dock"`
	Legacy   LegacyConfig `yaml:"legacy"`
	Upgrades []UpgradeDef `yaml:"upgrades"`
}

// BoatConfig defines boat properties and capabilities.
type BoatConfig struct {
	ID             string  `yaml:"id"`
	MaxSpeed       float64 `yaml:"max_speed"`    // m/s
	Acceleration   float64 `yaml:"acceleration"` // m/s² at full throttle
	TurnRate       float64 `yaml:"turn_rate"`    // degrees per second at full rudder
	Drag           float64 `yaml:"drag"`         // speed decay per second
	AngularDrag    float64 `yaml:"angular_drag"` // rudder return per second
	HullHP         int     `yaml:"hull_hp"`
	FuelCapacity   float64 `yaml:"fuel_capacity"`   // seconds at idle; <= 0 falls back to run.base_fuel_seconds
	Seats          int     `yaml:"seats"`           // passenger capacity
	HeadlightRange float64 `yaml:"headlight_range"` // meters
	HeadlightAngle float64 `yaml:"headlight_angle"` // full cone angle in degrees
	Radius         float64 `yaml:"radius"`          // hull collision radius in meters
}

// CurveKey is one keyframe of a piecewise-linear curve.
type CurveKey struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// RunConfig contains configuration for expedition runs.
type RunConfig struct {
	BaseFuelSeconds        float64          `yaml:"base_fuel_seconds"`
	FuelBaseRate           float64          `yaml:"fuel_base_rate"`
	FuelThrottleMultiplier float64          `yaml:"fuel_throttle_multiplier"`
	RescueHoldSeconds      float64          `yaml:"rescue_hold_seconds"`
	RescueRadius           float64          `yaml:"rescue_radius"`
	RescueTargetsMin       int              `yaml:"rescue_targets_min"`
	RescueTargetsMax       int              `yaml:"rescue_targets_max"`
	MinIceCount            int              `yaml:"min_ice_count"` // target; a crowded patch may place fewer
	IceBaseDamage          float64          `yaml:"ice_base_damage"`
	CollisionDamageCurve   []CurveKey       `yaml:"collision_damage_curve"`
	CollisionBounce        float64          `yaml:"collision_bounce"` // fraction of speed kept (reversed) after a hit
	PatchSize              [2]float64       `yaml:"patch_size"`       // width (x), depth (z) in meters
	MinHazardSpacing       float64          `yaml:"min_hazard_spacing"`
	AmbientVisibility      float64          `yaml:"ambient_visibility"` // meters visible around the boat without the headlight
	Drift                  DriftConfig      `yaml:"drift"`
	Difficulty             DifficultyConfig `yaml:"difficulty"`
}

// DriftConfig defines the wind and noise field that moves ice.
type DriftConfig struct {
	WindDirection float64 `yaml:"wind_direction"` // compass degrees the wind blows toward
	WindStrength  float64 `yaml:"wind_strength"`  // m/s
	NoiseScale    float64 `yaml:"noise_scale"`    // spatial frequency of the noise
	NoiseSpeed    float64 `yaml:"noise_speed"`    // how fast the noise evolves
}

// DifficultyConfig defines how the sea gets rougher over the course of a run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = calm, 1.0 = storm
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time", "rescued" or "none"
	MaxAt int    `yaml:"max_at"` // Seconds/rescues at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DriftMultiplier float64 `yaml:"drift_multiplier"` // Multiplier added to drift at max difficulty
}

// DockConfig defines the harbor delivery gate.
type DockConfig struct {
	Radius          float64 `yaml:"radius"`
	CooldownSeconds float64 `yaml:"cooldown_seconds"`
	DeliverOnEnter  bool    `yaml:"deliver_on_enter"`
}

// LegacyConfig defines how rescues convert to Legacy Points.
type LegacyConfig struct {
	PointsPerPassenger int `yaml:"points_per_passenger"`
}

// UpgradeType is the boat property an upgrade improves.
type UpgradeType string

const (
	UpgradeLight UpgradeType = "Light"
	UpgradeHull  UpgradeType = "Hull"
	UpgradeFuel  UpgradeType = "Fuel"
	UpgradeSeats UpgradeType = "Seats"
)

// UpgradeDef defines an upgrade that can be purchased with Legacy Points.
type UpgradeDef struct {
	ID          string      `yaml:"id"`
	Type        UpgradeType `yaml:"type"`
	Value       float64     `yaml:"value"` // flat bonus, interpreted by type
	LegacyCost  int         `yaml:"legacy_cost"`
	Stackable   bool        `yaml:"stackable"`
	Description string      `yaml:"description"`
}

// Upgrade returns the catalog entry with the given id.
func (c GameConfig) Upgrade(id string) (UpgradeDef, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeDef{}, false
}

// EffectiveFuelCapacity returns the boat's fuel capacity, falling back to
// the run's base fuel seconds at the base burn rate.
func (c GameConfig) EffectiveFuelCapacity() float64 {
	if c.Boat.FuelCapacity > 0 {
		return c.Boat.FuelCapacity
	}
	rate := c.Run.FuelBaseRate
	if rate <= 0 {
		rate = 1
	}
	return c.Run.BaseFuelSeconds * rate
}
