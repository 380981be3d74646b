package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name searched for in config directories.
const FileName = "darkseas.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.darkseas/configs/darkseas.yaml -> ./configs/darkseas.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the configuration compiled into the binary.
func Embedded() GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func parse(data []byte) (GameConfig, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the simulation cannot run with.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Boat.HullHP <= 0 {
		errs = append(errs, errors.New("boat.hull_hp must be positive"))
	}
	if c.EffectiveFuelCapacity() <= 0 {
		errs = append(errs, errors.New("boat.fuel_capacity or run.base_fuel_seconds must be positive"))
	}
	if c.Boat.Seats < 0 {
		errs = append(errs, errors.New("boat.seats must not be negative"))
	}
	if c.Run.PatchSize[0] <= 0 || c.Run.PatchSize[1] <= 0 {
		errs = append(errs, errors.New("run.patch_size must be positive"))
	}
	if c.Run.RescueTargetsMin < 0 || c.Run.RescueTargetsMax < c.Run.RescueTargetsMin {
		errs = append(errs, errors.New("run.rescue_targets_min/max out of order"))
	}
	for i := 1; i < len(c.Run.CollisionDamageCurve); i++ {
		if c.Run.CollisionDamageCurve[i].Time < c.Run.CollisionDamageCurve[i-1].Time {
			errs = append(errs, errors.New("run.collision_damage_curve keys must be sorted by time"))
			break
		}
	}
	seen := make(map[string]bool, len(c.Upgrades))
	for _, u := range c.Upgrades {
		switch {
		case u.ID == "":
			errs = append(errs, errors.New("upgrade with empty id"))
		case seen[u.ID]:
			errs = append(errs, fmt.Errorf("duplicate upgrade id %q", u.ID))
		}
		seen[u.ID] = true
		switch u.Type {
		case UpgradeLight, UpgradeHull, UpgradeFuel, UpgradeSeats:
		default:
			errs = append(errs, fmt.Errorf("upgrade %q: unknown type %q", u.ID, u.Type))
		}
		if u.LegacyCost < 0 {
			errs = append(errs, fmt.Errorf("upgrade %q: negative legacy_cost", u.ID))
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a config file in the user's home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".darkseas", "configs", filename)
}
