package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	embedded := Embedded()
	hardcoded := DefaultGameConfig()

	if !reflect.DeepEqual(embedded, hardcoded) {
		t.Errorf("embedded defaults differ from DefaultGameConfig():\n got %+v\nwant %+v", embedded, hardcoded)
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("boat:\n  hull_hp: 250\nrun:\n  min_ice_count: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Boat.HullHP != 250 {
		t.Errorf("HullHP = %d, expected 250", cfg.Boat.HullHP)
	}
	if cfg.Run.MinIceCount != 5 {
		t.Errorf("MinIceCount = %d, expected 5", cfg.Run.MinIceCount)
	}
	// Untouched keys keep their defaults
	if cfg.Boat.MaxSpeed != 8 {
		t.Errorf("MaxSpeed = %f, expected default 8", cfg.Boat.MaxSpeed)
	}
	if len(cfg.Upgrades) != 4 {
		t.Errorf("expected 4 default upgrades, got %d", len(cfg.Upgrades))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("boat: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("boat:\n  hull_hp: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load of a config with zero hull HP should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"negative seats", func(c *GameConfig) { c.Boat.Seats = -1 }},
		{"no fuel", func(c *GameConfig) { c.Boat.FuelCapacity = 0; c.Run.BaseFuelSeconds = 0 }},
		{"empty patch", func(c *GameConfig) { c.Run.PatchSize = [2]float64{0, 100} }},
		{"targets out of order", func(c *GameConfig) { c.Run.RescueTargetsMin = 3; c.Run.RescueTargetsMax = 1 }},
		{"unsorted curve", func(c *GameConfig) {
			c.Run.CollisionDamageCurve = []CurveKey{{Time: 5, Value: 1}, {Time: 1, Value: 0}}
		}},
		{"duplicate upgrade", func(c *GameConfig) { c.Upgrades = append(c.Upgrades, c.Upgrades[0]) }},
		{"unknown upgrade type", func(c *GameConfig) { c.Upgrades[0].Type = "Sonar" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestEffectiveFuelCapacity(t *testing.T) {
	cfg := DefaultGameConfig()
	if got := cfg.EffectiveFuelCapacity(); got != 180 {
		t.Errorf("EffectiveFuelCapacity() = %f, expected 180", got)
	}

	cfg.Boat.FuelCapacity = 0
	cfg.Run.BaseFuelSeconds = 120
	cfg.Run.FuelBaseRate = 0.5
	if got := cfg.EffectiveFuelCapacity(); got != 60 {
		t.Errorf("EffectiveFuelCapacity() fallback = %f, expected 60", got)
	}
}

func TestUpgradeLookup(t *testing.T) {
	cfg := DefaultGameConfig()

	u, ok := cfg.Upgrade("extra-seat")
	if !ok {
		t.Fatal("extra-seat should be in the default catalog")
	}
	if u.Type != UpgradeSeats || u.Stackable {
		t.Errorf("extra-seat = %+v, expected non-stackable Seats upgrade", u)
	}

	if _, ok := cfg.Upgrade("sonar"); ok {
		t.Error("unknown upgrade id should not be found")
	}
}
