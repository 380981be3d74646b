package config

import (
	"math"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)

	if easy.Run.MinIceCount >= hard.Run.MinIceCount {
		t.Errorf("easy ice count %d should be below hard %d", easy.Run.MinIceCount, hard.Run.MinIceCount)
	}
	if easy.Run.RescueHoldSeconds >= hard.Run.RescueHoldSeconds {
		t.Error("easy rescue hold should be shorter than hard")
	}
	if !hard.Run.Difficulty.Enabled || hard.Run.Difficulty.InitialLevel != 0.6 {
		t.Errorf("hard difficulty = %+v", hard.Run.Difficulty)
	}

	fixed := DefaultGameConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Run.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{DriftMultiplier: 2},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.elapsed, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%f) = %f, expected %f", tc.elapsed, got, tc.want)
		}
	}

	if got := d.DriftScale(1.0); got != 3 {
		t.Errorf("DriftScale(1) = %f, expected 3", got)
	}

	cfg.Progression.Type = "rescued"
	cfg.Progression.MaxAt = 4
	d = NewDifficultyManager(cfg)
	if got := d.Level(1000, 2); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("rescued progression Level = %f, expected 0.6", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if got := d.Level(1000, 10); got != 0.2 {
		t.Errorf("disabled progression should stay at initial level, got %f", got)
	}
}
