package hazard

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/dark-seas/internal/core"
)

func TestSpawnerSpacingAndKeepOut(t *testing.T) {
	s := Spawner{Count: 20, Spacing: 5, Width: 100, Depth: 100, BaseDamage: 10}
	keepOut := []KeepOut{
		{Center: core.V(0, -45), Radius: 10},
		{Center: core.V(5, -40), Radius: 10},
	}

	ice := s.Spawn(rand.New(rand.NewSource(1)), keepOut)
	if len(ice) != 20 {
		t.Fatalf("expected 20 floes, got %d", len(ice))
	}

	for i, a := range ice {
		if a.ID != i+1 {
			t.Errorf("floe %d has id %d", i, a.ID)
		}
		if a.Pos.X < -50 || a.Pos.X > 50 || a.Pos.Z < -50 || a.Pos.Z > 50 {
			t.Errorf("floe %d outside patch: %v", a.ID, a.Pos)
		}
		for _, k := range keepOut {
			if a.Pos.Dist(k.Center) < k.Radius {
				t.Errorf("floe %d inside keep-out %v", a.ID, k.Center)
			}
		}
		for _, b := range ice[i+1:] {
			if a.Pos.Dist(b.Pos) < 5 {
				t.Errorf("floes %d and %d closer than spacing", a.ID, b.ID)
			}
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	s := Spawner{Count: 15, Spacing: 5, Width: 100, Depth: 100}
	a := s.Spawn(rand.New(rand.NewSource(99)), nil)
	b := s.Spawn(rand.New(rand.NewSource(99)), nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should spawn identical ice")
	}
}

func TestSpawnerSizeDistribution(t *testing.T) {
	s := Spawner{Count: 2000, Spacing: 0, Width: 1000, Depth: 1000}
	ice := s.Spawn(rand.New(rand.NewSource(5)), nil)

	counts := map[Size]int{}
	for _, floe := range ice {
		counts[floe.Size()]++
		if floe.Descriptor().BaseDamage != DefaultBaseDamage {
			t.Fatalf("base damage = %f, expected default", floe.Descriptor().BaseDamage)
		}
		if floe.Descriptor().Mass != float64(floe.Size()) {
			t.Fatalf("mass = %f, expected %d", floe.Descriptor().Mass, floe.Size())
		}
	}
	small := float64(counts[SizeSmall]) / float64(len(ice))
	large := float64(counts[SizeLarge]) / float64(len(ice))
	if small < 0.55 || small > 0.65 {
		t.Errorf("small share %f, expected about 0.6", small)
	}
	if large < 0.07 || large > 0.13 {
		t.Errorf("large share %f, expected about 0.1", large)
	}
}

func TestSpawnerCrowdedTerminates(t *testing.T) {
	s := Spawner{Count: 500, Spacing: 10, Width: 20, Depth: 20}
	ice := s.Spawn(rand.New(rand.NewSource(3)), nil)
	if len(ice) == 0 || len(ice) >= 500 {
		t.Errorf("crowded patch should place some but not all floes, got %d", len(ice))
	}
}
