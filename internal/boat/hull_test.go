package boat

import (
	"testing"

	"github.com/vovakirdan/dark-seas/internal/signals"
)

func TestHullDamage(t *testing.T) {
	tests := []struct {
		name    string
		hits    []int
		wantHP  int
		sinking bool
	}{
		{"single hit", []int{30}, 70, false},
		{"negative ignored", []int{-20}, 100, false},
		{"exact kill", []int{60, 40}, 0, true},
		{"overkill floors at zero", []int{250}, 0, true},
		{"damage after sinking ignored", []int{100, 10}, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHull(nil, 100)
			for _, d := range tc.hits {
				h.ApplyDamage(d)
			}
			if h.HP() != tc.wantHP {
				t.Errorf("HP() = %d, expected %d", h.HP(), tc.wantHP)
			}
			if h.IsSinking() != tc.sinking {
				t.Errorf("IsSinking() = %v, expected %v", h.IsSinking(), tc.sinking)
			}
		})
	}
}

func TestHullSinkLatch(t *testing.T) {
	bus := signals.NewBus()
	var ends []signals.RunEnd
	signals.Subscribe(bus, func(e signals.RunEnd) { ends = append(ends, e) })

	h := NewHull(bus, 50)
	disabled := 0
	h.OnSink(func() { disabled++ })

	h.ApplyDamage(50)
	h.ApplyDamage(50)

	if disabled != 1 {
		t.Errorf("sink callback called %d times, expected 1", disabled)
	}
	if len(ends) != 1 {
		t.Fatalf("expected 1 RunEnd, got %d", len(ends))
	}
	if ends[0].Result != signals.ResultSank || ends[0].RescuedCount != 0 {
		t.Errorf("RunEnd = %+v, expected Sank with 0 rescued", ends[0])
	}

	h.Repair()
	if h.IsSinking() || h.HP() != 50 {
		t.Errorf("Repair() left hp=%d sinking=%v", h.HP(), h.IsSinking())
	}
	h.ApplyDamage(60)
	if len(ends) != 2 {
		t.Errorf("hull should sink again after Repair, got %d RunEnd", len(ends))
	}
}

func TestHullSetMaxHP(t *testing.T) {
	h := NewHull(nil, 0)
	if h.MaxHP() != DefaultHullHP {
		t.Errorf("MaxHP() = %d, expected default %d", h.MaxHP(), DefaultHullHP)
	}

	h.ApplyDamage(40)
	h.SetMaxHP(150)
	if h.HP() != 150 || h.Fraction() != 1 {
		t.Errorf("SetMaxHP should repair to the new max, got hp=%d", h.HP())
	}
}
