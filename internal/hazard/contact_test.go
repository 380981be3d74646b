package hazard

import (
	"testing"

	"github.com/vovakirdan/dark-seas/internal/boat"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/signals"
)

type recordingHull struct {
	hits []int
}

func (r *recordingHull) ApplyDamage(amount int) { r.hits = append(r.hits, amount) }

func TestContactDamagesOncePerContact(t *testing.T) {
	bus := signals.NewBus()
	var collisions []signals.CollideIce
	signals.Subscribe(bus, func(e signals.CollideIce) { collisions = append(collisions, e) })

	hull := &recordingHull{}
	tracker := NewContactTracker(bus, nil, hull)
	floe := NewIce(7, core.V(0, 3), Descriptor{Size: SizeMedium, BaseDamage: 10})
	ice := []*Ice{floe}
	vel := core.V(0, 5)

	// Approach: no contact at distance 10
	if hits := tracker.Update(core.V(0, -7), vel, 1.5, ice); len(hits) != 0 {
		t.Fatalf("unexpected hits at distance: %+v", hits)
	}

	// Contact begins
	hits := tracker.Update(core.V(0, 0), vel, 1.5, ice)
	if len(hits) != 1 || hits[0].Damage != 10 {
		t.Fatalf("expected one hit for 10 damage, got %+v", hits)
	}

	// Staying in contact does nothing more
	tracker.Update(core.V(0, 0.2), vel, 1.5, ice)
	tracker.Update(core.V(0, 0.4), vel, 1.5, ice)
	if len(hull.hits) != 1 {
		t.Errorf("damage applied %d times while in contact, expected 1", len(hull.hits))
	}
	if len(collisions) != 1 {
		t.Fatalf("CollideIce published %d times, expected 1", len(collisions))
	}
	if collisions[0].Size != 2 || collisions[0].RelativeSpeed != 5 {
		t.Errorf("CollideIce = %+v, expected size 2 at 5 m/s", collisions[0])
	}
	if !tracker.Touching(7) {
		t.Error("Touching(7) should be true during contact")
	}

	// Pull clear, then hit again
	tracker.Update(core.V(0, -10), core.V(0, 0), 1.5, ice)
	if tracker.Touching(7) {
		t.Error("Touching(7) should clear after separation")
	}
	tracker.Update(core.V(0, 0), core.V(0, 10), 1.5, ice)
	if len(hull.hits) != 2 || hull.hits[1] != 20 {
		t.Errorf("re-armed hit = %v, expected second hit for 20", hull.hits)
	}
}

func TestContactRelativeSpeedUsesDrift(t *testing.T) {
	hull := &recordingHull{}
	tracker := NewContactTracker(nil, nil, hull)
	floe := NewIce(1, core.V(1, 0), Descriptor{Size: SizeSmall, BaseDamage: 10})
	floe.Vel = core.V(0, 4)

	hits := tracker.Update(core.V(0, 0), core.V(0, 4), 1.5, []*Ice{floe})
	if len(hits) != 1 {
		t.Fatalf("expected a hit, got %d", len(hits))
	}
	if hits[0].RelativeSpeed != 0 || hits[0].Damage != 0 {
		t.Errorf("co-moving hit = %+v, expected zero relative speed and damage", hits[0])
	}
}

func TestContactReset(t *testing.T) {
	tracker := NewContactTracker(nil, nil, nil)
	floe := NewIce(1, core.V(0, 0), Descriptor{Size: SizeSmall})
	tracker.Update(core.V(0, 0), core.V(0, 0), 1, []*Ice{floe})

	tracker.Reset()
	if tracker.Touching(1) {
		t.Error("Reset should forget contacts")
	}
}

func TestContactAgainstHull(t *testing.T) {
	tests := []struct {
		name     string
		hullHP   int
		size     Size
		base     float64
		speed    float64
		wantHP   int
		wantSink bool
	}{
		{"medium floe at 10 m/s", 100, SizeMedium, 10, 10, 80, false},
		{"small floe at 5 m/s", 100, SizeSmall, 10, 5, 95, false},
		{"curve clamps above 10 m/s", 100, SizeLarge, 10, 25, 70, false},
		{"fatal strike", 30, SizeLarge, 10, 10, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bus := signals.NewBus()
			hull := boat.NewHull(bus, tc.hullHP)
			tracker := NewContactTracker(bus, nil, hull)
			floe := NewIce(1, core.V(0, 2), Descriptor{Size: tc.size, BaseDamage: tc.base})

			tracker.Update(core.V(0, 0), core.V(0, tc.speed), 1.5, []*Ice{floe})
			if hull.HP() != tc.wantHP || hull.IsSinking() != tc.wantSink {
				t.Errorf("hp=%d sinking=%v, expected %d %v", hull.HP(), hull.IsSinking(), tc.wantHP, tc.wantSink)
			}
		})
	}
}

func TestContactPublishesBeforeDamage(t *testing.T) {
	bus := signals.NewBus()
	var order []string
	signals.Subscribe(bus, func(signals.CollideIce) { order = append(order, "collide") })
	signals.Subscribe(bus, func(e signals.RunEnd) { order = append(order, "end:"+e.Result) })

	hull := boat.NewHull(bus, 10)
	tracker := NewContactTracker(bus, nil, hull)
	floe := NewIce(1, core.V(0, 0), Descriptor{Size: SizeLarge, BaseDamage: 50})
	tracker.Update(core.V(0, 0), core.V(0, 10), 1.5, []*Ice{floe})

	if len(order) != 2 || order[0] != "collide" || order[1] != "end:"+signals.ResultSank {
		t.Errorf("events = %v, expected collision before the run ends", order)
	}
}
