package signals

import "testing"

func TestSubscribeReceivesTypedEvents(t *testing.T) {
	bus := NewBus()

	var got []int64
	Subscribe(bus, func(e RunStart) {
		got = append(got, e.Seed)
	})

	bus.Publish(RunStart{Seed: 7})
	bus.Publish(RunEnd{Result: ResultSank})
	bus.Publish(RunStart{Seed: 9})

	if len(got) != 2 || got[0] != 7 || got[1] != 9 {
		t.Errorf("Expected seeds [7 9], got %v", got)
	}
}

func TestPublishRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	Subscribe(bus, func(Delivered) { order = append(order, "first") })
	Subscribe(bus, func(Delivered) { order = append(order, "second") })
	Subscribe(bus, func(Delivered) { order = append(order, "third") })

	bus.Publish(Delivered{Count: 1, Points: 1})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d calls, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Call %d = %q, expected %q", i, order[i], want[i])
		}
	}
}

func TestReleaseStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := Subscribe(bus, func(FuelEmpty) { calls++ })

	bus.Publish(FuelEmpty{Time: 1})
	sub.Release()
	sub.Release() // idempotent
	bus.Publish(FuelEmpty{Time: 2})

	if calls != 1 {
		t.Errorf("Expected 1 call after release, got %d", calls)
	}
	if bus.Count(KindFuelEmpty) != 0 {
		t.Errorf("Expected no handlers left, got %d", bus.Count(KindFuelEmpty))
	}
}

func TestReentrantPublish(t *testing.T) {
	bus := NewBus()

	var trace []string
	Subscribe(bus, func(e RescuePickedUp) {
		trace = append(trace, "picked:"+e.ID)
		bus.Publish(Delivered{Count: 1})
		trace = append(trace, "after-deliver")
	})
	Subscribe(bus, func(Delivered) {
		trace = append(trace, "delivered")
	})

	bus.Publish(RescuePickedUp{ID: "a"})

	want := []string{"picked:a", "delivered", "after-deliver"}
	if len(trace) != len(want) {
		t.Fatalf("Expected trace %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, expected %q", i, trace[i], want[i])
		}
	}
}

func TestReleaseDuringPublish(t *testing.T) {
	bus := NewBus()

	var second *Subscription
	secondCalls := 0
	Subscribe(bus, func(RunEnd) { second.Release() })
	second = Subscribe(bus, func(RunEnd) { secondCalls++ })

	// The in-flight publish still sees the snapshot taken before release.
	bus.Publish(RunEnd{})
	bus.Publish(RunEnd{})

	if secondCalls != 1 {
		t.Errorf("Expected second handler to run once, got %d", secondCalls)
	}
}

func TestNilBusPublish(t *testing.T) {
	var bus *Bus
	bus.Publish(FuelEmpty{}) // must not panic
}

func TestReleaserGroup(t *testing.T) {
	bus := NewBus()

	var r Releaser
	r.Add(Subscribe(bus, func(RunStart) {}))
	r.Add(bus.SubscribeAll(func(Event) {})...)

	if bus.Count(KindRunStart) != 2 {
		t.Fatalf("Expected 2 RunStart handlers, got %d", bus.Count(KindRunStart))
	}

	r.Release()

	for k := KindFuelEmpty; k <= KindRunEnd; k++ {
		if bus.Count(k) != 0 {
			t.Errorf("Kind %s still has %d handlers", k, bus.Count(k))
		}
	}
}
