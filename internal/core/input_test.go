package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionRescue)
	if !f.Has(ActionRescue) {
		t.Error("NewInputFrame should set the given actions")
	}
	if f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionRescue) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionRescue) {
		t.Error("Clone should not share state with the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionSteerLeft}, -1},
		{"right", []Action{ActionSteerRight}, 1},
		{"both cancel", []Action{ActionSteerLeft, ActionSteerRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.actions...)
			if got := f.Axis(ActionSteerLeft, ActionSteerRight); got != tc.want {
				t.Errorf("Axis() = %f, expected %f", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionRescue.String() != "Rescue" {
		t.Errorf("ActionRescue.String() = %q", ActionRescue.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
