package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation works with these intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionThrottleUp          // W, Up arrow - push the throttle lever forward
	ActionThrottleDown        // S, Down arrow - pull the throttle lever back
	ActionSteerLeft           // A, Left arrow - rudder to port
	ActionSteerRight          // D, Right arrow - rudder to starboard
	ActionRescue              // E, Space - hold to pull a survivor aboard
	ActionConfirm             // Enter - set sail, dock, acknowledge debrief
	ActionAbandon             // X - abandon the current run
	ActionBack                // B, Escape - leave the current screen
	ActionQuit                // Q, Ctrl+C - exit session
	ActionPause               // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrottleUp:
		return "ThrottleUp"
	case ActionThrottleDown:
		return "ThrottleDown"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionRescue:
		return "Rescue"
	case ActionConfirm:
		return "Confirm"
	case ActionAbandon:
		return "Abandon"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held actions (throttle, rudder, rescue) are reported every tick they are held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Axis returns -1, 0 or 1 from a pair of opposing actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}
