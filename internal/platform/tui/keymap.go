package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dark-seas/internal/core"
)

// KeyMap holds the key bindings used at sea.
type KeyMap struct {
	ThrottleUp   key.Binding
	ThrottleDown key.Binding
	SteerLeft    key.Binding
	SteerRight   key.Binding
	Rescue       key.Binding
	Confirm      key.Binding
	Abandon      key.Binding
	Pause        key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ThrottleUp, k.SteerLeft, k.Rescue, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ThrottleUp, k.ThrottleDown, k.SteerLeft, k.SteerRight},
		{k.Rescue, k.Confirm, k.Abandon},
		{k.Pause, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ThrottleUp: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "throttle up"),
		),
		ThrottleDown: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "throttle down"),
		),
		SteerLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "port"),
		),
		SteerRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "starboard"),
		),
		Rescue: key.NewBinding(
			key.WithKeys("e", " ", "space"),
			key.WithHelp("e/space", "hold to rescue"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dock"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "abandon run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.ThrottleUp):
		return core.ActionThrottleUp, false
	case key.Matches(msg, k.ThrottleDown):
		return core.ActionThrottleDown, false
	case key.Matches(msg, k.SteerLeft):
		return core.ActionSteerLeft, false
	case key.Matches(msg, k.SteerRight):
		return core.ActionSteerRight, false
	case key.Matches(msg, k.Rescue):
		return core.ActionRescue, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Abandon):
		return core.ActionAbandon, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Hold grace windows. Terminals report a held key as a burst of presses
// after an initial repeat delay, so a held action stays down this long after
// its last press.
const (
	rescueGrace = 600 * time.Millisecond
	helmGrace   = 150 * time.Millisecond
)

// HoldTracker turns repeated key presses into held actions.
type HoldTracker struct {
	grace map[core.Action]time.Duration
	last  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker for the helm and rescue actions.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		grace: map[core.Action]time.Duration{
			core.ActionRescue:       rescueGrace,
			core.ActionThrottleUp:   helmGrace,
			core.ActionThrottleDown: helmGrace,
			core.ActionSteerLeft:    helmGrace,
			core.ActionSteerRight:   helmGrace,
		},
		last: make(map[core.Action]time.Time),
	}
}

// Holdable reports whether a is tracked as a held action.
func (h *HoldTracker) Holdable(a core.Action) bool {
	_, ok := h.grace[a]
	return ok
}

// Press records a press of a at now. Pressing one helm direction releases
// its opposite.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !h.Holdable(a) {
		return
	}
	h.last[a] = now
	if opp := opposite(a); opp != core.ActionNone {
		delete(h.last, opp)
	}
}

// Apply sets every action still held at now on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) <= h.grace[a] {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.last)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionThrottleUp:
		return core.ActionThrottleDown
	case core.ActionThrottleDown:
		return core.ActionThrottleUp
	case core.ActionSteerLeft:
		return core.ActionSteerRight
	case core.ActionSteerRight:
		return core.ActionSteerLeft
	}
	return core.ActionNone
}
