package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents such as "pop" or "rotate around x" rather than keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - move cursor -x
	ActionRight            // Right arrow, l - move cursor +x
	ActionUp               // Up arrow, k - move cursor +y
	ActionDown             // Down arrow, j - move cursor -y
	ActionLayerUp          // ], PgUp - next z layer
	ActionLayerDown        // [, PgDn - previous z layer
	ActionPop              // Space - pop the hovered region
	ActionRotateX          // a - rotate the hovered x slice
	ActionRotateY          // s - rotate the hovered y slice
	ActionRotateZ          // d - rotate the hovered z slice
	ActionRecolor1         // 1..7 - recolor with palette entry
	ActionRecolor2
	ActionRecolor3
	ActionRecolor4
	ActionRecolor5
	ActionRecolor6
	ActionRecolor7
	ActionRestart // R - restart after game over
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause game
)

// MaxRecolor is the highest palette key.
const MaxRecolor = 7

// RecolorAction returns the recolor action for a 1-based palette index.
// Out-of-range indexes yield ActionNone.
func RecolorAction(index int) Action {
	if index < 1 || index > MaxRecolor {
		return ActionNone
	}
	return ActionRecolor1 + Action(index-1)
}

// RecolorIndex returns the 1-based palette index of a recolor action.
func (a Action) RecolorIndex() (int, bool) {
	if a < ActionRecolor1 || a > ActionRecolor7 {
		return 0, false
	}
	return int(a-ActionRecolor1) + 1, true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if i, ok := a.RecolorIndex(); ok {
		return "Recolor" + string(rune('0'+i))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLayerUp:
		return "LayerUp"
	case ActionLayerDown:
		return "LayerDown"
	case ActionPop:
		return "Pop"
	case ActionRotateX:
		return "RotateX"
	case ActionRotateY:
		return "RotateY"
	case ActionRotateZ:
		return "RotateZ"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
