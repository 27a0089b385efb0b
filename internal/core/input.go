package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K-row I, Up arrow
	ActionDown           // S, K, Down arrow
	ActionLeft           // A, J, Left arrow
	ActionRight          // D, L, Right arrow
	ActionFast           // Shift held with a direction key - one extra step per tick
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game

	// ActionSpeed1..ActionSpeed9 select a speed level. They are contiguous
	// so SpeedLevel can derive the level arithmetically.
	ActionSpeed1
	ActionSpeed2
	ActionSpeed3
	ActionSpeed4
	ActionSpeed5
	ActionSpeed6
	ActionSpeed7
	ActionSpeed8
	ActionSpeed9
)

// SpeedAction returns the speed-select action for level 1-9, or ActionNone.
func SpeedAction(level int) Action {
	if level < 1 || level > 9 {
		return ActionNone
	}
	return ActionSpeed1 + Action(level-1)
}

// SpeedLevel returns the level (1-9) selected by a speed action, or 0.
func (a Action) SpeedLevel() int {
	if a < ActionSpeed1 || a > ActionSpeed9 {
		return 0
	}
	return int(a-ActionSpeed1) + 1
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if lvl := a.SpeedLevel(); lvl > 0 {
		return "Speed" + string(rune('0'+lvl))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFast:
		return "Fast"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame represents the input state during one platform frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Elapsed is the wall-clock time since the previous frame. Zero means
	// the game should assume one fixed tick (1/TickRate).
	Elapsed time.Duration

	// dir is the last direction set this frame; the map loses key order.
	dir Action
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
	if a.IsDirection() {
		f.dir = a
	}
}

// Direction returns the last direction action set this frame, or ActionNone.
func (f InputFrame) Direction() Action {
	return f.dir
}

// IsDirection reports whether a is one of the four steering actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SpeedLevel returns the highest speed level requested this frame, or 0.
func (f InputFrame) SpeedLevel() int {
	for lvl := 9; lvl >= 1; lvl-- {
		if f.Has(SpeedAction(lvl)) {
			return lvl
		}
	}
	return 0
}

// Clear resets all actions and elapsed time for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
	f.dir = ActionNone
}
