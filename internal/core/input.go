package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, touch ◀ - move left
	ActionRight          // D, Right arrow, touch ▶ - move right
	ActionJump           // W, Up arrow, touch ▲ - jump
	ActionFire           // E, touch ✹ - fire one projectile
	ActionRestart        // R - reset the session
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
//
// Held records the actions that are currently pressed (movement and jump).
// Triggers records discrete edge events in the order they arrived: a press
// edge of a movement key, a fire request, a reset request. Games read both
// without ever seeing raw device events.
type InputFrame struct {
	Held     map[Action]bool
	Triggers []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Hold marks an action as pressed for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Trigger appends a discrete edge event.
func (f *InputFrame) Trigger(a Action) {
	f.Triggers = append(f.Triggers, a)
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Triggered returns true if the given action fired at least once this frame.
func (f InputFrame) Triggered(a Action) bool {
	for _, t := range f.Triggers {
		if t == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Triggers = f.Triggers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Triggers = append([]Action(nil), f.Triggers...)
	return clone
}
