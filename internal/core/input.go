package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the menu to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - previous item
	ActionDown           // S, Down arrow - next item
	ActionLeft           // A, Left arrow - decrease value
	ActionRight          // D, Right arrow - increase value
	ActionConfirm        // Enter - activate item
	ActionQuit           // Q, Ctrl+C - exit process
)

// String returns a human-readable name for the action.
func (a Action) String() string {
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
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
