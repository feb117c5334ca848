package undofsm

import "log/slog"

// StateID is a unique identifier for a state
type StateID string

// EventID is a unique identifier for an event type
type EventID string

// Operation identifies the machine operation that produced a state change
type Operation int

const (
	// OpChangeState is a direct jump via ChangeState
	OpChangeState Operation = iota
	// OpTrigger is an event-driven transition via Trigger
	OpTrigger
	// OpReset returns to the initial state
	OpReset
	// OpUndo steps back through history
	OpUndo
	// OpRedo steps forward through undone history
	OpRedo
)

func (o Operation) String() string {
	switch o {
	case OpChangeState:
		return "change_state"
	case OpTrigger:
		return "trigger"
	case OpReset:
		return "reset"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
