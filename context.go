package undofsm

import (
	"log/slog"
)

// Context is passed to state change callbacks and describes the change that
// just happened
type Context struct {
	FSM       *Machine
	Op        Operation // Operation that produced the change
	Event     EventID   // Triggering event (empty unless Op is OpTrigger)
	FromState StateID   // State we transitioned from
	ToState   StateID   // State we transitioned to
	Data      any       // User-provided application data
	Logger    *slog.Logger
}

// CurrentState returns the current active state
func (c *Context) CurrentState() StateID {
	return c.FSM.CurrentState()
}

// CanUndo reports whether the machine has history to step back through
func (c *Context) CanUndo() bool {
	return c.FSM.CanUndo()
}

// CanRedo reports whether the machine has undone history to step forward through
func (c *Context) CanRedo() bool {
	return c.FSM.CanRedo()
}
