// Package undofsm implements a small finite state machine with undo and redo
// history.
//
// A machine is built from a Config (or the fluent Definition builder) that
// names an initial state and, for each state, a table mapping event names to
// target states. The machine tracks one active state and two history stacks:
//
//   - ChangeState, Trigger and Reset move forward. They record the current
//     state for Undo and discard any redo history.
//   - Undo steps back and makes the left state available to Redo.
//   - Redo steps forward again through undone states.
//
// Undo and Redo report exhaustion with a false result rather than an error.
// ChangeState fails with *InvalidStateError for undeclared states and Trigger
// fails with *InvalidEventError when the current state has no row for the
// event; in both cases the machine is left untouched.
//
//	def := undofsm.NewDefinition().
//		State("idle", undofsm.On("start", "running")).
//		State("running", undofsm.On("stop", "idle")).
//		Initial("idle")
//
//	m, err := def.Build()
//	if err != nil {
//		return err
//	}
//	_ = m.Trigger("start") // running
//	m.Undo()               // idle
//	m.Redo()               // running
//
// Machines created with New are lenient: the initial state and transition
// targets are not checked unless WithValidation is passed, and Trigger can
// move into a target that is not itself declared. Definition.Build always
// validates.
//
// A Machine is not safe for concurrent use.
package undofsm
