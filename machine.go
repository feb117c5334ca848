package undofsm

import (
	"fmt"
	"log/slog"
)

// Machine is the runtime FSM instance. It is not safe for concurrent use;
// callers sharing a Machine across goroutines must synchronize externally.
type Machine struct {
	initial StateID
	order   []StateID               // Declaration order of states
	states  map[StateID]Transitions // State -> outgoing transitions

	currentState StateID
	prev         history // Undo stack
	next         history // Redo stack

	data                any
	logger              *slog.Logger
	stateChangeCallback func(*Context)
	validate            bool
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithData sets the application data accessible via Context
func WithData(data any) MachineOption {
	return func(m *Machine) {
		m.data = data
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(*Context)) MachineOption {
	return func(m *Machine) {
		m.stateChangeCallback = fn
	}
}

// WithValidation makes New reject configurations that fail Config.Validate,
// e.g. an undeclared initial state or transition target.
func WithValidation() MachineOption {
	return func(m *Machine) {
		m.validate = true
	}
}

// New creates a Machine positioned at cfg.Initial with empty history.
// The state table is copied, so later changes to cfg do not affect the machine.
func New(cfg *Config, opts ...MachineOption) (*Machine, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}

	m := &Machine{
		initial:      cfg.Initial,
		currentState: cfg.Initial,
		logger:       Logger,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = Logger
	}

	if m.validate {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	m.order, m.states = cfg.index()

	return m, nil
}

// OnStateChange sets a callback invoked after each state change
func (m *Machine) OnStateChange(fn func(*Context)) {
	m.stateChangeCallback = fn
}

// CurrentState returns the active state
func (m *Machine) CurrentState() StateID {
	return m.currentState
}

// Initial returns the configured initial state
func (m *Machine) Initial() StateID {
	return m.initial
}

// IsDeclared reports whether id is a state of the configuration
func (m *Machine) IsDeclared(id StateID) bool {
	_, ok := m.states[id]
	return ok
}

// ChangeState jumps directly to a declared state, bypassing transitions.
// The current state is recorded for Undo and redo history is discarded.
func (m *Machine) ChangeState(newState StateID) error {
	if !m.IsDeclared(newState) {
		m.logger.Debug("rejected state change", "state", m.currentState, "to", newState)
		return &InvalidStateError{State: newState}
	}

	m.advance(OpChangeState, "", newState)
	return nil
}

// Trigger fires event from the current state. The target state is taken
// as-is from the transition table; it is not required to be declared.
func (m *Machine) Trigger(event EventID) error {
	to, ok := m.lookup(event)
	if !ok {
		m.logger.Debug("no transition found", "event", event, "state", m.currentState)
		return &InvalidEventError{State: m.currentState, Event: event}
	}

	m.advance(OpTrigger, event, to)
	return nil
}

// CanTrigger reports whether Trigger(event) would succeed from the current state
func (m *Machine) CanTrigger(event EventID) bool {
	_, ok := m.lookup(event)
	return ok
}

// Reset returns to the initial state. An entry is recorded even when the
// machine is already there.
func (m *Machine) Reset() {
	m.advance(OpReset, "", m.initial)
}

// States returns every declared state in configuration order
func (m *Machine) States() []StateID {
	out := make([]StateID, len(m.order))
	copy(out, m.order)
	return out
}

// StatesFor returns the declared states that have a transition for event,
// in configuration order
func (m *Machine) StatesFor(event EventID) []StateID {
	out := make([]StateID, 0)
	for _, id := range m.order {
		if m.states[id].Has(event) {
			out = append(out, id)
		}
	}
	return out
}

// Undo steps back to the previous state. Returns false when there is no
// history left.
func (m *Machine) Undo() bool {
	prev, ok := m.prev.pop()
	if !ok {
		m.logger.Debug("nothing to undo", "state", m.currentState)
		return false
	}

	from := m.currentState
	m.next.push(from)
	m.currentState = prev
	m.changed(OpUndo, "", from)
	return true
}

// Redo re-applies the most recently undone state. Returns false when
// nothing has been undone since the last forward operation.
func (m *Machine) Redo() bool {
	next, ok := m.next.pop()
	if !ok {
		m.logger.Debug("nothing to redo", "state", m.currentState)
		return false
	}

	from := m.currentState
	m.prev.push(from)
	m.currentState = next
	m.changed(OpRedo, "", from)
	return true
}

// CanUndo reports whether Undo would succeed
func (m *Machine) CanUndo() bool {
	return m.prev.len() > 0
}

// CanRedo reports whether Redo would succeed
func (m *Machine) CanRedo() bool {
	return m.next.len() > 0
}

// ClearHistory drops both undo and redo history. The active state is kept.
func (m *Machine) ClearHistory() {
	m.prev.clear()
	m.next.clear()
	m.logger.Debug("history cleared", "state", m.currentState)
}

// StateHistory returns the states available to Undo, oldest first
func (m *Machine) StateHistory() []StateID {
	return m.prev.snapshot()
}

// RedoHistory returns the states available to Redo, oldest first.
// The last element is the state the next Redo moves to.
func (m *Machine) RedoHistory() []StateID {
	return m.next.snapshot()
}

// lookup resolves event against the current state's transition table.
// An undeclared current state has no table and matches nothing.
func (m *Machine) lookup(event EventID) (StateID, bool) {
	table, ok := m.states[m.currentState]
	if !ok {
		return "", false
	}
	return table.Target(event)
}

// advance performs a forward move: record the current state, move to `to`
// and discard redo history
func (m *Machine) advance(op Operation, event EventID, to StateID) {
	from := m.currentState
	m.prev.push(from)
	m.currentState = to
	m.next.clear()
	m.changed(op, event, from)
}

// changed logs the change and notifies the callback
func (m *Machine) changed(op Operation, event EventID, from StateID) {
	if event != "" {
		m.logger.Debug("state changed", "op", op.String(), "event", event, "from", from, "to", m.currentState)
	} else {
		m.logger.Debug("state changed", "op", op.String(), "from", from, "to", m.currentState)
	}

	if m.stateChangeCallback != nil {
		m.stateChangeCallback(m.makeContext(op, event, from))
	}
}

// makeContext creates a context for callbacks
func (m *Machine) makeContext(op Operation, event EventID, from StateID) *Context {
	return &Context{
		FSM:       m,
		Op:        op,
		Event:     event,
		FromState: from,
		ToState:   m.currentState,
		Data:      m.data,
		Logger:    m.logger,
	}
}
