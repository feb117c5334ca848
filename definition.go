package undofsm

import (
	"fmt"
)

// Config is the declarative machine description: an initial state and an
// ordered list of states with their outgoing transitions. The order of States
// is the order reported by Machine.States.
type Config struct {
	Initial StateID
	States  []StateConfig
}

// Validate checks the configuration for errors.
// Machines built with New are lenient and only validate when asked to via
// WithValidation; Definition.Build always validates.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNoConfig
	}

	if c.Initial == "" {
		return fmt.Errorf("no initial state defined")
	}

	order, table := c.index()
	if _, ok := table[c.Initial]; !ok {
		return fmt.Errorf("initial state %q not defined", c.Initial)
	}

	for _, id := range order {
		if id == "" {
			return fmt.Errorf("state with empty id")
		}
		for ev, to := range table[id] {
			if ev == "" {
				return fmt.Errorf("state %q has a transition with empty event", id)
			}
			if _, ok := table[to]; !ok {
				return fmt.Errorf("transition from %q on %q to undefined state %q", id, ev, to)
			}
		}
	}

	return nil
}

// index flattens States into declaration order plus a lookup table.
// A repeated state keeps its first position and takes the last table.
func (c *Config) index() ([]StateID, map[StateID]Transitions) {
	order := make([]StateID, 0, len(c.States))
	table := make(map[StateID]Transitions, len(c.States))
	for _, s := range c.States {
		if _, seen := table[s.ID]; !seen {
			order = append(order, s.ID)
		}
		t := s.Transitions.clone()
		if t == nil {
			t = make(Transitions)
		}
		table[s.ID] = t
	}
	return order, table
}

// transitionRow is a transition added to a Definition outside of State
type transitionRow struct {
	From  StateID
	Event EventID
	To    StateID
}

// Definition is a fluent builder for a Config
type Definition struct {
	order       []StateID
	states      map[StateID]*StateConfig
	transitions []transitionRow
	initial     StateID
}

// NewDefinition creates a new FSM definition builder
func NewDefinition() *Definition {
	return &Definition{
		states:      make(map[StateID]*StateConfig),
		transitions: make([]transitionRow, 0),
	}
}

// State adds a state to the definition. Redeclaring a state keeps its
// original position and replaces its transitions.
func (d *Definition) State(id StateID, opts ...StateOption) *Definition {
	s := &StateConfig{
		ID:          id,
		Transitions: make(Transitions),
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, ok := d.states[id]; !ok {
		d.order = append(d.order, id)
	}
	d.states[id] = s
	return d
}

// Transition adds a transition rule
func (d *Definition) Transition(from StateID, event EventID, to StateID) *Definition {
	d.transitions = append(d.transitions, transitionRow{
		From:  from,
		Event: event,
		To:    to,
	})
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// Config assembles the definition into a standalone Config
func (d *Definition) Config() *Config {
	cfg := &Config{
		Initial: d.initial,
		States:  make([]StateConfig, 0, len(d.order)),
	}

	merged := make(map[StateID]Transitions, len(d.order))
	for _, id := range d.order {
		merged[id] = d.states[id].Transitions.clone()
	}
	for _, t := range d.transitions {
		table, ok := merged[t.From]
		if !ok {
			continue
		}
		table[t.Event] = t.To
	}

	for _, id := range d.order {
		cfg.States = append(cfg.States, StateConfig{ID: id, Transitions: merged[id]})
	}
	return cfg
}

// Validate checks the definition for errors
func (d *Definition) Validate() error {
	for _, t := range d.transitions {
		if _, ok := d.states[t.From]; !ok {
			return fmt.Errorf("transition from undefined state %q", t.From)
		}
	}
	return d.Config().Validate()
}

// Build creates a Machine from the definition
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return New(d.Config(), opts...)
}
