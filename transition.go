package undofsm

// Transitions maps an event to the state it leads to
type Transitions map[EventID]StateID

// Target returns the state reached by event, if any
func (t Transitions) Target(event EventID) (StateID, bool) {
	to, ok := t[event]
	return to, ok
}

// Has reports whether the table contains a row for event
func (t Transitions) Has(event EventID) bool {
	_, ok := t[event]
	return ok
}

func (t Transitions) clone() Transitions {
	if t == nil {
		return nil
	}
	c := make(Transitions, len(t))
	for ev, to := range t {
		c[ev] = to
	}
	return c
}
