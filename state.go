package undofsm

// StateConfig defines a state and its outgoing transitions
type StateConfig struct {
	ID          StateID
	Transitions Transitions // Event -> target state
}

// StateOption is a functional option for configuring a StateConfig
type StateOption func(*StateConfig)

// On adds an outgoing transition taken when event fires in this state
func On(event EventID, to StateID) StateOption {
	return func(s *StateConfig) {
		if s.Transitions == nil {
			s.Transitions = make(Transitions)
		}
		s.Transitions[event] = to
	}
}

// WithTransitions merges a whole transition table into the state
func WithTransitions(t Transitions) StateOption {
	return func(s *StateConfig) {
		for ev, to := range t {
			On(ev, to)(s)
		}
	}
}
