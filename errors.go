package undofsm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfig is returned when a machine is constructed without a configuration
	ErrNoConfig = errors.New("no configuration supplied")
	// ErrInvalidConfig wraps validation failures of a configuration
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidState matches every *InvalidStateError
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidEvent matches every *InvalidEventError
	ErrInvalidEvent = errors.New("invalid event")
)

// InvalidStateError indicates a requested state is not declared in the configuration.
type InvalidStateError struct {
	State StateID
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("unknown state: %q", e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// InvalidEventError indicates the current state has no transition for the event.
type InvalidEventError struct {
	State StateID
	Event EventID
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

func (e *InvalidEventError) Is(target error) bool {
	return target == ErrInvalidEvent
}

func IsInvalidStateError(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

func IsInvalidEventError(err error) bool {
	var e *InvalidEventError
	return errors.As(err, &e)
}
