package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState is returned when a transition references a state name
	// that was never added.
	ErrUnknownState = errors.New("unknown state")

	// ErrNoStartState means the automaton has no designated start state.
	ErrNoStartState = errors.New("no start state")
)

// ConfigError is a construction-time configuration error. An NFA that
// produced one must not be used for conversion.
type ConfigError struct {
	Op   string // builder operation, e.g. "AddTransition"
	Name string // offending state name
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Op, e.Err, e.Name)
}

func (e *ConfigError) Unwrap() error { return e.Err }
