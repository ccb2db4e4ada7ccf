package query

import (
	"errors"
	"fmt"
)

// ErrNoScope is returned if a query is evaluated without a scope.
var ErrNoScope = errors.New("no scope to evaluate selector in")

// SelectorError is an error reported by the selector engine, usually
// because of a malformed selector. The engine's message is kept as-is.
type SelectorError struct {
	Selector string // the selector as entered
	Err      error  // the engine's error
}

func (e *SelectorError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the engine's error.
func (e *SelectorError) Unwrap() error {
	return e.Err
}

// InternalError is reported if the selector engine failed in an unexpected
// way, i.e. panicked.
type InternalError struct {
	Selector string      // the selector as entered
	Cause    interface{} // value recovered from the panic
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("selector engine failed on %q: %v", e.Selector, e.Cause)
}

// Unwrap returns the cause, if it is an error.
func (e *InternalError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Kind returns a short name for the kind of error, used for reporting.
func Kind(err error) string {
	var selErr *SelectorError
	var intErr *InternalError
	switch {
	case errors.As(err, &selErr):
		return "SelectorError"
	case errors.As(err, &intErr):
		return "InternalError"
	case errors.Is(err, ErrNoScope):
		return "ScopeError"
	}
	return "Error"
}
