package divergent

import (
	"fmt"
)

// Sentinels double as kinds: errors.Is matches any error of the same type,
// and MatchesKind accepts them as prototypes.
var (
	ErrNoSuchElement        error = &NoSuchElementError{}
	ErrUnsupportedOperation error = &UnsupportedOperationError{}
)

// NoSuchElementError reports a read of a value that is not there.
type NoSuchElementError struct {
	Op string
}

func (e *NoSuchElementError) Error() string {
	if e.Op == "" {
		return "no such element"
	}
	return fmt.Sprintf("no such element in %s", e.Op)
}

func (e *NoSuchElementError) Is(target error) bool {
	_, ok := target.(*NoSuchElementError)
	return ok
}

// UnsupportedOperationError reports an operation the receiver's variant does not support.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Op == "" {
		return "unsupported operation"
	}
	return fmt.Sprintf("unsupported operation: %s", e.Op)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	_, ok := target.(*UnsupportedOperationError)
	return ok
}

// PredicateError reports a value rejected by a filter.
type PredicateError struct {
	Value any
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("predicate does not hold for %v", e.Value)
}

func (e *PredicateError) Unwrap() error {
	return ErrNoSuchElement
}

// PanicError carries a recovered panic value that was not an error itself.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
