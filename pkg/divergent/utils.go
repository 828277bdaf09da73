package divergent

import (
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer, map, slice, channel, func or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// MatchesKind reports whether err has exactly the dynamic type of one of kinds.
// No kinds matches every error. Wrapped causes are not inspected.
func MatchesKind(err error, kinds ...error) bool {
	if len(kinds) == 0 {
		return true
	}

	errType := reflect.TypeOf(err)
	for _, kind := range kinds {
		if kind != nil && reflect.TypeOf(kind) == errType {
			return true
		}
	}
	return false
}

// AsError converts a recovered panic value into an error, keeping errors as they are.
func AsError(recovered any) error {
	if err, ok := recovered.(error); ok && !IsNil(err) {
		return err
	}
	return &PanicError{Value: recovered}
}

// GetErrors flattens an aggregated error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	switch e := err.(type) {
	case interface{ WrappedErrors() []error }:
		return e.WrappedErrors()
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	}

	return []error{err}
}
