// Package maybe provides Maybe[T], an optional value that is either Some
// value or None.
//
// Absence is never stored as a value: Of maps nil pointers, maps, slices,
// channels, funcs and interfaces to None, and Some refuses them.
package maybe
