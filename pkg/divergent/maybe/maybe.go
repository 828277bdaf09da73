package maybe

import (
	"fmt"
	"reflect"

	"github.com/ib-77/divergent/pkg/divergent"
)

// Maybe is either Some value or None. The zero Maybe is None.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some panics when v is absent; use Of for values that may be nil.
func Some[T any](v T) Maybe[T] {
	if divergent.IsNil(v) {
		panic("maybe: Some requires a present value")
	}
	return Maybe[T]{value: v, present: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Empty is an alias of None.
func Empty[T any]() Maybe[T] {
	return None[T]()
}

// Of returns None for an absent v and Some(v) otherwise.
func Of[T any](v T) Maybe[T] {
	if divergent.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// OfPtr dereferences p, a nil p gives None.
func OfPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// FromOk adapts the comma-ok idiom.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

func (m Maybe[T]) IsEmpty() bool {
	return !m.present
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// Get returns the value, or a *divergent.NoSuchElementError for None.
func (m Maybe[T]) Get() (T, error) {
	if !m.present {
		var zero T
		return zero, &divergent.NoSuchElementError{Op: "None.get"}
	}
	return m.value, nil
}

func (m Maybe[T]) MustGet() T {
	v, err := m.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (m Maybe[T]) GetOrElse(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

func (m Maybe[T]) OrElse(def Maybe[T]) Maybe[T] {
	if !m.present {
		return def
	}
	return m
}

// Bind applies fn to a present value, fn supplies the wrapping.
func (m Maybe[T]) Bind(fn func(T) Maybe[T]) Maybe[T] {
	return FlatMap(m, fn)
}

func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return None[T]()
}

// Any reports whether the value is present and satisfies pred.
func (m Maybe[T]) Any(pred func(T) bool) bool {
	return m.present && pred(m.value)
}

// All reports whether the value is absent or satisfies pred.
func (m Maybe[T]) All(pred func(T) bool) bool {
	return !m.present || pred(m.value)
}

func (m Maybe[T]) Each(fn func(T)) {
	if m.present {
		fn(m.value)
	}
}

// ToSlice returns a slice holding the value, or an empty slice for None.
func (m Maybe[T]) ToSlice() []T {
	if !m.present {
		return []T{}
	}
	return []T{m.value}
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "None"
	}
	return fmt.Sprintf("Some(%#v)", m.value)
}

// Map applies fn to a present value and re-wraps the result with Of,
// so an absent result gives None.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.present {
		return None[U]()
	}
	return Of(fn(m.value))
}

// FlatMap applies fn to a present value and returns its Maybe as is.
func FlatMap[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return None[U]()
	}
	return fn(m.value)
}

// Contains reports whether m holds a value equal to elem.
func Contains[T comparable](m Maybe[T], elem T) bool {
	return m.present && m.value == elem
}

// ContainsFunc is Contains for any payload, eq decides equality.
// A nil eq compares with reflect.DeepEqual.
func ContainsFunc[T any](m Maybe[T], elem T, eq func(a, b T) bool) bool {
	if !m.present {
		return false
	}
	if eq == nil {
		return reflect.DeepEqual(m.value, elem)
	}
	return eq(m.value, elem)
}
