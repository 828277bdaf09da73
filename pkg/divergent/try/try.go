package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/divergent/pkg/divergent"
)

// Try is either a Success holding a value or a Failure holding an error.
// The zero Try is a Success of the zero value.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

// Failure panics when err is nil: a Failure without an error is a programming mistake.
func Failure[T any](err error) Try[T] {
	if divergent.IsNil(err) {
		panic("try: Failure requires a non-nil error")
	}

	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Of runs fn and captures its outcome. A returned error or a panic becomes a Failure.
func Of[T any](fn func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[T](divergent.AsError(r))
		}
	}()

	v, err := fn()
	if !divergent.IsNil(err) {
		return Failure[T](err)
	}
	return Success(v)
}

// Do runs fn and captures a panic as a Failure.
func Do[T any](fn func() T) Try[T] {
	return Of(func() (T, error) {
		return fn(), nil
	})
}

// capture runs fn and turns a panic into a Failure of the same payload type.
func capture[U any](fn func() Try[U]) (out Try[U]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[U](divergent.AsError(r))
		}
	}()

	return fn()
}

// failFrom moves a Failure to another payload type, keeping its identity.
func failFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
	}
}

func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the value of a Success, or the original error of a Failure.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// MustGet returns the value of a Success and panics with the error of a Failure.
func (t Try[T]) MustGet() T {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) GetOrElse(def T) T {
	if t.IsSuccess() {
		return t.value
	}
	return def
}

func (t Try[T]) OrElse(def Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	return def
}

// Each calls fn with the value of a Success. A panic in fn is not recovered.
func (t Try[T]) Each(fn func(T)) {
	if t.IsSuccess() {
		fn(t.value)
	}
}

func (t Try[T]) String() string {
	if t.IsSuccess() {
		return fmt.Sprintf("Success<%v>", t.value)
	}
	return fmt.Sprintf("Failure<%v>", t.err)
}
