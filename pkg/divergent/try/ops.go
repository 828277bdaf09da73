package try

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/ib-77/divergent/pkg/divergent"
)

// Map applies fn to the value of a Success and wraps the result.
// An error returned by fn, or a panic in it, becomes a Failure.
func Map[T, U any](t Try[T], fn func(T) (U, error)) Try[U] {
	if t.IsFailure() {
		return failFrom[T, U](t)
	}

	return Of(func() (U, error) {
		return fn(t.value)
	})
}

// FlatMap applies fn to the value of a Success and returns its Try as is.
// A panic in fn becomes a Failure.
func FlatMap[T, U any](t Try[T], fn func(T) Try[U]) Try[U] {
	if t.IsFailure() {
		return failFrom[T, U](t)
	}

	return capture(func() Try[U] {
		return fn(t.value)
	})
}

// Bind is FlatMap without a change of payload type.
func (t Try[T]) Bind(fn func(T) Try[T]) Try[T] {
	if t.IsFailure() {
		return t
	}
	return FlatMap(t, fn)
}

// Filter keeps a Success whose value satisfies pred. A rejected value becomes a
// Failure with a *divergent.PredicateError, a panic in pred becomes a Failure.
func (t Try[T]) Filter(pred func(T) bool) Try[T] {
	if t.IsFailure() {
		return t
	}

	return FlatMap(t, func(v T) Try[T] {
		if pred(v) {
			return t
		}
		return Failure[T](&divergent.PredicateError{Value: v})
	})
}

// RecoverWith replaces a Failure whose error matches kinds with the Try built by fn.
// With no kinds every Failure matches. A panic in fn is not recovered.
func (t Try[T]) RecoverWith(fn func(error) Try[T], kinds ...error) Try[T] {
	if t.IsSuccess() || !divergent.MatchesKind(t.err, kinds...) {
		return t
	}
	return fn(t.err)
}

// Recover replaces a Failure whose error matches kinds with a Success of fn's result.
// With no kinds every Failure matches. A panic in fn is not recovered.
func (t Try[T]) Recover(fn func(error) T, kinds ...error) Try[T] {
	if t.IsSuccess() || !divergent.MatchesKind(t.err, kinds...) {
		return t
	}
	return Success(fn(t.err))
}

// Failed inverts t: a Failure gives a Success of its error, a Success gives a
// Failure with a *divergent.UnsupportedOperationError.
func (t Try[T]) Failed() Try[error] {
	if t.IsFailure() {
		return Success(t.err)
	}
	return Failure[error](&divergent.UnsupportedOperationError{Op: "Success.failed"})
}

// Transform completes t with onSuccess or onFailure. A panic in the called branch
// becomes a Failure.
func Transform[T, U any](t Try[T], onSuccess func(T) Try[U], onFailure func(error) Try[U]) Try[U] {
	return capture(func() Try[U] {
		if t.IsSuccess() {
			return onSuccess(t.value)
		}
		return onFailure(t.err)
	})
}

// Join removes one level of nesting.
func Join[T any](t Try[Try[T]]) Try[T] {
	if t.IsFailure() {
		return failFrom[Try[T], T](t)
	}
	return t.value
}

type nested interface {
	boxed() Try[any]
}

// asNested accepts Try values only, a *Try is an ordinary payload.
func asNested(v any) (nested, bool) {
	if v == nil || reflect.TypeOf(v).Kind() == reflect.Pointer {
		return nil, false
	}
	inner, ok := v.(nested)
	return inner, ok
}

func (t Try[T]) boxed() Try[any] {
	return Try[any]{
		id:        t.id,
		createdAt: t.createdAt,
		value:     t.value,
		err:       t.err,
	}
}

// Flatten returns the inner Try when a Success holds one, of any payload type,
// and t itself otherwise.
func (t Try[T]) Flatten() Try[any] {
	if t.IsSuccess() {
		if inner, ok := asNested(t.value); ok {
			return inner.boxed()
		}
	}
	return t.boxed()
}

// Collect turns many outcomes into one. Every Failure is aggregated into a
// *multierror.Error in order; with no failures the values are returned in order.
func Collect[T any](ts ...Try[T]) Try[[]T] {
	var errs *multierror.Error
	values := make([]T, 0, len(ts))

	for _, t := range ts {
		if t.IsFailure() {
			errs = multierror.Append(errs, t.err)
			continue
		}
		values = append(values, t.value)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Failure[[]T](err)
	}
	return Success(values)
}
