package divergent

// Monad is implemented by wrappers that can be flat-mapped onto their own type.
// M is the wrapper type itself, e.g. try.Try[int].
type Monad[T any, M any] interface {
	// Bind applies fn to the wrapped value, fn supplies the wrapping
	Bind(fn func(T) M) M
}

// Unit lifts a plain value into the wrapper M.
type Unit[T any, M any] func(T) M

// ValueProvider defines the read side shared by Try and Maybe
type ValueProvider[T any] interface {
	// Get returns the wrapped value or the error explaining its absence
	Get() (T, error)
	// GetOrElse returns the wrapped value or def
	GetOrElse(def T) T
}

// Chain binds every step in order, starting from m.
func Chain[T any, M Monad[T, M]](m M, steps ...func(T) M) M {
	for _, step := range steps {
		m = m.Bind(step)
	}
	return m
}

// Lift returns the Kleisli form of a plain function for the wrapper built by unit.
func Lift[T any, M any](unit Unit[T, M], fn func(T) T) func(T) M {
	return func(v T) M {
		return unit(fn(v))
	}
}
