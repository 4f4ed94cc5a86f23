package outcome

// Outcome holds either a success value of T or a failure value of E, never
// both. The discriminant is an explicit boolean; the inactive slot is left
// at its zero value, so == on comparable T and E compares exactly the
// discriminant plus the active payload.
//
// Instances are immutable values; every combinator returns a new instance.
type Outcome[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Success[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{value: value, ok: true}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{err: err}
}

// Of bridges Go's (value, error) convention: a non-nil error wins and the
// value is discarded.
func Of[T any](value T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](value)
}

func (r Outcome[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value and whether the Outcome is a success.
func (r Outcome[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Unwrap returns the success value or panics with UnwrappedFailureError
// carrying the raw failure payload.
func (r Outcome[T, E]) Unwrap() T {
	if !r.ok {
		panic(UnwrappedFailureError[E]{Failure: r.err})
	}
	return r.value
}

// UnwrapErr returns the failure value or panics with UnwrappedSuccessError
// carrying the success payload. The mirror image of Unwrap, for callers
// that expect failure.
func (r Outcome[T, E]) UnwrapErr() E {
	if r.ok {
		panic(UnwrappedSuccessError[T]{Value: r.value})
	}
	return r.err
}

// Expect returns the success value or panics with UnwrappedFailureError
// whose message is the given message joined with the stringified failure
// payload.
func (r Outcome[T, E]) Expect(message string) T {
	if !r.ok {
		panic(UnwrappedFailureError[E]{Failure: r.err, Message: message})
	}
	return r.value
}

func (r Outcome[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value, or derives one from the failure
// payload. The function runs only on the failure path.
func (r Outcome[T, E]) UnwrapOrElse(onFailure func(E) T) T {
	if r.ok {
		return r.value
	}
	return onFailure(r.err)
}

// Map transforms the success value; a failure propagates with its original
// error untouched.
func Map[T, E, U any](r Outcome[T, E], transform func(T) U) Outcome[U, E] {
	if !r.ok {
		return Failure[U, E](r.err)
	}
	return Success[U, E](transform(r.value))
}

// MapErr transforms the failure value; a success propagates untouched.
func MapErr[T, E, F any](r Outcome[T, E], transform func(E) F) Outcome[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return Failure[T, F](transform(r.err))
}

// And returns other when r is a success, otherwise propagates r's failure.
func And[T, U, E any](r Outcome[T, E], other Outcome[U, E]) Outcome[U, E] {
	if !r.ok {
		return Failure[U, E](r.err)
	}
	return other
}

// AndThen composes with a function returning another Outcome; a failure
// short-circuits without calling next.
func AndThen[T, U, E any](r Outcome[T, E], next func(T) Outcome[U, E]) Outcome[U, E] {
	if !r.ok {
		return Failure[U, E](r.err)
	}
	return next(r.value)
}

// Or returns r's success, otherwise other.
func Or[T, E, F any](r Outcome[T, E], other Outcome[T, F]) Outcome[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return other
}

// OrElse returns r's success, otherwise derives an alternative from the
// failure payload. The function runs only on the failure path.
func OrElse[T, E, F any](r Outcome[T, E], next func(E) Outcome[T, F]) Outcome[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return next(r.err)
}
