package optional

// Optional holds zero or one value of T. Presence is tracked by an explicit
// discriminant, never inferred from the payload: Some(0), Some("") and
// Some(false) all stay distinguishable from None.
//
// Instances are immutable values. Factories leave the inactive slot zeroed,
// so == on comparable T compares exactly the discriminant plus the active
// payload.
type Optional[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, some: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a possibly-nil pointer into an Optional, dereferencing
// when non-nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) IsSome() bool {
	return o.some
}

func (o Optional[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.some
}

// Expect returns the value or panics with InvalidUnwrapError carrying the
// given message when absent.
func (o Optional[T]) Expect(message string) T {
	if !o.some {
		panic(InvalidUnwrapError{Message: message})
	}
	return o.value
}

// Unwrap returns the value or panics with a default InvalidUnwrapError when
// absent. Prefer Expect or Match in production code.
func (o Optional[T]) Unwrap() T {
	if !o.some {
		panic(InvalidUnwrapError{})
	}
	return o.value
}

func (o Optional[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the value, or the supplier's result when absent. The
// supplier runs only on the absent path.
func (o Optional[T]) UnwrapOrElse(supply func() T) T {
	if o.some {
		return o.value
	}
	return supply()
}

// Or returns o when present, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o when present, otherwise the supplier's result. The
// supplier runs only on the absent path.
func (o Optional[T]) OrElse(supply func() Optional[T]) Optional[T] {
	if o.some {
		return o
	}
	return supply()
}

// Filter keeps the value only when present and accepted by the predicate.
func (o Optional[T]) Filter(accept func(T) bool) Optional[T] {
	if o.some && accept(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Map transforms the value when present; absence propagates untouched.
func Map[T, U any](o Optional[T], transform func(T) U) Optional[U] {
	if !o.some {
		return None[U]()
	}
	return Some(transform(o.value))
}

// MapOr transforms the value when present, otherwise returns fallback.
func MapOr[T, U any](o Optional[T], fallback U, transform func(T) U) U {
	if !o.some {
		return fallback
	}
	return transform(o.value)
}

// MapOrElse transforms the value when present, otherwise calls the fallback
// supplier. Exactly one of the two callbacks runs.
func MapOrElse[T, U any](o Optional[T], supply func() U, transform func(T) U) U {
	if !o.some {
		return supply()
	}
	return transform(o.value)
}

// And returns other when o is present, otherwise propagates the absence.
func And[T, U any](o Optional[T], other Optional[U]) Optional[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// AndThen composes with a function returning another Optional; absence
// short-circuits without calling next.
func AndThen[T, U any](o Optional[T], next func(T) Optional[U]) Optional[U] {
	if !o.some {
		return None[U]()
	}
	return next(o.value)
}
