package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Chain wraps an Outcome for fluent synchronous composition. A failed step
// short-circuits every later step.
type Chain[T, E any] struct {
	res outcome.Outcome[T, E]
}

func Start[T, E any](r outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(outcome.Success[T, E](v))
}

func (c Chain[T, E]) Result() outcome.Outcome[T, E] {
	return c.res
}

// Then composes functions that already return an Outcome.
func (c Chain[T, E]) Then(onSuccess func(T) outcome.Outcome[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[T, E]{res: onSuccess(v)}
}

// Map transforms the successful value to a new value.
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: outcome.Map(c.res, onSuccess)}
}

// MapErr transforms the failure value, leaving a success untouched.
func (c Chain[T, E]) MapErr(onFailure func(E) E) Chain[T, E] {
	return Chain[T, E]{res: outcome.MapErr(c.res, onFailure)}
}

// RepeatUntil applies onSuccess repeatedly until the step fails or the
// predicate accepts the current value.
func (c Chain[T, E]) RepeatUntil(onSuccess func(T) outcome.Outcome[T, E],
	until func(T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.res.Value()
		if !ok || until(v) {
			return c
		}
	}
}

// While applies onSuccess for as long as the chain is successful and the
// predicate accepts the current value.
func (c Chain[T, E]) While(onSuccess func(T) outcome.Outcome[T, E],
	while func(T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !while(v) {
			return c
		}
		c = Chain[T, E]{res: onSuccess(v)}
	}
}

// Or keeps c when successful, otherwise switches to the alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	return Chain[T, E]{res: outcome.Or(c.res, alternative.res)}
}

// And requires both chains to succeed, keeping the required chain's value.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	return Chain[T, E]{res: outcome.And(c.res, required.res)}
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil handlers are skipped.
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	outcome.Match(c.res, outcome.Matcher[T, E, struct{}]{
		Ok: func(v T) struct{} {
			if onSuccess != nil {
				onSuccess(v)
			}
			return struct{}{}
		},
		Err: func(e E) struct{} {
			if onFailure != nil {
				onFailure(e)
			}
			return struct{}{}
		},
	})
	return c
}

// Finally collapses the chain to a final value via one of the two handlers.
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return outcome.Match(c.res, outcome.Matcher[T, E, T]{
		Ok:  onSuccess,
		Err: onFailure,
	})
}

// Try composes functions that return (T, error), like repo calls; a non-nil
// error becomes the chain's failure.
func Try[T any](c Chain[T, error], step func(T) (T, error)) Chain[T, error] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[T, error]{res: outcome.Of(step(v))}
}
