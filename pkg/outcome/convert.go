package outcome

import "github.com/ib-77/outcome/pkg/optional"

// Ok projects the Outcome onto its success side: Some(value) on success,
// None on failure. The failure payload is discarded.
func (r Outcome[T, E]) Ok() optional.Optional[T] {
	if !r.ok {
		return optional.None[T]()
	}
	return optional.Some(r.value)
}

// Err projects the Outcome onto its failure side: Some(err) on failure,
// None on success. The success payload is discarded.
func (r Outcome[T, E]) Err() optional.Optional[E] {
	if r.ok {
		return optional.None[E]()
	}
	return optional.Some(r.err)
}

// OkOr lifts an Optional into an Outcome, supplying the failure payload for
// the absent case. Lives here rather than on Optional to keep the package
// import graph acyclic.
func OkOr[T, E any](o optional.Optional[T], err E) Outcome[T, E] {
	if v, some := o.Get(); some {
		return Success[T, E](v)
	}
	return Failure[T, E](err)
}

// OkOrElse is OkOr with a lazily supplied failure payload; the supplier
// runs only on the absent path.
func OkOrElse[T, E any](o optional.Optional[T], supply func() E) Outcome[T, E] {
	if v, some := o.Get(); some {
		return Success[T, E](v)
	}
	return Failure[T, E](supply())
}
