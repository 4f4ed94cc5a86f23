// Package outcome provides Outcome[T, E], an immutable container holding
// either a success value of T or a failure value of E, with combinators for
// composing fallible computations without error-return plumbing at every
// step.
//
// Highlights:
// - Success/Failure/Of: construct an Outcome (Of adapts (T, error) calls)
// - IsSuccess/IsFailure/Value: inspect state
// - Unwrap/UnwrapErr/Expect/UnwrapOr/UnwrapOrElse: extract a payload
// - Map/MapErr: transform one side, propagating the other untouched
// - And/AndThen/Or/OrElse: compose with other Outcomes, short-circuiting
// - Match: consume via a Matcher handler pair, one handler per variant
// - Ok/Err: project onto optional.Optional, discarding the other side
// - OkOr/OkOrElse: lift an Optional back into an Outcome
//
// Type-changing operations are package-level functions because Go methods
// cannot introduce type parameters. Unwrap misuse panics with the typed
// errors in errors.go; expected failures should instead flow through the
// Failure variant.
package outcome
