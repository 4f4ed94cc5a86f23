// Package optional provides Optional[T], an immutable container holding
// either one value of T or nothing, with combinators for composing
// computations over possibly-absent values without nil checks.
//
// Highlights:
// - Some/None/FromPtr: construct an Optional
// - IsSome/IsNone/Get: inspect state
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse: extract the value
// - Map/MapOr/MapOrElse: transform the value (package-level, type-changing)
// - And/AndThen/Or/OrElse/Filter: compose with other Optionals
// - Match: consume via a Matcher handler pair, one handler per variant
//
// Type-changing operations are package-level functions because Go methods
// cannot introduce type parameters. Conversions to Outcome (OkOr, OkOrElse)
// live in the outcome package to keep the import graph acyclic.
package optional
