// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of Outcome[T, E] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose Outcome-returning or error-returning functions
// - Map/MapErr: transform one side of the result
// - While/RepeatUntil: loop a step under a predicate
// - Or/And: combine with another chain
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal where a sequence of fallible steps reads better as one
// fluent expression than as repeated error checks.
package chain
