// Package fallible provides algebraic container types for values that may be
// absent (maybe.Maybe), one of two alternatives (either.Either), or the outcome
// of a computation that can fail (try.Try), together with combinators that
// compose many such containers without branching on success or failure at
// every step.
//
// All containers are immutable value types and every operation is a pure
// function over its arguments. Invalid use of the API (nil functions, wrong
// variant extraction) panics at the call site; domain errors flow through the
// failure channel untouched.
package fallible
