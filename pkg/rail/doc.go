// Package rail implements the core Result type for Railway Oriented
// Programming: a computation either stays on the success track or switches
// to the failure track, and combinators route values between the two.
//
// Key operations:
// - Success/Failure/FromTuple: construct a Result
// - Map/FlatMap/Try and their Ctx variants: transform the success track
// - MapError/Recover/RecoverWith/OrElse: operate on the failure track
// - Tap/TapErr: side effects that leave the Result untouched
// - Fold: collapse both tracks into a plain value
//
// Results are immutable: every combinator returns a fresh value or passes
// the original through unchanged. Business failures travel in the failure
// channel and never panic; only contract violations do.
package rail
