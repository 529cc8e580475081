// Package chain provides a fluent wrapper around Result[T] for building
// eager Railway-Oriented chains from the core combinators.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Then, ThenTry and Map change the value type and are therefore package
// functions; Go methods cannot introduce new type parameters.
package chain
