// Package future orchestrates Result-returning operations with concurrency
// and timing policies.
//
// Key constructs:
// - Op: a context-aware operation producing a Result
// - Parallel/Race/Sequential: fan-out and ordering policies
// - Batch: bounded-concurrency execution with positional results
// - Retry: attempt policy with linear or exponential backoff
// - WithTimeout: race an operation against a deadline
// - Debounce: coalesce bursts of calls into the last one
// - Go/Future: start an operation and await it later
//
// None of the helpers force-cancel losing operations; a straggler runs to
// completion in the background and its result is discarded. Callers who
// need hard cancellation should derive and cancel their own context.
package future
