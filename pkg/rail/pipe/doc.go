// Package pipe composes unary Result-returning steps into a single
// pipeline function with failure short-circuiting.
//
// Two forms are provided:
// - Compose: synchronous steps, plain call, no context
// - ComposeCtx: context-aware steps, cancellation observed between steps
//
// Steps run strictly in order and never concurrently; the first failure
// stops evaluation and becomes the pipeline's outcome. A pipeline needs at
// least one step: composing zero steps is a contract violation and panics
// at composition time, not at invocation time.
//
// For type-changing composition see packages chain (eager) and flow (lazy).
package pipe
