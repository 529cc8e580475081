// Package stream lifts the railway combinators over channels so a pipeline
// stage can be applied to a flow of Results with a fixed number of worker
// goroutines.
//
// Common usage:
// - Emit: turn a slice of values into a channel of successful Results
// - Run: apply a stage over a channel with configurable parallelism
// - Pipe: the type-changing form of Run
// - Finally: fold each Result into a plain value on completion
// - Collect: drain an output channel into a slice
//
// Failures ride the channel like any other Result and pass through stages
// untouched; context cancellation stops workers and closes the output.
package stream
