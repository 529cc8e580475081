package pipe

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

// Step is a synchronous pipeline stage.
type Step[T any] func(in T) rail.Result[T]

// StepCtx is a context-aware pipeline stage.
type StepCtx[T any] func(ctx context.Context, in T) rail.Result[T]

// Compose fuses steps into one function that threads each success value to
// the next step and returns the first failure unchanged. It panics when
// called with no steps.
func Compose[T any](steps ...Step[T]) func(in T) rail.Result[T] {
	if len(steps) == 0 {
		panic("pipe: Compose requires at least one step")
	}
	return func(in T) rail.Result[T] {
		res := steps[0](in)
		for _, step := range steps[1:] {
			if res.IsFailure() {
				return res
			}
			res = step(res.Value())
		}
		return res
	}
}

// ComposeCtx is Compose for context-aware steps. Cancellation is checked
// before every step and switches the pipeline to the failure track with the
// context's error.
func ComposeCtx[T any](steps ...StepCtx[T]) func(ctx context.Context, in T) rail.Result[T] {
	if len(steps) == 0 {
		panic("pipe: ComposeCtx requires at least one step")
	}
	return func(ctx context.Context, in T) rail.Result[T] {
		if err := ctx.Err(); err != nil {
			return rail.Failure[T](err)
		}
		res := steps[0](ctx, in)
		for _, step := range steps[1:] {
			if res.IsFailure() {
				return res
			}
			if err := ctx.Err(); err != nil {
				return rail.Failure[T](err)
			}
			res = step(ctx, res.Value())
		}
		return res
	}
}

// Lift adapts a plain step to a context-aware one, ignoring the context.
func Lift[T any](step Step[T]) StepCtx[T] {
	return func(_ context.Context, in T) rail.Result[T] {
		return step(in)
	}
}
