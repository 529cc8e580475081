package flow

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

// Flow is a lazy pipeline from In to Out. The zero value is not usable;
// start with New.
type Flow[In, Out any] struct {
	run func(ctx context.Context, in In) rail.Result[Out]
}

// New creates an identity Flow to hang steps on.
func New[T any]() Flow[T, T] {
	return Flow[T, T]{
		run: func(ctx context.Context, in T) rail.Result[T] {
			if err := ctx.Err(); err != nil {
				return rail.Failure[T](err)
			}
			return rail.Success(in)
		},
	}
}

// From creates a Flow whose first step is the given function.
func From[In, Out any](step func(ctx context.Context, in In) rail.Result[Out]) Flow[In, Out] {
	return Flow[In, Out]{
		run: func(ctx context.Context, in In) rail.Result[Out] {
			if err := ctx.Err(); err != nil {
				return rail.Failure[Out](err)
			}
			return step(ctx, in)
		},
	}
}

// Then appends a Result-returning step, producing a new Flow. The receiver
// Flow is unaffected.
func Then[In, Mid, Out any](f Flow[In, Mid], step func(ctx context.Context, in Mid) rail.Result[Out]) Flow[In, Out] {
	prev := f.run
	return Flow[In, Out]{
		run: func(ctx context.Context, in In) rail.Result[Out] {
			return rail.FlatMapCtx(ctx, prev(ctx, in), step)
		},
	}
}

// Map appends a pure transformation step, producing a new Flow.
func Map[In, Mid, Out any](f Flow[In, Mid], fn func(ctx context.Context, in Mid) Out) Flow[In, Out] {
	prev := f.run
	return Flow[In, Out]{
		run: func(ctx context.Context, in In) rail.Result[Out] {
			return rail.MapCtx(ctx, prev(ctx, in), fn)
		},
	}
}

// ThenTry appends a (value, error) step, producing a new Flow.
func ThenTry[In, Mid, Out any](f Flow[In, Mid], fn func(ctx context.Context, in Mid) (Out, error)) Flow[In, Out] {
	prev := f.run
	return Flow[In, Out]{
		run: func(ctx context.Context, in In) rail.Result[Out] {
			return rail.Try(ctx, prev(ctx, in), fn)
		},
	}
}

// Ensure appends a success-side side effect, producing a new Flow.
func (f Flow[In, Out]) Ensure(fn func(ctx context.Context, v Out)) Flow[In, Out] {
	prev := f.run
	return Flow[In, Out]{
		run: func(ctx context.Context, in In) rail.Result[Out] {
			return rail.TapCtx(ctx, prev(ctx, in), fn)
		},
	}
}

// Run executes the accumulated steps against in.
func (f Flow[In, Out]) Run(ctx context.Context, in In) rail.Result[Out] {
	return f.run(ctx, in)
}
