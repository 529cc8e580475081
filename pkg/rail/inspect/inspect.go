package inspect

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/pipe"
)

// Step decorates a synchronous step so every invocation logs its outcome.
func Step[T any](logger hclog.Logger, name string, step pipe.Step[T]) pipe.Step[T] {
	return func(in T) rail.Result[T] {
		return observe(logger, name, step(in))
	}
}

// StepCtx decorates a context-aware step so every invocation logs its
// outcome.
func StepCtx[T any](logger hclog.Logger, name string, step pipe.StepCtx[T]) pipe.StepCtx[T] {
	return func(ctx context.Context, in T) rail.Result[T] {
		return observe(logger, name, step(ctx, in))
	}
}

// Op decorates an orchestrated operation so its settlement logs.
func Op[T any](logger hclog.Logger, name string, op func(ctx context.Context) rail.Result[T]) func(ctx context.Context) rail.Result[T] {
	return func(ctx context.Context) rail.Result[T] {
		return observe(logger, name, op(ctx))
	}
}

// Result logs a single Result and returns it unchanged.
func Result[T any](logger hclog.Logger, name string, r rail.Result[T]) rail.Result[T] {
	return observe(logger, name, r)
}

func observe[T any](logger hclog.Logger, name string, r rail.Result[T]) rail.Result[T] {
	if r.IsSuccess() {
		logger.Debug("step succeeded", "step", name, "id", r.ID(), "value", r.Value())
	} else {
		logger.Error("step failed", "step", name, "id", r.ID(), "error", r.Err())
	}
	return r
}
