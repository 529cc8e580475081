package chain

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

// Chain wraps a rail.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result
func Start[T any](ctx context.Context, res rail.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: rail.Success(value)}
}

// Result returns the underlying rail.Result
func (c *Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Then chains a function that returns rail.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rail.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: rail.FlatMapCtx(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: rail.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: rail.MapCtx(c.ctx, c.res, onSuccess),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: rail.TapCtx(c.ctx, c.res, onSuccess),
	}
}

// Filter keeps the chain on the success track only while pred holds
func (c *Chain[T]) Filter(pred func(context.Context, T) bool, onFalse func(T) error) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: rail.Filter(c.res, func(v T) bool { return pred(c.ctx, v) }, onFalse),
	}
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}
