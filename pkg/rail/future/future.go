package future

import (
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/railkit/rail/pkg/rail"
)

// Op is a deferred operation that produces a Result when invoked.
type Op[T any] func(ctx context.Context) rail.Result[T]

// ErrNoOperations is returned by Race when called without operations.
var ErrNoOperations = errors.New("future: no operations")

// Parallel runs all ops concurrently and waits for every one to settle.
// On full success the values keep argument order; otherwise the failure
// carries the errors of all failed ops, in argument order.
func Parallel[T any](ctx context.Context, ops ...Op[T]) rail.Result[[]T] {
	results := make([]rail.Result[T], len(ops))
	var wg sync.WaitGroup
	for i, op := range ops {
		i, op := i, op
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = op(ctx)
		}()
	}
	wg.Wait()
	return merge(results)
}

// Race runs all ops concurrently and returns the first success observed by
// completion time. When every op fails, the failure accumulates all errors
// in completion order. Ops still running after a winner settles are not
// cancelled; their results are discarded.
func Race[T any](ctx context.Context, ops ...Op[T]) rail.Result[T] {
	if len(ops) == 0 {
		return rail.Failure[T](ErrNoOperations)
	}
	settled := make(chan rail.Result[T], len(ops))
	for _, op := range ops {
		op := op
		go func() {
			settled <- op(ctx)
		}()
	}

	var merr *multierror.Error
	for range ops {
		r := <-settled
		if r.IsSuccess() {
			return r
		}
		merr = multierror.Append(merr, r.Err())
	}
	return rail.Failure[T](merr.ErrorOrNil())
}

// Sequential runs ops strictly one at a time in argument order, stopping at
// the first failure.
func Sequential[T any](ctx context.Context, ops ...Op[T]) rail.Result[[]T] {
	values := make([]T, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return rail.Failure[[]T](err)
		}
		r := op(ctx)
		if r.IsFailure() {
			return rail.FailureFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Success(values)
}

// Future is a handle to an operation started with Go. The result is
// memoized: Await may be called any number of times, from any goroutine.
type Future[T any] struct {
	done chan struct{}
	res  rail.Result[T]
}

// Go starts op in its own goroutine and returns a handle to await it.
func Go[T any](ctx context.Context, op Op[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.res = op(ctx)
		close(f.done)
	}()
	return f
}

// Await blocks until the operation settles and returns its Result.
func (f *Future[T]) Await() rail.Result[T] {
	<-f.done
	return f.res
}

func merge[T any](results []rail.Result[T]) rail.Result[[]T] {
	var merr *multierror.Error
	values := make([]T, len(results))
	for i, r := range results {
		if r.IsFailure() {
			merr = multierror.Append(merr, r.Err())
			continue
		}
		values[i] = r.Value()
	}
	if err := merr.ErrorOrNil(); err != nil {
		return rail.Failure[[]T](err)
	}
	return rail.Success(values)
}
