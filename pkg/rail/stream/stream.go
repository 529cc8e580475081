package stream

import (
	"context"
	"sync"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/pipe"
)

// Emit feeds values into a channel of successful Results, stopping early
// when ctx is cancelled.
func Emit[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	out := make(chan rail.Result[T])

	go func() {
		defer close(out)
		if ctx.Err() != nil {
			return
		}
		for _, v := range values {
			select {
			case out <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early when ctx is
// cancelled.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Run applies step to every Result on in using the given number of worker
// goroutines. Output order follows completion, not input order.
func Run[T any](ctx context.Context, in <-chan rail.Result[T], step pipe.StepCtx[T], workers int) <-chan rail.Result[T] {
	return Pipe[T, T](ctx, in, step, workers)
}

// Pipe is Run for type-changing stages.
func Pipe[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	step func(ctx context.Context, in In) rail.Result[Out], workers int) <-chan rail.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	apply := func(ctx context.Context, r rail.Result[In]) rail.Result[Out] {
		return rail.FlatMapCtx(ctx, r, step)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, in, out, apply, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// FoldHandlers map both railway tracks to a final value when a stream is
// finalized.
type FoldHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, v In) Out
	OnFailure func(ctx context.Context, err error) Out
}

// Finally folds every Result on in into a plain value using the handlers.
func Finally[In, Out any](ctx context.Context, in <-chan rail.Result[In], handlers FoldHandlers[In, Out]) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				var folded Out
				if r.IsSuccess() {
					folded = handlers.OnSuccess(ctx, r.Value())
				} else {
					folded = handlers.OnFailure(ctx, r.Err())
				}
				select {
				case out <- folded:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func worker[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out],
	apply func(ctx context.Context, r rail.Result[In]) rail.Result[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}
			res := apply(ctx, r)
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
