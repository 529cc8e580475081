package future

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/railkit/rail/pkg/rail"
)

// Batch runs ops with at most concurrency operations in flight, keeping
// every result at its original index. After all settle, any failure yields
// a failure accumulating the errors in list order; otherwise the values are
// returned in list order. A concurrency below 1 is clamped to 1.
func Batch[T any](ctx context.Context, ops []Op[T], concurrency int) rail.Result[[]T] {
	if len(ops) == 0 {
		return rail.Success([]T{})
	}
	if concurrency < 1 {
		concurrency = 1
	}

	sem := semaphore.NewWeighted(int64(concurrency))
	results := make([]rail.Result[T], len(ops))
	var wg sync.WaitGroup

	for i, op := range ops {
		i, op := i, op
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = rail.Failure[T](err)
				return
			}
			defer sem.Release(1)
			results[i] = op(ctx)
		}()
	}
	wg.Wait()

	return merge(results)
}
