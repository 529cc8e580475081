package future

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/railkit/rail/pkg/rail"
)

// ErrSuperseded is the failure delivered to debounced calls that were
// replaced by a newer call within the wait window.
var ErrSuperseded = errors.New("future: call superseded by a newer one")

// Debounce wraps fn so that each call restarts a wait window: only the last
// call of a burst actually invokes fn, and its outcome is returned to that
// caller. Earlier callers of the burst get a failure with ErrSuperseded.
//
// The wrapper owns a single timer and pending-delivery slot, replaced on
// each call; this is the only mutable state in the package.
func Debounce[In, Out any](fn func(ctx context.Context, in In) rail.Result[Out], wait time.Duration) func(ctx context.Context, in In) rail.Result[Out] {
	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending chan rail.Result[Out]
	)

	return func(ctx context.Context, in In) rail.Result[Out] {
		slot := make(chan rail.Result[Out], 1)

		mu.Lock()
		if timer != nil {
			timer.Stop()
			pending <- rail.Failure[Out](ErrSuperseded)
		}
		pending = slot
		timer = time.AfterFunc(wait, func() {
			mu.Lock()
			if pending != slot {
				// a newer call took over the window
				mu.Unlock()
				return
			}
			timer = nil
			pending = nil
			mu.Unlock()
			slot <- fn(ctx, in)
		})
		mu.Unlock()

		select {
		case r := <-slot:
			return r
		case <-ctx.Done():
			return rail.Failure[Out](ctx.Err())
		}
	}
}
