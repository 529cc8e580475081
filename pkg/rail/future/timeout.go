package future

import (
	"context"
	"time"

	"github.com/railkit/rail/pkg/rail"
)

// WithTimeout races op against a timer of d. If the timer elapses first the
// outcome is a failure carrying timeoutErr (context.DeadlineExceeded when
// nil); op keeps running in the background and its result is discarded.
func WithTimeout[T any](ctx context.Context, op Op[T], d time.Duration, timeoutErr error) rail.Result[T] {
	if timeoutErr == nil {
		timeoutErr = context.DeadlineExceeded
	}

	settled := make(chan rail.Result[T], 1)
	go func() {
		settled <- op(ctx)
	}()

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case r := <-settled:
		return r
	case <-t.C:
		return rail.Failure[T](timeoutErr)
	case <-ctx.Done():
		return rail.Failure[T](ctx.Err())
	}
}
