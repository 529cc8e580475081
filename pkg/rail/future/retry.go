package future

import (
	"context"
	"math"
	"time"

	"github.com/railkit/rail/pkg/rail"
)

// Backoff selects the wait-time growth strategy between attempts.
type Backoff int

const (
	// BackoffLinear waits delay * attempt before the next try.
	BackoffLinear Backoff = iota
	// BackoffExponential waits delay * factor^(attempt-1) before the next try.
	BackoffExponential
)

// RetryOptions configures Retry. The zero value means 3 attempts, 1s delay,
// linear backoff with factor 2.
type RetryOptions struct {
	MaxAttempts   int
	Delay         time.Duration
	Backoff       Backoff
	BackoffFactor float64
	// OnRetry is invoked with the 1-based attempt number and its error
	// before each wait, never after the final attempt.
	OnRetry func(attempt int, err error)
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Delay <= 0 {
		o.Delay = time.Second
	}
	if o.BackoffFactor <= 0 {
		o.BackoffFactor = 2
	}
	return o
}

func (o RetryOptions) wait(attempt int) time.Duration {
	if o.Backoff == BackoffExponential {
		return time.Duration(float64(o.Delay) * math.Pow(o.BackoffFactor, float64(attempt-1)))
	}
	return o.Delay * time.Duration(attempt)
}

// Retry invokes op up to MaxAttempts times, returning the first success or
// the failure of the final attempt. Waits between attempts respect context
// cancellation.
func Retry[T any](ctx context.Context, op Op[T], opts RetryOptions) rail.Result[T] {
	opts = opts.withDefaults()

	var last rail.Result[T]
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return rail.Failure[T](err)
		}
		last = op(ctx)
		if last.IsSuccess() {
			return last
		}
		if attempt == opts.MaxAttempts {
			break
		}
		if opts.OnRetry != nil {
			opts.OnRetry(attempt, last.Err())
		}
		if !sleep(ctx, opts.wait(attempt)) {
			return rail.Failure[T](ctx.Err())
		}
	}
	return last
}

// sleep waits for d or until ctx is cancelled, reporting whether the full
// wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
