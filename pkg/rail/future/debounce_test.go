package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/railkit/rail/pkg/rail"
)

func TestDebounce_CoalescesBurst(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	invoked := make([]string, 0, 1)

	fn := func(_ context.Context, in string) rail.Result[string] {
		mu.Lock()
		invoked = append(invoked, in)
		mu.Unlock()
		return rail.Success("ran:" + in)
	}

	debounced := Debounce(fn, 50*time.Millisecond)

	results := make([]rail.Result[string], 3)
	var wg sync.WaitGroup
	for i, arg := range []string{"first", "second", "third"} {
		i, arg := i, arg
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = debounced(context.Background(), arg)
		}()
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(invoked) != 1 || invoked[0] != "third" {
		t.Fatalf("expected only the last call to reach fn, got %v", invoked)
	}

	superseded := 0
	for _, r := range results {
		if r.IsFailure() && errors.Is(r.Err(), ErrSuperseded) {
			superseded++
			continue
		}
		if !r.IsSuccess() || r.Value() != "ran:third" {
			t.Fatalf("expected final call to carry fn's result, got %v / %v", r.Value(), r.Err())
		}
	}
	if superseded != 2 {
		t.Fatalf("expected 2 superseded calls, got %d", superseded)
	}
}

func TestDebounce_SingleCall(t *testing.T) {
	t.Parallel()

	fn := func(_ context.Context, in int) rail.Result[int] {
		return rail.Success(in * 2)
	}
	debounced := Debounce(fn, 10*time.Millisecond)

	res := debounced(context.Background(), 21)
	if !res.IsSuccess() || res.Value() != 42 {
		t.Fatalf("expected 42, got %v / %v", res.Value(), res.Err())
	}
}

func TestDebounce_SeparateBursts(t *testing.T) {
	t.Parallel()

	calls := 0
	var mu sync.Mutex
	fn := func(_ context.Context, in int) rail.Result[int] {
		mu.Lock()
		calls++
		mu.Unlock()
		return rail.Success(in)
	}
	debounced := Debounce(fn, 5*time.Millisecond)

	first := debounced(context.Background(), 1)
	second := debounced(context.Background(), 2)

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Fatalf("separated calls must each invoke fn, got %d", calls)
	}
	if first.Value() != 1 || second.Value() != 2 {
		t.Fatalf("each burst must resolve with its own value")
	}
}

func TestDebounce_CancelledCaller(t *testing.T) {
	t.Parallel()

	fn := func(_ context.Context, in int) rail.Result[int] {
		return rail.Success(in)
	}
	debounced := Debounce(fn, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(time.Millisecond)
		cancel()
	}()

	res := debounced(ctx, 1)
	if !res.IsFailure() || !rail.IsCancellation(res.Err()) {
		t.Fatalf("expected cancellation failure, got %v", res.Err())
	}
}
