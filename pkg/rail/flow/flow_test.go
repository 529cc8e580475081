package flow

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/railkit/rail/pkg/rail"
)

func TestFlow_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	parse := ThenTry(New[string](), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	doubled := Map(parse, func(_ context.Context, n int) int { return n * 2 })

	res := doubled.Run(ctx, "21")
	if !res.IsSuccess() || res.Value() != 42 {
		t.Fatalf("expected 42, got %v / %v", res.Value(), res.Err())
	}
}

func TestFlow_LazyUntilRun(t *testing.T) {
	t.Parallel()

	calls := 0
	f := Then(New[int](), func(_ context.Context, v int) rail.Result[int] {
		calls++
		return rail.Success(v + 1)
	})

	if calls != 0 {
		t.Fatalf("assembling a flow must not execute steps, got %d calls", calls)
	}

	f.Run(context.Background(), 1)
	f.Run(context.Background(), 2)
	if calls != 2 {
		t.Fatalf("expected one execution per run, got %d", calls)
	}
}

func TestFlow_ImmutableAccumulation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	base := Map(New[int](), func(_ context.Context, v int) int { return v + 1 })
	extended := Map(base, func(_ context.Context, v int) int { return v * 10 })

	if res := base.Run(ctx, 1); res.Value() != 2 {
		t.Fatalf("base flow must be unaffected by extension, got %d", res.Value())
	}
	if res := extended.Run(ctx, 1); res.Value() != 20 {
		t.Fatalf("extended flow must include all steps, got %d", res.Value())
	}
}

func TestFlow_ShortCircuit(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	f := Then(
		Then(New[int](), func(_ context.Context, _ int) rail.Result[int] {
			return rail.Failure[int](boom)
		}),
		func(_ context.Context, v int) rail.Result[int] {
			calls++
			return rail.Success(v)
		})

	res := f.Run(context.Background(), 1)
	if !res.IsFailure() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected boom, got %v", res.Err())
	}
	if calls != 0 {
		t.Fatalf("expected no steps after failure, got %d", calls)
	}
}

func TestFlow_From(t *testing.T) {
	t.Parallel()

	f := From(func(_ context.Context, s string) rail.Result[int] {
		return rail.FromTuple(strconv.Atoi(s))
	})

	if res := f.Run(context.Background(), "7"); res.Value() != 7 {
		t.Fatalf("expected 7, got %v", res.Value())
	}
}

func TestFlow_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := Map(New[int](), func(_ context.Context, v int) int {
		t.Errorf("step must not run when context is already cancelled")
		return v
	})

	res := f.Run(ctx, 1)
	if !res.IsFailure() || !rail.IsCancellation(res.Err()) {
		t.Fatalf("expected cancellation failure, got %v", res.Err())
	}
}

func TestFlow_Ensure(t *testing.T) {
	t.Parallel()

	seen := 0
	f := Map(New[int](), func(_ context.Context, v int) int { return v + 1 }).
		Ensure(func(_ context.Context, v int) { seen = v })

	res := f.Run(context.Background(), 4)
	if seen != 5 || res.Value() != 5 {
		t.Fatalf("ensure must observe and pass through, seen=%d value=%d", seen, res.Value())
	}
}
