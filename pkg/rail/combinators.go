package rail

import "context"

// Map transforms the success value with fn; a failure passes through
// unchanged.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	if r.IsFailure() {
		return FailureFrom[In, Out](r)
	}
	return Success(fn(r.Value()))
}

// MapCtx is Map for context-aware transforms. The failure track is passed
// through without invoking fn.
func MapCtx[In, Out any](ctx context.Context, r Result[In], fn func(context.Context, In) Out) Result[Out] {
	if r.IsFailure() {
		return FailureFrom[In, Out](r)
	}
	return Success(fn(ctx, r.Value()))
}

// FlatMap chains a Result-returning function, short-circuiting on failure.
func FlatMap[In, Out any](r Result[In], fn func(In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return FailureFrom[In, Out](r)
	}
	return fn(r.Value())
}

// FlatMapCtx is FlatMap for context-aware functions.
func FlatMapCtx[In, Out any](ctx context.Context, r Result[In], fn func(context.Context, In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return FailureFrom[In, Out](r)
	}
	return fn(ctx, r.Value())
}

// Try chains a function with idiomatic (value, error) returns, switching to
// the failure track when it errors.
func Try[In, Out any](ctx context.Context, r Result[In], fn func(context.Context, In) (Out, error)) Result[Out] {
	if r.IsFailure() {
		return FailureFrom[In, Out](r)
	}
	out, err := fn(ctx, r.Value())
	if err != nil {
		return Failure[Out](err)
	}
	return Success(out)
}

// Fold collapses both tracks into a plain value. It terminates a Result
// chain.
func Fold[In, Out any](r Result[In], onFailure func(error) Out, onSuccess func(In) Out) Out {
	if r.IsFailure() {
		return onFailure(r.Err())
	}
	return onSuccess(r.Value())
}

// Bimap transforms both tracks at once: onSuccess rewraps as success,
// onFailure rewraps as failure.
func Bimap[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) error) Result[Out] {
	if r.IsFailure() {
		return Failure[Out](onFailure(r.Err()))
	}
	return Success(onSuccess(r.Value()))
}

// Tap runs fn for its side effect on success and returns the original
// Result.
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.IsSuccess() {
		fn(r.Value())
	}
	return r
}

// TapCtx is Tap for context-aware side effects.
func TapCtx[T any](ctx context.Context, r Result[T], fn func(context.Context, T)) Result[T] {
	if r.IsSuccess() {
		fn(ctx, r.Value())
	}
	return r
}

// TapErr runs fn for its side effect on failure and returns the original
// Result.
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if r.IsFailure() {
		fn(r.Err())
	}
	return r
}

// MapError rewraps the carried error with fn; a success passes through.
func MapError[T any](r Result[T], fn func(error) error) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return Failure[T](fn(r.Err()))
}

// Recover converts a failure into a success computed from the error.
func Recover[T any](r Result[T], fn func(error) T) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return Success(fn(r.Err()))
}

// RecoverWith converts a failure into whatever Result fn produces, allowing
// a recovery path that may itself fail.
func RecoverWith[T any](r Result[T], fn func(error) Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return fn(r.Err())
}

// OrElse replaces a failure with the Result of fn, ignoring the carried
// error.
func OrElse[T any](r Result[T], fn func() Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return fn()
}

// Filter keeps a success only when pred holds; otherwise it switches to the
// failure track with the error produced by onFalse. Failures pass through.
func Filter[T any](r Result[T], pred func(T) bool, onFalse func(T) error) Result[T] {
	if r.IsFailure() {
		return r
	}
	if pred(r.Value()) {
		return r
	}
	return Failure[T](onFalse(r.Value()))
}
