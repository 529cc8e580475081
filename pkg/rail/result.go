package rail

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilFailure replaces a nil error passed to Failure so a failed Result
// can never be mistaken for a success.
var ErrNilFailure = errors.New("rail: failure constructed with nil error")

// Result holds the outcome of a computation: either a success value or an
// error, never both. The variant is fixed at construction.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Success wraps v in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps err in a failed Result. A nil err is normalized to
// ErrNilFailure.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a failed Result, keeping its identity, creation time
// and error. It panics when called on a success; pass-through of the failure
// track is its only purpose.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.ok {
		panic("rail: FailureFrom called on a success")
	}
	return Result[Out]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromTuple converts a standard (value, error) pair into a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// IsSuccess reports whether the Result is on the success track.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result is on the failure track.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value (zero value on failure).
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error, nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap exposes the Result as an idiomatic (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// GetOrElse returns the success value or fallback on failure.
func (r Result[T]) GetOrElse(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// GetOrElseWith returns the success value or lazily computes a fallback from
// the carried error.
func (r Result[T]) GetOrElseWith(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// ID returns the Result identity assigned at construction.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the UTC creation time.
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
