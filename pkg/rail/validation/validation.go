package validation

import (
	"github.com/hashicorp/go-multierror"

	"github.com/railkit/rail/pkg/rail"
)

// Validation is a Result whose failure channel holds an ordered, non-empty
// list of errors. The list is never empty: Invalid requires at least one
// error by signature.
type Validation[T any] struct {
	value T
	errs  []error
}

// Valid constructs a successful Validation.
func Valid[T any](value T) Validation[T] {
	return Validation[T]{value: value}
}

// Invalid constructs a failed Validation. The signature forces at least one
// error; nil errors are normalized so the invariant holds.
func Invalid[T any](err error, more ...error) Validation[T] {
	errs := make([]error, 0, 1+len(more))
	errs = append(errs, normalize(err))
	for _, e := range more {
		errs = append(errs, normalize(e))
	}
	return Validation[T]{errs: errs}
}

func normalize(err error) error {
	if err == nil {
		return rail.ErrNilFailure
	}
	return err
}

// invalid builds a failed Validation from an already accumulated list.
// Callers guarantee len(errs) >= 1.
func invalid[T any](errs []error) Validation[T] {
	return Validation[T]{errs: errs}
}

// IsValid reports whether the Validation succeeded.
func (v Validation[T]) IsValid() bool {
	return len(v.errs) == 0
}

// Value returns the validated value (zero value when invalid).
func (v Validation[T]) Value() T {
	return v.value
}

// Errors returns a copy of the accumulated errors, empty for a valid value.
func (v Validation[T]) Errors() []error {
	if len(v.errs) == 0 {
		return []error{}
	}
	out := make([]error, len(v.errs))
	copy(out, v.errs)
	return out
}

// Map transforms the value of a valid Validation; errors pass through.
func Map[In, Out any](v Validation[In], fn func(In) Out) Validation[Out] {
	if !v.IsValid() {
		return invalid[Out](v.errs)
	}
	return Valid(fn(v.value))
}

// Apply performs applicative application: the wrapped function is applied to
// the wrapped value when both sides are valid; otherwise errors accumulate,
// function side first.
func Apply[In, Out any](fn Validation[func(In) Out], v Validation[In]) Validation[Out] {
	if fn.IsValid() && v.IsValid() {
		return Valid(fn.value(v.value))
	}
	return invalid[Out](concat(fn.errs, v.errs))
}

// Combine2 merges two independent validations into a pair, accumulating
// errors from every failing argument in argument order.
func Combine2[A, B any](va Validation[A], vb Validation[B]) Validation[rail.Tuple2[A, B]] {
	if va.IsValid() && vb.IsValid() {
		return Valid(rail.Tuple2[A, B]{First: va.value, Second: vb.value})
	}
	return invalid[rail.Tuple2[A, B]](concat(va.errs, vb.errs))
}

// Combine3 merges three independent validations into a triple, accumulating
// errors in argument order.
func Combine3[A, B, C any](va Validation[A], vb Validation[B], vc Validation[C]) Validation[rail.Tuple3[A, B, C]] {
	if va.IsValid() && vb.IsValid() && vc.IsValid() {
		return Valid(rail.Tuple3[A, B, C]{First: va.value, Second: vb.value, Third: vc.value})
	}
	return invalid[rail.Tuple3[A, B, C]](concat(concat(va.errs, vb.errs), vc.errs))
}

// Combine4 merges four independent validations into a quadruple,
// accumulating errors in argument order.
func Combine4[A, B, C, D any](va Validation[A], vb Validation[B], vc Validation[C], vd Validation[D]) Validation[rail.Tuple4[A, B, C, D]] {
	if va.IsValid() && vb.IsValid() && vc.IsValid() && vd.IsValid() {
		return Valid(rail.Tuple4[A, B, C, D]{First: va.value, Second: vb.value, Third: vc.value, Fourth: vd.value})
	}
	return invalid[rail.Tuple4[A, B, C, D]](concat(concat(concat(va.errs, vb.errs), vc.errs), vd.errs))
}

// Sequence validates a homogeneous list: all valid yields the values in
// original order, otherwise every error accumulates in original order.
func Sequence[T any](items []Validation[T]) Validation[[]T] {
	values := make([]T, 0, len(items))
	var errs []error
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
			continue
		}
		errs = concat(errs, item.errs)
	}
	if len(errs) > 0 {
		return invalid[[]T](errs)
	}
	return Valid(values)
}

// Traverse maps each input through fn and sequences the outcomes.
func Traverse[In, Out any](items []In, fn func(In) Validation[Out]) Validation[[]Out] {
	outs := make([]Validation[Out], 0, len(items))
	for _, item := range items {
		outs = append(outs, fn(item))
	}
	return Sequence(outs)
}

// FromResult lifts a Result into a Validation; a failure becomes a singleton
// error list.
func FromResult[T any](r rail.Result[T]) Validation[T] {
	if r.IsSuccess() {
		return Valid(r.Value())
	}
	return Invalid[T](r.Err())
}

// ToResult collapses a Validation into a Result, joining accumulated errors
// into one. Round-tripping a failed Result through FromResult and back
// therefore yields a failure wrapping a singleton list, not the original
// bare error.
func ToResult[T any](v Validation[T]) rail.Result[T] {
	if v.IsValid() {
		return rail.Success(v.value)
	}
	var merr *multierror.Error
	merr = multierror.Append(merr, v.errs...)
	return rail.Failure[T](merr.ErrorOrNil())
}

func concat(dst []error, src []error) []error {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = make([]error, 0, len(src))
	}
	return append(dst, src...)
}
