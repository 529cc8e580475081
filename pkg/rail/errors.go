package rail

import (
	"context"
	"errors"
)

// Errors flattens a possibly aggregated error into its individual parts.
// It understands both the stdlib multi-error shape (errors.Join) and
// hashicorp/go-multierror. A nil error yields an empty slice.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}
	if w, ok := err.(interface{ WrappedErrors() []error }); ok {
		return w.WrappedErrors()
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or an
// expired deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
