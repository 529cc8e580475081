package rail

import "time"

// Outcome is the read side of a Result, for consumers that only need to
// observe a finished computation.
type Outcome[T any] interface {
	// Value returns the successful value
	Value() T
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}
