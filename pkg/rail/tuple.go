package rail

// Tuple2 pairs two values of independent types.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 groups three values of independent types.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 groups four values of independent types.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Zip2 merges two Results into one carrying a pair, failing with the first
// failure encountered.
func Zip2[A, B any](ra Result[A], rb Result[B]) Result[Tuple2[A, B]] {
	if ra.IsFailure() {
		return FailureFrom[A, Tuple2[A, B]](ra)
	}
	if rb.IsFailure() {
		return FailureFrom[B, Tuple2[A, B]](rb)
	}
	return Success(Tuple2[A, B]{First: ra.Value(), Second: rb.Value()})
}

// Zip3 merges three Results into one carrying a triple, failing with the
// first failure encountered.
func Zip3[A, B, C any](ra Result[A], rb Result[B], rc Result[C]) Result[Tuple3[A, B, C]] {
	if ra.IsFailure() {
		return FailureFrom[A, Tuple3[A, B, C]](ra)
	}
	if rb.IsFailure() {
		return FailureFrom[B, Tuple3[A, B, C]](rb)
	}
	if rc.IsFailure() {
		return FailureFrom[C, Tuple3[A, B, C]](rc)
	}
	return Success(Tuple3[A, B, C]{First: ra.Value(), Second: rb.Value(), Third: rc.Value()})
}
