// Package validation implements the accumulating variant of the Result
// algebra: instead of short-circuiting at the first failure, independent
// validations collect every error, in order, into one non-empty list.
//
// Key operations:
// - Valid/Invalid: construct a Validation (Invalid always carries >= 1 error)
// - Combine2/Combine3/Combine4: merge independent validations into a tuple
// - Sequence/Traverse: validate homogeneous collections
// - Map/Apply: functor and applicative transforms
// - Object: validate named fields of a record, accumulating per field
// - FromResult/ToResult: convert to and from the short-circuiting Result
package validation
