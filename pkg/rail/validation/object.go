package validation

import (
	"fmt"
	"sort"
)

// Validator checks one field value of a record.
type Validator func(value any) Validation[any]

// Field adapts a typed validation function into a field Validator. A value
// of the wrong dynamic type is rejected with a type error.
func Field[T any](fn func(T) Validation[T]) Validator {
	return func(value any) Validation[any] {
		typed, ok := value.(T)
		if !ok {
			var want T
			return Invalid[any](fmt.Errorf("expected %T, got %T", want, value))
		}
		return Map(fn(typed), func(v T) any { return v })
	}
}

// Object applies each named validator to the correspondingly named field of
// an input record. All field validators run; their errors accumulate, each
// wrapped with its field name. Fields are visited in sorted name order so
// accumulation order is deterministic. Input fields without a validator pass
// through untouched.
func Object(fields map[string]Validator) func(input map[string]any) Validation[map[string]any] {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(input map[string]any) Validation[map[string]any] {
		out := make(map[string]any, len(input))
		for k, v := range input {
			out[k] = v
		}

		var errs []error
		for _, name := range names {
			res := fields[name](input[name])
			if res.IsValid() {
				out[name] = res.Value()
				continue
			}
			for _, err := range res.errs {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return invalid[map[string]any](errs)
		}
		return Valid(out)
	}
}
