package vaxin

// Validate applies a validator to a value. It is the single choke point
// every validator invocation passes through, top-level or nested, so error
// normalization is uniform everywhere: the result is either the conformed
// value, or a fully populated *Error.
func Validate(validator Validator, value any) (any, *Error) {
	result := validator(value)
	if err := result.Err(); err != nil {
		return nil, err
	}
	return result.Value(), nil
}

// Combine sequences two validators: v1 runs first, and on success its
// conformed output becomes the input of v2. A failure of v1 propagates
// untouched and v2 never runs. Every other combinator reduces to chains
// of Combine.
func Combine(v1, v2 Validator) Validator {
	return func(value any) Result {
		result := v1(value)
		if !result.Ok() {
			return result
		}
		return v2(result.Value())
	}
}

// AllOf folds validators into their left-to-right composition via Combine:
// all must pass, and the first failure stops the chain. Composing zero
// validators is undefined and panics; use Noop for an explicit pass-through.
func AllOf(validators ...Validator) Validator {
	if len(validators) == 0 {
		panic("vaxin: AllOf requires at least one validator")
	}
	combined := validators[0]
	for _, v := range validators[1:] {
		combined = Combine(combined, v)
	}
	return combined
}

// Noop returns a validator that always succeeds with its input unchanged.
func Noop() Validator {
	return func(value any) Result {
		return Valid(value)
	}
}

// Transform returns a validator that runs the given validator and then
// unconditionally applies mapper to its conformed output. The mapper
// cannot fail; it is meant for pure conversions after the validator has
// already guaranteed the value's shape. A nil validator means Noop.
func Transform(validator Validator, mapper func(value any) any) Validator {
	if validator == nil {
		validator = Noop()
	}
	return Combine(validator, func(value any) Result {
		return Valid(mapper(value))
	})
}
