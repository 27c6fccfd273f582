package vaxin

// StringLengthOptions configures the StringLength validator. Bounds are
// checked in Exact, Min, Max order, and the first failing bound
// short-circuits.
type StringLengthOptions struct {
	// Base runs before any bound check. Defaults to IsString.
	Base Validator

	// Exact requires the length to be exactly this many bytes.
	Exact Optional[int]

	// Min requires the length to be at least this many bytes.
	Min Optional[int]

	// Max requires the length to be at most this many bytes.
	Max Optional[int]

	// Message, when set, replaces the failing bound's default message.
	// The %{length} token still interpolates to that bound.
	Message string
}

// StringLength validates a string's length in bytes, not characters:
// multi-byte characters count by their encoded byte length, matching
// binary-safe semantics.
func StringLength(opts StringLengthOptions) Validator {
	base := opts.Base
	if base == nil {
		base = IsString
	}
	return Combine(base, func(value any) Result {
		length := len(value.(string))

		check := func(bound Optional[int], holds func(bound int) bool, message string) *Error {
			target, set := bound.Get()
			if !set || holds(target) {
				return nil
			}
			err := NewError("string_length", message, Meta{
				"kind":   "string_length",
				"length": target,
			})
			if opts.Message != "" {
				err = err.WithMessage(opts.Message)
			}
			return err
		}

		if err := check(opts.Exact, func(b int) bool { return length == b }, "must be exactly %{length} byte(s)"); err != nil {
			return Invalid(err)
		}
		if err := check(opts.Min, func(b int) bool { return length >= b }, "must be at least %{length} byte(s)"); err != nil {
			return Invalid(err)
		}
		if err := check(opts.Max, func(b int) bool { return length <= b }, "must be at most %{length} byte(s)"); err != nil {
			return Invalid(err)
		}
		return Valid(value)
	})
}
