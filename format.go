package vaxin

import "regexp"

// FormatOptions configures the Format validator.
type FormatOptions struct {
	// Base runs before the pattern match. Defaults to IsString.
	Base Validator

	// Message, when set, replaces the default "has invalid format".
	Message string
}

// Format validates that a string matches the given pattern. The pattern is
// attached to the error metadata under "format" for programmatic
// inspection; it is not interpolated into the message.
func Format(pattern *regexp.Regexp, opts FormatOptions) Validator {
	base := opts.Base
	if base == nil {
		base = IsString
	}
	return Combine(base, func(value any) Result {
		if pattern.MatchString(value.(string)) {
			return Valid(value)
		}
		err := NewError("format", "has invalid format", Meta{
			"kind":   "format",
			"format": pattern,
		})
		if opts.Message != "" {
			err = err.WithMessage(opts.Message)
		}
		return Invalid(err)
	})
}
