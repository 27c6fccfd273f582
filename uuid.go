package vaxin

import "github.com/google/uuid"

// UUIDOptions configures the UUID validator.
type UUIDOptions struct {
	// Base runs before parsing. Defaults to IsString.
	Base Validator

	// Message, when set, replaces the default "must be a valid UUID".
	Message string
}

// UUID validates that the value is a string holding an RFC 4122 UUID and
// conforms it to the canonical lowercase hyphenated form.
func UUID(opts UUIDOptions) Validator {
	base := opts.Base
	if base == nil {
		base = IsString
	}
	return Combine(base, func(value any) Result {
		id, err := uuid.Parse(value.(string))
		if err != nil {
			verr := NewError("uuid", "must be a valid UUID", Meta{"kind": "uuid"})
			if opts.Message != "" {
				verr = verr.WithMessage(opts.Message)
			}
			return Invalid(verr)
		}
		return Valid(id.String())
	})
}
