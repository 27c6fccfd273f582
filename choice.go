package vaxin

import "reflect"

// ChoiceOptions configures the Inclusion and Exclusion validators.
type ChoiceOptions struct {
	// Base runs before the membership check. Defaults to Noop.
	Base Validator

	// Message, when set, replaces the default message.
	Message string
}

// Inclusion validates that the value is a member of the given set.
// The permitted set is attached to the error metadata under "enum".
func Inclusion(enum []any, opts ChoiceOptions) Validator {
	return choice("inclusion", "is invalid", enum, true, opts)
}

// Exclusion validates that the value is not a member of the given set.
// The forbidden set is attached to the error metadata under "enum".
func Exclusion(enum []any, opts ChoiceOptions) Validator {
	return choice("exclusion", "is reserved", enum, false, opts)
}

func choice(id, message string, enum []any, wantMember bool, opts ChoiceOptions) Validator {
	base := opts.Base
	if base == nil {
		base = Noop()
	}
	return Combine(base, func(value any) Result {
		if isMember(enum, value) == wantMember {
			return Valid(value)
		}
		err := NewError(id, message, Meta{
			"kind": id,
			"enum": enum,
		})
		if opts.Message != "" {
			err = err.WithMessage(opts.Message)
		}
		return Invalid(err)
	})
}

// isMember uses deep equality so enum entries are not limited to
// comparable types.
func isMember(enum []any, value any) bool {
	for _, member := range enum {
		if reflect.DeepEqual(member, value) {
			return true
		}
	}
	return false
}
