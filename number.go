package vaxin

// CompareOp enumerates the comparison operators supported by Number.
type CompareOp int

const (
	OpLess CompareOp = iota
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpEqual
	OpNotEqual
)

// NumberCheck is a single comparison against a target number. Build checks
// with LessThan, GreaterThan, and friends.
type NumberCheck struct {
	Op     CompareOp
	Target float64
}

// LessThan requires the value to be strictly less than target.
func LessThan(target float64) NumberCheck {
	return NumberCheck{Op: OpLess, Target: target}
}

// LessThanOrEqualTo requires the value to be at most target.
func LessThanOrEqualTo(target float64) NumberCheck {
	return NumberCheck{Op: OpLessOrEqual, Target: target}
}

// GreaterThan requires the value to be strictly greater than target.
func GreaterThan(target float64) NumberCheck {
	return NumberCheck{Op: OpGreater, Target: target}
}

// GreaterThanOrEqualTo requires the value to be at least target.
func GreaterThanOrEqualTo(target float64) NumberCheck {
	return NumberCheck{Op: OpGreaterOrEqual, Target: target}
}

// EqualTo requires the value to equal target.
func EqualTo(target float64) NumberCheck {
	return NumberCheck{Op: OpEqual, Target: target}
}

// NotEqualTo requires the value to differ from target.
func NotEqualTo(target float64) NumberCheck {
	return NumberCheck{Op: OpNotEqual, Target: target}
}

func (c NumberCheck) holds(value float64) bool {
	switch c.Op {
	case OpLess:
		return value < c.Target
	case OpLessOrEqual:
		return value <= c.Target
	case OpGreater:
		return value > c.Target
	case OpGreaterOrEqual:
		return value >= c.Target
	case OpEqual:
		return value == c.Target
	case OpNotEqual:
		return value != c.Target
	default:
		panic("vaxin: unknown comparison operator")
	}
}

func (c NumberCheck) defaultMessage() string {
	switch c.Op {
	case OpLess:
		return "must be less than %{number}"
	case OpLessOrEqual:
		return "must be less than or equal to %{number}"
	case OpGreater:
		return "must be greater than %{number}"
	case OpGreaterOrEqual:
		return "must be greater than or equal to %{number}"
	case OpEqual:
		return "must be equal to %{number}"
	case OpNotEqual:
		return "must be not equal to %{number}"
	default:
		panic("vaxin: unknown comparison operator")
	}
}

// NumberOptions configures the Number validator.
type NumberOptions struct {
	// Base runs before any comparison. Defaults to IsNumber, so a
	// non-numeric value reports "must be a number" and never reaches the
	// comparisons.
	Base Validator

	// Checks are applied in order against the conformed numeric value;
	// the first failing check short-circuits.
	Checks []NumberCheck

	// Message, when set, replaces the failing check's default message.
	// The %{number} token still interpolates to that check's target.
	Message string
}

// Number validates numeric comparisons against the conformed value.
func Number(opts NumberOptions) Validator {
	base := opts.Base
	if base == nil {
		base = IsNumber
	}
	return Combine(base, func(value any) Result {
		n := asFloat(value)
		for _, check := range opts.Checks {
			if check.holds(n) {
				continue
			}
			err := NewError("number", check.defaultMessage(), Meta{
				"kind":   "number",
				"number": check.Target,
			})
			if opts.Message != "" {
				err = err.WithMessage(opts.Message)
			}
			return Invalid(err)
		}
		return Valid(value)
	})
}
