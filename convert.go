package vaxin

import (
	"fmt"
	"strconv"
)

// ParseInteger validates that the value is a string holding a base-10
// integer and conforms it to an int64.
func ParseInteger() Validator {
	return Combine(IsString, func(value any) Result {
		n, err := strconv.ParseInt(value.(string), 10, 64)
		if err != nil {
			return Invalid(NewError("parse_integer", "must be a valid integer", Meta{"kind": "parse_integer"}))
		}
		return Valid(n)
	})
}

// ParseFloat validates that the value is a string holding a decimal number
// and conforms it to a float64.
func ParseFloat() Validator {
	return Combine(IsString, func(value any) Result {
		n, err := strconv.ParseFloat(value.(string), 64)
		if err != nil {
			return Invalid(NewError("parse_float", "must be a valid number", Meta{"kind": "parse_float"}))
		}
		return Valid(n)
	})
}

// Stringify conforms any value to its display string form. It never fails.
func Stringify() Validator {
	return Transform(nil, func(value any) any {
		return fmt.Sprint(value)
	})
}
