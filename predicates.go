package vaxin

import "reflect"

// Standard predicate validators. Each pairs a type check with a fixed
// identity and default message, so callers can use them directly or as
// the base of a built-in validator without touching the error model.
var (
	// IsString accepts string values.
	IsString = typeCheck("is_string", "must be a string", func(value any) bool {
		_, ok := value.(string)
		return ok
	})

	// IsInteger accepts values of any Go integer kind.
	IsInteger = typeCheck("is_integer", "must be an integer", isIntegerKind)

	// IsBoolean accepts bool values.
	IsBoolean = typeCheck("is_boolean", "must be a boolean", func(value any) bool {
		_, ok := value.(bool)
		return ok
	})

	// IsFloat accepts float32 and float64 values.
	IsFloat = typeCheck("is_float", "must be a float", isFloatKind)

	// IsNumber accepts values of any integer or float kind.
	IsNumber = typeCheck("is_number", "must be a number", func(value any) bool {
		return isIntegerKind(value) || isFloatKind(value)
	})

	// IsMap accepts values of any map kind.
	IsMap = typeCheck("is_map", "must be a map", func(value any) bool {
		return reflect.ValueOf(value).Kind() == reflect.Map
	})

	// IsSlice accepts values of any slice or array kind.
	IsSlice = typeCheck("is_slice", "must be a list", func(value any) bool {
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Slice || kind == reflect.Array
	})
)

// typeCheck builds a predicate validator with a fixed identity and
// default message.
func typeCheck(id, message string, check func(value any) bool) Validator {
	return func(value any) Result {
		if check(value) {
			return Valid(value)
		}
		return Invalid(NewError(id, message, Meta{"kind": id}))
	}
}

func isIntegerKind(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloatKind(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// asFloat converts any numeric value to float64 for comparisons.
// The caller must have established the value is numeric.
func asFloat(value any) float64 {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		panic("vaxin: asFloat called with non-numeric value")
	}
}
