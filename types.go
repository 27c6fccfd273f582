package vaxin

// Validator checks a single input value and either conforms it (possibly
// transforming it along the way) or rejects it with a structured *Error.
// Validators are plain function values: they can be stored, passed around,
// and composed with Combine, AllOf, and the structural validators. A
// validator must never mutate its argument; conforming a nested value
// always produces an updated copy.
type Validator func(value any) Result

// Result is the outcome of applying a Validator to one value.
// Construct results with Valid, Invalid, or Invalidf.
type Result struct {
	value any
	err   *Error
}

// Valid returns a successful Result carrying the conformed value.
func Valid(value any) Result {
	return Result{value: value}
}

// Invalid returns a failed Result carrying a structured error.
func Invalid(err *Error) Result {
	return Result{err: err}
}

// Invalidf returns a failed Result from a plain message. The error is
// tagged with the "custom" identity and carries no metadata; use Invalid
// with NewError when the failure should expose structured details.
func Invalidf(format string, args ...any) Result {
	return Result{err: newCustomError(format, args...)}
}

// Ok reports whether the result is a success.
func (r Result) Ok() bool {
	return r.err == nil
}

// Value returns the conformed value. It is only meaningful when Ok.
func (r Result) Value() any {
	return r.value
}

// Err returns the structured error, or nil on success.
func (r Result) Err() *Error {
	return r.err
}

// Predicate adapts a plain boolean check into a Validator. On success the
// input is conformed unchanged; on failure the error carries the generic
// "is invalid" message. Prefer the exported standard predicates (IsString,
// IsInteger, ...) when one fits, since they carry specific messages.
func Predicate(check func(value any) bool) Validator {
	return func(value any) Result {
		if check(value) {
			return Valid(value)
		}
		return Invalid(NewError("predicate", "is invalid", Meta{"kind": "predicate"}))
	}
}

// Optional distinguishes "not set" from "zero value" in validator options.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some wraps a value in a set Optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
