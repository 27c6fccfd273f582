package vaxin

import "reflect"

// EachOptions configures the Each validator.
type EachOptions struct {
	// Base validates the collection before enumeration. Defaults to Noop;
	// pass IsSlice to get a "must be a list" failure on non-collections.
	Base Validator

	// SkipInvalid drops failing elements silently instead of failing the
	// whole collection. No error is constructed for skipped elements.
	SkipInvalid bool

	// Into selects the output container the conformed elements are
	// collected into. Defaults to ToSlice.
	Into Collector

	// Message, when set, replaces the failing element's error message.
	Message string
}

// Each validates every element of an ordered collection with
// elementValidator, folding left to right from index 0. Conformed elements
// are collected into the container selected by Into. Without SkipInvalid
// the first failing element stops the fold, and its index is prepended to
// the error's breadcrumb path. An empty collection succeeds with an empty
// container.
func Each(elementValidator Validator, opts EachOptions) Validator {
	base := opts.Base
	if base == nil {
		base = Noop()
	}
	into := opts.Into
	if into == nil {
		into = ToSlice()
	}
	return Combine(base, func(value any) Result {
		rv := reflect.ValueOf(value)
		if kind := rv.Kind(); kind != reflect.Slice && kind != reflect.Array {
			// The default base is a pass-through, so guard here as well.
			return IsSlice(value)
		}

		acc := into.Empty()
		for i := 0; i < rv.Len(); i++ {
			conformed, err := Validate(elementValidator, rv.Index(i).Interface())
			if err != nil {
				if opts.SkipInvalid {
					continue
				}
				if opts.Message != "" {
					err = err.WithMessage(opts.Message)
				}
				return Invalid(err.WithPosition(IndexPosition(i)))
			}
			acc = into.Insert(acc, conformed)
		}
		return Valid(into.Finalize(acc))
	})
}
