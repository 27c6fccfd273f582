package vaxin

import "reflect"

// KeyOptions configures the Key validator.
type KeyOptions struct {
	// Base validates the record before the key is looked up. Defaults to
	// IsMap, so a non-map value reports "must be a map" and the lookup
	// never runs.
	Base Validator

	// Required makes a missing key fail with "is required". When false
	// the key is optional and a missing key succeeds with the record
	// unchanged.
	Required bool

	// Default, when set on an optional key, is written into the record
	// when the key is missing. The default is not re-validated.
	Default Optional[any]

	// Message, when set, replaces the message of whatever error the key
	// produces: the value validator's failure, or the "is required"
	// failure itself.
	Message string
}

// Key validates the value stored under key in a map-like record. On
// success the conformed value replaces the original in a shallow copy of
// the record; the input record is never mutated. On failure the key is
// prepended to the error's breadcrumb path.
func Key(key any, valueValidator Validator, opts KeyOptions) Validator {
	base := opts.Base
	if base == nil {
		base = IsMap
	}
	return Combine(base, func(record any) Result {
		rv := reflect.ValueOf(record)
		if rv.Kind() != reflect.Map {
			// The default base rejects non-maps already; guard for
			// callers that override it with a pass-through.
			return IsMap(record)
		}
		entry, present := lookup(rv, key)

		if !present {
			if opts.Required {
				message := "is required"
				if opts.Message != "" {
					message = opts.Message
				}
				err := NewError("required", message, Meta{"kind": "required"})
				return Invalid(err.WithPosition(KeyPosition(key)))
			}
			if def, set := opts.Default.Get(); set {
				return Valid(withEntry(rv, key, def))
			}
			return Valid(record)
		}

		conformed, err := Validate(valueValidator, entry)
		if err != nil {
			if opts.Message != "" {
				err = err.WithMessage(opts.Message)
			}
			return Invalid(err.WithPosition(KeyPosition(key)))
		}
		return Valid(withEntry(rv, key, conformed))
	})
}

// lookup fetches record[key], reporting whether the key is present. A key
// whose type cannot index the record's map type counts as absent.
func lookup(record reflect.Value, key any) (any, bool) {
	kv := reflect.ValueOf(key)
	if !kv.IsValid() || !kv.Type().AssignableTo(record.Type().Key()) {
		return nil, false
	}
	entry := record.MapIndex(kv)
	if !entry.IsValid() {
		return nil, false
	}
	return entry.Interface(), true
}

// withEntry returns a shallow copy of the record with key set to value.
func withEntry(record reflect.Value, key, value any) any {
	out := reflect.MakeMapWithSize(record.Type(), record.Len()+1)
	iter := record.MapRange()
	for iter.Next() {
		out.SetMapIndex(iter.Key(), iter.Value())
	}
	out.SetMapIndex(reflect.ValueOf(key), entryValue(record.Type().Elem(), value))
	return out.Interface()
}

// entryValue adapts a conformed value to the record's element type,
// converting when necessary (e.g. an int64 conformed into a map[string]int).
func entryValue(elemType reflect.Type, value any) reflect.Value {
	if value == nil {
		return reflect.Zero(elemType)
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(elemType) {
		return rv
	}
	if rv.Type().ConvertibleTo(elemType) {
		return rv.Convert(elemType)
	}
	panic("vaxin: conformed value of type " + rv.Type().String() +
		" cannot be stored as a " + elemType.String() + " record entry")
}
