package vaxin

// Schema builds a record validator key by key with a fluent interface.
// The zero Schema is not usable; start with NewSchema.
//
//	v := vaxin.NewSchema().
//	    Required("id", vaxin.IsInteger).
//	    Optional("note", vaxin.IsString).
//	    Default("tags", vaxin.Each(vaxin.IsString, vaxin.EachOptions{}), []any{}).
//	    Validator()
//
// Keys are validated in the order they were added, and the first failure
// stops the chain.
type Schema struct {
	base Validator
	keys []Validator
}

// NewSchema creates a Schema whose base check is IsMap.
func NewSchema() *Schema {
	return &Schema{base: IsMap}
}

// WithBase replaces the schema's base validator.
func (s *Schema) WithBase(base Validator) *Schema {
	s.base = base
	return s
}

// Required adds a mandatory key.
func (s *Schema) Required(key any, value Validator) *Schema {
	return s.Key(key, value, KeyOptions{Required: true})
}

// Optional adds a key that may be missing.
func (s *Schema) Optional(key any, value Validator) *Schema {
	return s.Key(key, value, KeyOptions{})
}

// Default adds an optional key whose value defaults to def when missing.
func (s *Schema) Default(key any, value Validator, def any) *Schema {
	return s.Key(key, value, KeyOptions{Default: Some(def)})
}

// Key adds a key with full control over its options.
func (s *Schema) Key(key any, value Validator, opts KeyOptions) *Schema {
	opts.Base = Noop() // the schema's base already ran
	s.keys = append(s.keys, Key(key, value, opts))
	return s
}

// Validator returns the composed validator for the whole record.
func (s *Schema) Validator() Validator {
	return AllOf(append([]Validator{s.base}, s.keys...)...)
}

// Validate composes the schema and applies it to value.
func (s *Schema) Validate(value any) (any, *Error) {
	return Validate(s.Validator(), value)
}
