// Package decode turns serialized payloads (YAML, JSON, TOML) into the
// generic value trees (map[string]any, []any, scalars) that vaxin
// validators operate on.
//
//	doc, err := decode.File("payload.yaml", decode.Options{})
//	if err != nil { ... }
//	conformed, verr := vaxin.Validate(v, doc)
//
// Decoding is deliberately separate from validation: validators are pure
// and never perform I/O.
package decode
