package vaxin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kraftjectory/vaxin/internal/ident"
)

// positionKind discriminates the two flavors of path steps.
type positionKind int

const (
	keyPosition positionKind = iota
	indexPosition
)

// Position records one step of the path from the validation root to the
// value that failed: either a key looked up in a map-like record, or an
// index into an ordered collection.
type Position struct {
	kind  positionKind
	key   any
	index int
}

// KeyPosition returns a key position for the given record key.
func KeyPosition(key any) Position {
	return Position{kind: keyPosition, key: key}
}

// IndexPosition returns an index position for the given element index.
func IndexPosition(index int) Position {
	return Position{kind: indexPosition, index: index}
}

// IsKey reports whether the position is a record key.
func (p Position) IsKey() bool {
	return p.kind == keyPosition
}

// IsIndex reports whether the position is a collection index.
func (p Position) IsIndex() bool {
	return p.kind == indexPosition
}

// Key returns the record key. Only meaningful when IsKey.
func (p Position) Key() any {
	return p.key
}

// Index returns the element index. Only meaningful when IsIndex.
func (p Position) Index() int {
	return p.index
}

// String renders the position the way it appears in error messages:
// indexes as "[N]", keys as bare identifiers when possible, quoted
// otherwise.
func (p Position) String() string {
	if p.kind == indexPosition {
		return "[" + strconv.Itoa(p.index) + "]"
	}
	text := fmt.Sprint(p.key)
	if ident.Bare(text) {
		return text
	}
	return strconv.Quote(text)
}

// Meta holds validator-specific error attributes. The same map serves as
// the binding environment for message template interpolation and as
// structured failure classification (the "kind" entry names the failure
// family).
type Meta map[string]any

// Error describes a single validation failure. It is created at the exact
// point a validator rejects a value and is enriched, never replaced, as it
// bubbles out through enclosing structural validators: each layer prepends
// its own position, so Positions always reads outermost-first.
//
// Error values are treated as immutable; WithPosition and WithMessage
// return enriched copies.
type Error struct {
	// Validator identifies which validator produced the failure, e.g.
	// "number", "string_length", "required".
	Validator string

	// Message is a template, possibly containing %{name} tokens resolved
	// against Meta when the error is rendered.
	Message string

	// Positions is the breadcrumb path from the validation root down to
	// the failing value, outermost-first.
	Positions []Position

	// Meta carries interpolation bindings and classification attributes.
	Meta Meta
}

// NewError constructs a validation error with no positions. meta may be nil.
func NewError(validator, message string, meta Meta) *Error {
	if meta == nil {
		meta = Meta{}
	}
	return &Error{
		Validator: validator,
		Message:   message,
		Meta:      meta,
	}
}

func newCustomError(format string, args ...any) *Error {
	return NewError("custom", fmt.Sprintf(format, args...), nil)
}

// WithPosition returns a copy of the error with one more position
// prepended. Structural validators call this while a failure bubbles
// outward, so the outermost position ends up first.
func (e *Error) WithPosition(p Position) *Error {
	clone := *e
	clone.Positions = append([]Position{p}, e.Positions...)
	return &clone
}

// WithMessage returns a copy of the error with the message template
// replaced. Meta is kept, so the new template may interpolate the same
// tokens as the original.
func (e *Error) WithMessage(message string) *Error {
	clone := *e
	clone.Message = message
	return &clone
}

// Error renders the failure as a human-readable string: the breadcrumb
// path (when any position exists) followed by the interpolated message.
//
// Referencing a %{name} token that is absent from Meta is a programming
// error in the validator that supplied the template, and panics.
func (e *Error) Error() string {
	message := interpolate(e.Message, e.Meta)
	if len(e.Positions) == 0 {
		return message
	}
	return renderPath(e.Positions) + " " + message
}

var messageToken = regexp.MustCompile(`%\{[A-Za-z_][A-Za-z0-9_]*\}`)

// interpolate substitutes %{name} tokens with their Meta bindings.
func interpolate(template string, meta Meta) string {
	return messageToken.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-1]
		value, ok := meta[name]
		if !ok {
			panic(fmt.Sprintf("vaxin: message template %q references unknown metadata key %q", template, name))
		}
		return fmt.Sprint(value)
	})
}

// renderPath joins positions left to right. A key position following
// another position is joined with ".", an index position with nothing:
// [key:data, index:3, key:foo] renders as "data[3].foo".
func renderPath(positions []Position) string {
	var b strings.Builder
	for i, p := range positions {
		if i > 0 && p.IsKey() {
			b.WriteByte('.')
		}
		b.WriteString(p.String())
	}
	return b.String()
}
