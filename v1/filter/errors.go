package filter

import "errors"

// Translation errors. All of them are raised at the point of detection
// during the recursive walk and abort the whole translation; no partial
// query artifact is ever returned. They indicate a predicate-authoring
// defect, not a transient condition, so callers should surface the
// message verbatim rather than retry.
//
// Sites wrap these sentinels with %w plus the offending property name,
// node kind, or value type, so errors.Is matching and a precise
// diagnostic both work.
var (
	// ErrUnknownProperty is returned when a referenced logical name is
	// absent from the collection model.
	ErrUnknownProperty = errors.New("filter: unknown property")

	// ErrInvalidCast is returned when a conversion wraps a property
	// reference with a type incompatible with its descriptor.
	ErrInvalidCast = errors.New("filter: cast incompatible with property type")

	// ErrUnsupportedNodeKind is returned for tree shapes outside the
	// supported grammar (arithmetic, method calls other than Contains, ...).
	ErrUnsupportedNodeKind = errors.New("filter: unsupported expression node")

	// ErrUnsupportedMembershipShape is returned when a Contains test
	// matches neither supported membership shape.
	ErrUnsupportedMembershipShape = errors.New("filter: unsupported membership shape")

	// ErrUnsupportedLiteralType is returned when a constant's runtime
	// type has no literal-rendering rule.
	ErrUnsupportedLiteralType = errors.New("filter: unsupported literal type")

	// ErrAmbiguousOperand is returned when neither operand of a
	// comparison resolves to a bound property.
	ErrAmbiguousOperand = errors.New("filter: neither comparison operand is a bound property")
)

// IsUnknownProperty checks if the error is an unknown-property error.
func IsUnknownProperty(err error) bool {
	return errors.Is(err, ErrUnknownProperty)
}

// IsUnsupported checks if the error reports a predicate shape or value
// outside the translatable grammar.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedNodeKind) ||
		errors.Is(err, ErrUnsupportedMembershipShape) ||
		errors.Is(err, ErrUnsupportedLiteralType)
}
