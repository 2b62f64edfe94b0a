package schema

import (
	"fmt"
)

// Kind enumerates the value kinds a collection property can declare.
// The set is closed: translators switch over it exhaustively and reject
// anything outside it at model-construction time.
type Kind int

const (
	// KindAny is the unconstrained kind. It is never declared by a
	// property; it only appears as a conversion target (casts to
	// "object" are always compatible).
	KindAny Kind = iota
	KindString
	KindBool
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindDateTime
	KindUUID
)

// String returns a stable label for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal"
	case KindDateTime:
		return "datetime"
	case KindUUID:
		return "uuid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsNumeric reports whether values of this kind support range comparison.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt32, KindInt64, KindFloat32, KindFloat64, KindDecimal:
		return true
	default:
		return false
	}
}

// Type is the declared type of a property or the target of a conversion.
// For collection types, Kind holds the element kind.
type Type struct {
	Kind       Kind
	Nullable   bool
	Collection bool
}

// Of returns a non-nullable scalar type.
func Of(k Kind) Type { return Type{Kind: k} }

// NullableOf returns the nullable form of a scalar kind.
func NullableOf(k Kind) Type { return Type{Kind: k, Nullable: true} }

// CollectionOf returns a collection-of-k type.
func CollectionOf(k Kind) Type { return Type{Kind: k, Collection: true} }

// AnyType is the unconstrained conversion target.
var AnyType = Type{Kind: KindAny}

// IsCollection reports whether the type is an array-like data property.
func (t Type) IsCollection() bool { return t.Collection }

// String returns a stable label for diagnostics.
func (t Type) String() string {
	if t.Collection {
		return "collection<" + t.Kind.String() + ">"
	}
	if t.Nullable {
		return t.Kind.String() + "?"
	}
	return t.Kind.String()
}

// Property describes one logical field of a collection record.
type Property struct {
	// Name is the logical name, unique within a model.
	Name string

	// StorageName is the serialized field name. Defaults to Name when empty.
	StorageName string

	// Type is the declared value type.
	Type Type

	// IsFilterable marks the property as equality/range indexed.
	IsFilterable bool

	// IsFullText marks the property as free-text indexed.
	IsFullText bool
}

// CollectionModel is the immutable schema of one collection: a lookup
// table from logical property name to descriptor, built once at
// collection-construction time. Translators only ever read it, so a
// single model can back concurrent translations without coordination.
type CollectionModel struct {
	name   string
	props  []Property
	byName map[string]*Property
}

// NewModel builds a CollectionModel from property descriptors.
// Logical names must be unique; empty storage names default to the
// logical name.
func NewModel(name string, props ...Property) (*CollectionModel, error) {
	if name == "" {
		return nil, fmt.Errorf("schema: collection name cannot be empty")
	}

	m := &CollectionModel{
		name:   name,
		props:  make([]Property, len(props)),
		byName: make(map[string]*Property, len(props)),
	}

	for i, p := range props {
		if p.Name == "" {
			return nil, fmt.Errorf("schema: property %d of collection %q has no name", i, name)
		}
		if _, exists := m.byName[p.Name]; exists {
			return nil, fmt.Errorf("schema: duplicate property %q in collection %q", p.Name, name)
		}
		if p.StorageName == "" {
			p.StorageName = p.Name
		}
		m.props[i] = p
		m.byName[p.Name] = &m.props[i]
	}

	return m, nil
}

// MustModel is NewModel for statically-known schemas; it panics on error.
func MustModel(name string, props ...Property) *CollectionModel {
	m, err := NewModel(name, props...)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the collection name.
func (m *CollectionModel) Name() string { return m.name }

// Property resolves a logical name to its descriptor.
func (m *CollectionModel) Property(name string) (*Property, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// Properties returns the descriptors in declaration order.
// The returned slice is a copy; the model stays immutable.
func (m *CollectionModel) Properties() []Property {
	out := make([]Property, len(m.props))
	copy(out, m.props)
	return out
}
