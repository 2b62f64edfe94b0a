// Package filter defines the typed predicate tree shared by all query
// backends, and the translation engine that walks it.
//
// A predicate is a tree of Expr nodes built with the constructors in
// builders.go:
//
//	f := filter.And(
//	    filter.Ge(filter.Prop("Age"), filter.Const(int64(21))),
//	    filter.Eq(filter.Prop("Active"), filter.Const(true)),
//	)
//
// Property references resolve against a schema.CollectionModel by
// logical name; translated artifacts always carry the storage name.
// Two reference shapes are supported: static member access
// (filter.Prop) and string-keyed access for dictionary-shaped records
// (filter.Key).
//
// # Translation
//
// Translate drives the generic walk over a normalized tree and
// delegates leaf construction to a Backend implementation:
//
//	q, err := filter.Translate[search.Query](model, f, search.NewTranslator())
//
// The walk owns node dispatch, property binding, operand-shape
// validation, and the null-comparison and membership rewrites; backends
// only render terms, ranges, null tests, membership groups, and boolean
// combinators in their target syntax. Adding a backend means
// implementing the Backend interface, not re-deriving the semantics.
//
// Normalization (Normalize) runs first: captured external variables are
// materialized into inline constants, and nullable lifts of constants
// are dropped. Both backends emit literal-valued leaves, never
// late-bound placeholders. Conversions wrapping property references are
// left in place for the binder, which validates every cast target
// against the property's declared type before peeling it.
//
// # Membership
//
// Two Contains shapes translate, and only these two:
//
//	filter.ContainsValue(filter.Prop("Tags"), "beta")   // collection property contains constant
//	filter.In(filter.Prop("Name"), "Ritz", "Savoy")     // property value in constant list
//
// Anything else — runtime collections, computed items — fails with
// ErrUnsupportedMembershipShape.
//
// # Errors
//
// All translation errors wrap one of the sentinel errors in errors.go,
// so callers can match with errors.Is while the message names the
// offending property, node kind, or value type. Any error aborts the
// whole translation; no partial artifact is ever returned.
//
// # Evaluation
//
// Evaluate runs a predicate directly against an in-memory document and
// mirrors the translation semantics exactly. It is the reference oracle
// the backend tests compare their artifacts against.
package filter
