// Package search renders predicates as search-index query trees.
//
// The artifact is a tree of Query nodes — boolean, term, numeric range,
// date range, wildcard — that a search request embeds next to its
// vector clause. The node set mirrors what index engines natively
// understand; adapters convert it to their own representation (see the
// qdrant package).
//
//	q, err := search.Translate(model, filter.And(
//	    filter.Ge(filter.Prop("Rating"), filter.Const(4.0)),
//	    filter.ContainsValue(filter.Prop("Tags"), "beta"),
//	))
//
// Notable renderings:
//   - != wraps the positive term in a boolean MUST_NOT; term leaves
//     have no negative mode.
//   - == NULL negates a bare "*" wildcard: the index cannot test
//     absence directly, so existence is approximated by matching
//     anything and inverted.
//   - membership against a constant list becomes an OR-group of term
//     leaves (SHOULD).
//
// Every node also implements Matches for in-memory evaluation. Adapters
// never call it; it backs the equivalence tests that compare artifacts
// against the predicate oracle in the filter package.
package search
