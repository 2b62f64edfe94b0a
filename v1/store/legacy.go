package store

import (
	"github.com/harbourml/vectorstore/v1/filter"
)

// Legacy filter clauses, kept for callers that predate the predicate
// tree API. Each clause is a thin adapter that builds the equivalent
// predicate, so both paths run through the same translation engine and
// share its diagnostics.

// Clause is a legacy flat filter condition.
type Clause interface {
	// Predicate returns the equivalent predicate tree.
	Predicate() filter.Expr
}

// EqualTo matches records whose property equals a value.
type EqualTo struct {
	Field string
	Value any
}

func (c EqualTo) Predicate() filter.Expr {
	return filter.Eq(filter.Prop(c.Field), filter.Const(c.Value))
}

// AnyTagEqualTo matches records whose collection-typed property
// contains a value.
type AnyTagEqualTo struct {
	Field string
	Value any
}

func (c AnyTagEqualTo) Predicate() filter.Expr {
	return filter.ContainsValue(filter.Prop(c.Field), c.Value)
}

// CombineClauses folds legacy clauses into a single AND-combined
// predicate. Returns nil for an empty clause list (no filtering).
func CombineClauses(clauses ...Clause) filter.Expr {
	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return clauses[0].Predicate()
	default:
		e := clauses[0].Predicate()
		for _, c := range clauses[1:] {
			e = filter.And(e, c.Predicate())
		}
		return e
	}
}
