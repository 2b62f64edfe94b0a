package search

import (
	"time"
)

// Query is the search-index query artifact: a tree of composable,
// immutable nodes a search request embeds next to its vector clause.
// Adapters convert it to their native query representation.
type Query interface {
	// isQuery is a marker method to keep the node set sealed
	isQuery()

	// Matches evaluates the node against an in-memory document keyed by
	// storage name. Adapters never call it; it backs equivalence tests
	// and the in-memory fallback store.
	Matches(doc map[string]any) bool
}

// BooleanQuery combines sub-queries: all of Must, at least one of
// Should, none of MustNot. Used both for AND/OR/NOT combinators and for
// the membership OR-group.
type BooleanQuery struct {
	Must    []Query `json:"must,omitempty"`
	Should  []Query `json:"should,omitempty"`
	MustNot []Query `json:"mustNot,omitempty"`
}

func (*BooleanQuery) isQuery() {}

// TermQuery matches documents whose field holds the exact value. For
// collection-typed fields a document matches when any element equals
// the value.
type TermQuery struct {
	Field string `json:"field"`
	Value any    `json:"term"`
}

func (*TermQuery) isQuery() {}

// NumericRangeQuery matches documents whose numeric field falls inside
// the configured bounds. Translation sets exactly one bound per
// comparison; unset bounds stay nil.
type NumericRangeQuery struct {
	Field        string   `json:"field"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	InclusiveMin bool     `json:"inclusiveMin,omitempty"`
	InclusiveMax bool     `json:"inclusiveMax,omitempty"`
}

func (*NumericRangeQuery) isQuery() {}

// DateRangeQuery is the datetime counterpart of NumericRangeQuery.
type DateRangeQuery struct {
	Field          string     `json:"field"`
	Start          *time.Time `json:"start,omitempty"`
	End            *time.Time `json:"end,omitempty"`
	InclusiveStart bool       `json:"inclusiveStart,omitempty"`
	InclusiveEnd   bool       `json:"inclusiveEnd,omitempty"`
}

func (*DateRangeQuery) isQuery() {}

// WildcardQuery matches documents whose field value matches a wildcard
// pattern. The translator only emits the bare "*" pattern, which the
// index treats as "field has a value"; negating it is the null-equality
// idiom for indexes that cannot test absence directly.
type WildcardQuery struct {
	Field    string `json:"field"`
	Wildcard string `json:"wildcard"`
}

func (*WildcardQuery) isQuery() {}
