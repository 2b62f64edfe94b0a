// Package sqlpp renders predicates as SQL-like WHERE-clause fragments.
//
// The artifact is a single string with every sub-expression fully
// parenthesized, so embedding it never depends on the target language's
// precedence rules:
//
//	w, err := sqlpp.Translate(model, filter.And(
//	    filter.Ge(filter.Prop("Age"), filter.Const(int64(21))),
//	    filter.Eq(filter.Prop("Active"), filter.Const(true)),
//	))
//	// ((Age >= 21) AND (Active = TRUE))
//
// Literals render inline: strings single-quoted with embedded quotes
// doubled, numerics in invariant round-trippable form, datetimes and
// UUIDs as quoted canonical strings. Null comparisons become
// IS [NOT] NULL; membership renders as IN over a literal list.
//
// The default dialect targets a SQL++-style language with array
// brackets for membership. TranslateDialect with the Postgres dialect
// quotes identifiers, uses parenthesized lists, and renders containment
// on collection-typed properties as a jsonb @> test, producing
// fragments the relational adapter executes verbatim.
package sqlpp
