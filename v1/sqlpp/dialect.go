package sqlpp

import "strings"

// Dialect captures the few syntax points where SQL-like targets
// diverge. The default target is a SQL++-style language with array
// brackets for membership and bare identifiers; the Postgres dialect
// exists so the relational adapter can execute rendered fragments
// verbatim.
type Dialect struct {
	Name string

	// BracketMembership renders IN [a, b] instead of IN (a, b).
	BracketMembership bool

	// QuoteIdentifiers double-quotes storage names.
	QuoteIdentifiers bool

	// JSONContainsMembership renders collection-property containment
	// with the jsonb @> operator instead of IN; collection columns are
	// stored as jsonb on relational targets, where IN would not apply
	// element-wise.
	JSONContainsMembership bool
}

// SQLPlusPlus is the default dialect.
var SQLPlusPlus = Dialect{Name: "sql++", BracketMembership: true}

// Postgres renders fragments executable by PostgreSQL.
var Postgres = Dialect{Name: "postgres", QuoteIdentifiers: true, JSONContainsMembership: true}

func (d Dialect) ident(name string) string {
	if d.QuoteIdentifiers {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

func (d Dialect) membership(idents string, list []string) string {
	joined := strings.Join(list, ", ")
	if d.BracketMembership {
		return "(" + idents + " IN [" + joined + "])"
	}
	return "(" + idents + " IN (" + joined + "))"
}

func (d Dialect) jsonContains(ident string, jsonLiteral string) string {
	return "(" + ident + " @> '" + strings.ReplaceAll(jsonLiteral, "'", "''") + "'::jsonb)"
}
