package sqlpp

import (
	"encoding/json"
	"fmt"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
)

// Translator renders predicate leaves as WHERE-clause fragments. Every
// sub-expression is fully parenthesized, so the artifact never relies
// on the target language's precedence rules. Stateless; one instance
// serves concurrent translations.
type Translator struct {
	dialect Dialect
}

var _ filter.Backend[string] = (*Translator)(nil)

// NewTranslator returns the SQL-like backend in the default dialect.
func NewTranslator() *Translator {
	return &Translator{dialect: SQLPlusPlus}
}

// NewTranslatorForDialect returns a backend rendering for a specific
// dialect.
func NewTranslatorForDialect(d Dialect) *Translator {
	return &Translator{dialect: d}
}

// Translate compiles a predicate into a WHERE fragment in the default
// dialect.
func Translate(model *schema.CollectionModel, e filter.Expr) (string, error) {
	return filter.Translate[string](model, e, NewTranslator())
}

// TranslateDialect compiles a predicate into a WHERE fragment for the
// given dialect.
func TranslateDialect(model *schema.CollectionModel, e filter.Expr, d Dialect) (string, error) {
	return filter.Translate[string](model, e, NewTranslatorForDialect(d))
}

func (t *Translator) Term(prop *schema.Property, value any, negated bool) (string, error) {
	lit, err := RenderLiteral(value)
	if err != nil {
		return "", err
	}
	op := " = "
	if negated {
		op = " != "
	}
	return "(" + t.dialect.ident(prop.StorageName) + op + lit + ")", nil
}

func (t *Translator) Null(prop *schema.Property, negated bool) (string, error) {
	if negated {
		return "(" + t.dialect.ident(prop.StorageName) + " IS NOT NULL)", nil
	}
	return "(" + t.dialect.ident(prop.StorageName) + " IS NULL)", nil
}

func (t *Translator) Range(prop *schema.Property, op filter.CompareOp, value any) (string, error) {
	lit, err := RenderLiteral(value)
	if err != nil {
		return "", err
	}
	return "(" + t.dialect.ident(prop.StorageName) + " " + op.String() + " " + lit + ")", nil
}

// Contains renders the membership idiom with a single-element list;
// the direction of containment does not change the rendered form.
// Dialects with jsonb-backed collection columns get a @> containment
// test instead, since IN does not apply element-wise there.
func (t *Translator) Contains(prop *schema.Property, value any) (string, error) {
	if t.dialect.JSONContainsMembership && prop.Type.IsCollection() {
		enc, err := json.Marshal([]any{value})
		if err != nil {
			return "", fmt.Errorf("%w: %T has no JSON representation", filter.ErrUnsupportedLiteralType, value)
		}
		return t.dialect.jsonContains(t.dialect.ident(prop.StorageName), string(enc)), nil
	}
	return t.In(prop, []any{value})
}

func (t *Translator) In(prop *schema.Property, values []any) (string, error) {
	lits := make([]string, len(values))
	for i, v := range values {
		lit, err := RenderLiteral(v)
		if err != nil {
			return "", err
		}
		lits[i] = lit
	}
	return t.dialect.membership(t.dialect.ident(prop.StorageName), lits), nil
}

func (t *Translator) And(left, right string) string {
	return "(" + left + " AND " + right + ")"
}

func (t *Translator) Or(left, right string) string {
	return "(" + left + " OR " + right + ")"
}

func (t *Translator) Not(q string) string {
	return "(NOT " + q + ")"
}
