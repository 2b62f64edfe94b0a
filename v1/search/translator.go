package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
)

// Translator builds search-index query trees from predicate leaves. It
// is stateless: one instance serves concurrent translations.
type Translator struct{}

var _ filter.Backend[Query] = (*Translator)(nil)

// NewTranslator returns the search-index backend for filter.Translate.
func NewTranslator() *Translator { return &Translator{} }

// Translate compiles a predicate into a search-index query tree.
func Translate(model *schema.CollectionModel, e filter.Expr) (Query, error) {
	return filter.Translate[Query](model, e, NewTranslator())
}

// Term builds an exact-term leaf. Inequality wraps the positive form in
// a boolean MUST_NOT, since term leaves have no negative mode.
func (t *Translator) Term(prop *schema.Property, value any, negated bool) (Query, error) {
	v, err := termValue(value)
	if err != nil {
		return nil, err
	}
	leaf := Query(&TermQuery{Field: prop.StorageName, Value: v})
	if negated {
		leaf = &BooleanQuery{MustNot: []Query{leaf}}
	}
	return leaf, nil
}

// Null builds the null-equality idiom. The index cannot test "field has
// no value" directly, so existence is approximated by a bare wildcard
// match and negated for the == NULL case.
func (t *Translator) Null(prop *schema.Property, negated bool) (Query, error) {
	exists := &WildcardQuery{Field: prop.StorageName, Wildcard: "*"}
	if negated {
		return exists, nil
	}
	return &BooleanQuery{MustNot: []Query{exists}}, nil
}

// Range builds a range leaf with only the relevant bound set: min for
// > and >=, max for < and <=.
func (t *Translator) Range(prop *schema.Property, op filter.CompareOp, value any) (Query, error) {
	if ts, ok := value.(time.Time); ok {
		q := &DateRangeQuery{Field: prop.StorageName}
		switch op {
		case filter.OpGt:
			q.Start = &ts
		case filter.OpGe:
			q.Start, q.InclusiveStart = &ts, true
		case filter.OpLt:
			q.End = &ts
		case filter.OpLe:
			q.End, q.InclusiveEnd = &ts, true
		}
		return q, nil
	}

	f, ok := floatValue(value)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no range representation for property %q",
			filter.ErrUnsupportedLiteralType, value, prop.Name)
	}
	q := &NumericRangeQuery{Field: prop.StorageName}
	switch op {
	case filter.OpGt:
		q.Min = &f
	case filter.OpGe:
		q.Min, q.InclusiveMin = &f, true
	case filter.OpLt:
		q.Max = &f
	case filter.OpLe:
		q.Max, q.InclusiveMax = &f, true
	}
	return q, nil
}

// Contains builds a single term leaf on the collection-typed field;
// the index matches a term against any element of an array field.
func (t *Translator) Contains(prop *schema.Property, value any) (Query, error) {
	v, err := termValue(value)
	if err != nil {
		return nil, err
	}
	return &TermQuery{Field: prop.StorageName, Value: v}, nil
}

// In builds an OR-group of term leaves, one per constant.
func (t *Translator) In(prop *schema.Property, values []any) (Query, error) {
	terms := make([]Query, len(values))
	for i, v := range values {
		tv, err := termValue(v)
		if err != nil {
			return nil, err
		}
		terms[i] = &TermQuery{Field: prop.StorageName, Value: tv}
	}
	return &BooleanQuery{Should: terms}, nil
}

func (t *Translator) And(left, right Query) Query {
	return &BooleanQuery{Must: []Query{left, right}}
}

func (t *Translator) Or(left, right Query) Query {
	return &BooleanQuery{Should: []Query{left, right}}
}

func (t *Translator) Not(q Query) Query {
	return &BooleanQuery{MustNot: []Query{q}}
}

// termValue normalizes a constant into a term-leaf value. UUIDs become
// their canonical string form; everything else keeps its type.
func termValue(v any) (any, error) {
	switch c := v.(type) {
	case string, bool, int, int32, int64, float32, float64, time.Time, decimal.Decimal:
		return v, nil
	case uuid.UUID:
		return c.String(), nil
	default:
		return nil, fmt.Errorf("%w: %T has no term representation", filter.ErrUnsupportedLiteralType, v)
	}
}
