package search

import (
	"path"
	"time"

	"github.com/shopspring/decimal"
)

// Matches: every clause in Must, at least one in Should (when present),
// none in MustNot.
func (q *BooleanQuery) Matches(doc map[string]any) bool {
	for _, m := range q.Must {
		if !m.Matches(doc) {
			return false
		}
	}
	if len(q.Should) > 0 {
		any := false
		for _, s := range q.Should {
			if s.Matches(doc) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, mn := range q.MustNot {
		if mn.Matches(doc) {
			return false
		}
	}
	return true
}

func (q *TermQuery) Matches(doc map[string]any) bool {
	v, ok := doc[q.Field]
	if !ok || v == nil {
		return false
	}
	if elems, isList := listValues(v); isList {
		for _, e := range elems {
			if termEqual(e, q.Value) {
				return true
			}
		}
		return false
	}
	return termEqual(v, q.Value)
}

func (q *NumericRangeQuery) Matches(doc map[string]any) bool {
	f, ok := floatValue(doc[q.Field])
	if !ok {
		return false
	}
	if q.Min != nil {
		if q.InclusiveMin {
			if f < *q.Min {
				return false
			}
		} else if f <= *q.Min {
			return false
		}
	}
	if q.Max != nil {
		if q.InclusiveMax {
			if f > *q.Max {
				return false
			}
		} else if f >= *q.Max {
			return false
		}
	}
	return true
}

func (q *DateRangeQuery) Matches(doc map[string]any) bool {
	t, ok := doc[q.Field].(time.Time)
	if !ok {
		return false
	}
	if q.Start != nil {
		if q.InclusiveStart {
			if t.Before(*q.Start) {
				return false
			}
		} else if !t.After(*q.Start) {
			return false
		}
	}
	if q.End != nil {
		if q.InclusiveEnd {
			if t.After(*q.End) {
				return false
			}
		} else if !t.Before(*q.End) {
			return false
		}
	}
	return true
}

func (q *WildcardQuery) Matches(doc map[string]any) bool {
	v, ok := doc[q.Field]
	if !ok || v == nil {
		return false
	}
	if q.Wildcard == "*" {
		// Bare existence check; any non-nil value matches.
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	matched, err := path.Match(q.Wildcard, s)
	return err == nil && matched
}

func termEqual(a, b any) bool {
	if af, aok := floatValue(a); aok {
		bf, bok := floatValue(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	default:
		return 0, false
	}
}

func listValues(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	case []int64:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}
