package qdrant

import (
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/harbourml/vectorstore/v1/search"
)

// ── Filter Conversion ────────────────────────────────────────────────────────

// ToFilter converts a translated search-query artifact into Qdrant's
// native filter. A nil query yields a nil filter (unfiltered search).
func ToFilter(q search.Query) (*qdrant.Filter, error) {
	if q == nil {
		return nil, nil
	}
	if b, ok := q.(*search.BooleanQuery); ok {
		return toQdrantFilter(b)
	}
	cond, err := toCondition(q)
	if err != nil {
		return nil, err
	}
	return &qdrant.Filter{Must: []*qdrant.Condition{cond}}, nil
}

func toQdrantFilter(b *search.BooleanQuery) (*qdrant.Filter, error) {
	filter := &qdrant.Filter{}
	var err error
	if filter.Must, err = toConditions(b.Must); err != nil {
		return nil, err
	}
	if filter.Should, err = toConditions(b.Should); err != nil {
		return nil, err
	}
	if filter.MustNot, err = toConditions(b.MustNot); err != nil {
		return nil, err
	}
	return filter, nil
}

func toConditions(qs []search.Query) ([]*qdrant.Condition, error) {
	if len(qs) == 0 {
		return nil, nil
	}
	conditions := make([]*qdrant.Condition, len(qs))
	for i, q := range qs {
		cond, err := toCondition(q)
		if err != nil {
			return nil, err
		}
		conditions[i] = cond
	}
	return conditions, nil
}

func toCondition(q search.Query) (*qdrant.Condition, error) {
	switch n := q.(type) {
	case *search.BooleanQuery:
		nested, err := toQdrantFilter(n)
		if err != nil {
			return nil, err
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Filter{Filter: nested},
		}, nil

	case *search.TermQuery:
		return toMatchCondition(n)

	case *search.NumericRangeQuery:
		return qdrant.NewRange(n.Field, toRange(n)), nil

	case *search.DateRangeQuery:
		return qdrant.NewDatetimeRange(n.Field, toDatetimeRange(n)), nil

	case *search.WildcardQuery:
		// The engine only emits the bare existence wildcard. Qdrant has
		// no wildcard matching, so "field has a value" maps to a nested
		// must_not is_empty.
		if n.Wildcard != "*" {
			return nil, fmt.Errorf("qdrant: wildcard pattern %q not supported", n.Wildcard)
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Filter{Filter: &qdrant.Filter{
				MustNot: []*qdrant.Condition{qdrant.NewIsEmpty(n.Field)},
			}},
		}, nil

	default:
		return nil, fmt.Errorf("qdrant: unsupported query node %T", q)
	}
}

func toMatchCondition(t *search.TermQuery) (*qdrant.Condition, error) {
	switch v := t.Value.(type) {
	case string:
		return qdrant.NewMatch(t.Field, v), nil
	case bool:
		return qdrant.NewMatchBool(t.Field, v), nil
	case int:
		return qdrant.NewMatchInt(t.Field, int64(v)), nil
	case int32:
		return qdrant.NewMatchInt(t.Field, int64(v)), nil
	case int64:
		return qdrant.NewMatchInt(t.Field, v), nil
	case float32:
		return equalityRange(t.Field, float64(v)), nil
	case float64:
		return equalityRange(t.Field, v), nil
	case decimal.Decimal:
		return equalityRange(t.Field, v.InexactFloat64()), nil
	case time.Time:
		ts := timestamppb.New(v)
		return qdrant.NewDatetimeRange(t.Field, &qdrant.DatetimeRange{Gte: ts, Lte: ts}), nil
	default:
		return nil, fmt.Errorf("qdrant: term match on %T not supported", t.Value)
	}
}

// equalityRange encodes exact equality as a closed range, since Qdrant
// match conditions only cover keyword, integer, and bool values.
func equalityRange(field string, v float64) *qdrant.Condition {
	return qdrant.NewRange(field, &qdrant.Range{Gte: &v, Lte: &v})
}

func toRange(n *search.NumericRangeQuery) *qdrant.Range {
	r := &qdrant.Range{}
	if n.Min != nil {
		if n.InclusiveMin {
			r.Gte = n.Min
		} else {
			r.Gt = n.Min
		}
	}
	if n.Max != nil {
		if n.InclusiveMax {
			r.Lte = n.Max
		} else {
			r.Lt = n.Max
		}
	}
	return r
}

func toDatetimeRange(n *search.DateRangeQuery) *qdrant.DatetimeRange {
	r := &qdrant.DatetimeRange{}
	if n.Start != nil {
		ts := timestamppb.New(*n.Start)
		if n.InclusiveStart {
			r.Gte = ts
		} else {
			r.Gt = ts
		}
	}
	if n.End != nil {
		ts := timestamppb.New(*n.End)
		if n.InclusiveEnd {
			r.Lte = ts
		} else {
			r.Lt = ts
		}
	}
	return r
}

// ── Result Conversion ────────────────────────────────────────────────────────

// extractPointID extracts a string ID from Qdrant's PointId type.
func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("qdrant: nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("qdrant: unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
