package qdrant

import (
	"testing"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
	"github.com/harbourml/vectorstore/v1/search"
)

func converterModel(t *testing.T) *schema.CollectionModel {
	t.Helper()
	return schema.MustModel("documents",
		schema.Property{Name: "City", Type: schema.Of(schema.KindString)},
		schema.Property{Name: "Active", Type: schema.Of(schema.KindBool)},
		schema.Property{Name: "Priority", Type: schema.Of(schema.KindInt64)},
		schema.Property{Name: "Price", Type: schema.Of(schema.KindFloat64)},
		schema.Property{Name: "Rating", Type: schema.NullableOf(schema.KindFloat64)},
		schema.Property{Name: "Tags", Type: schema.CollectionOf(schema.KindString)},
		schema.Property{Name: "CreatedAt", Type: schema.Of(schema.KindDateTime)},
	)
}

func translateToFilter(t *testing.T, e filter.Expr) *qdrant.Filter {
	t.Helper()
	artifact, err := search.Translate(converterModel(t), e)
	if err != nil {
		t.Fatalf("search.Translate failed: %v", err)
	}
	f, err := ToFilter(artifact)
	if err != nil {
		t.Fatalf("ToFilter failed: %v", err)
	}
	return f
}

func TestToFilter_NilQuery(t *testing.T) {
	f, err := ToFilter(nil)
	if err != nil {
		t.Fatalf("ToFilter failed: %v", err)
	}
	if f != nil {
		t.Errorf("expected nil filter, got %v", f)
	}
}

func TestToFilter_BareTermWrappedInMust(t *testing.T) {
	f := translateToFilter(t, filter.Eq(filter.Prop("City"), filter.Const("London")))

	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	if len(f.Should) != 0 || len(f.MustNot) != 0 {
		t.Errorf("expected no Should/MustNot conditions, got %v", f)
	}
}

func TestToFilter_BoolAndIntMatches(t *testing.T) {
	f := translateToFilter(t, filter.And(
		filter.Eq(filter.Prop("Active"), filter.Const(true)),
		filter.Eq(filter.Prop("Priority"), filter.Const(int64(3))),
	))

	if len(f.Must) != 2 {
		t.Fatalf("expected 2 Must conditions, got %d", len(f.Must))
	}
	for i, c := range f.Must {
		if c.GetField() == nil {
			t.Errorf("Must[%d]: expected field condition, got %v", i, c)
		}
	}
}

func TestToFilter_InequalityBecomesMustNot(t *testing.T) {
	f := translateToFilter(t, filter.Ne(filter.Prop("City"), filter.Const("London")))

	if len(f.MustNot) != 1 {
		t.Fatalf("expected 1 MustNot condition, got %d", len(f.MustNot))
	}
}

func TestToFilter_NumericRangeBounds(t *testing.T) {
	f := translateToFilter(t, filter.Ge(filter.Prop("Price"), filter.Const(100.0)))

	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	field := f.Must[0].GetField()
	if field == nil || field.Range == nil {
		t.Fatalf("expected range condition, got %v", f.Must[0])
	}
	if field.Range.Gte == nil || *field.Range.Gte != 100.0 {
		t.Errorf("expected Gte=100, got %v", field.Range)
	}
	if field.Range.Gt != nil || field.Range.Lt != nil || field.Range.Lte != nil {
		t.Errorf("expected only Gte to be set, got %v", field.Range)
	}
}

func TestToFilter_ExclusiveNumericRange(t *testing.T) {
	f := translateToFilter(t, filter.Lt(filter.Prop("Price"), filter.Const(50.0)))

	field := f.Must[0].GetField()
	if field == nil || field.Range == nil {
		t.Fatalf("expected range condition, got %v", f.Must[0])
	}
	if field.Range.Lt == nil || *field.Range.Lt != 50.0 {
		t.Errorf("expected Lt=50, got %v", field.Range)
	}
}

func TestToFilter_DatetimeRange(t *testing.T) {
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	f := translateToFilter(t, filter.Ge(filter.Prop("CreatedAt"), filter.Const(cutoff)))

	field := f.Must[0].GetField()
	if field == nil || field.DatetimeRange == nil {
		t.Fatalf("expected datetime range condition, got %v", f.Must[0])
	}
	if field.DatetimeRange.Gte == nil {
		t.Fatal("expected Gte bound")
	}
	if !field.DatetimeRange.Gte.AsTime().Equal(cutoff) {
		t.Errorf("expected %v, got %v", cutoff, field.DatetimeRange.Gte.AsTime())
	}
}

func TestToFilter_FloatEqualityBecomesClosedRange(t *testing.T) {
	f := translateToFilter(t, filter.Eq(filter.Prop("Price"), filter.Const(19.5)))

	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	field := f.Must[0].GetField()
	if field == nil || field.Range == nil {
		t.Fatalf("expected range condition, got %v", f.Must[0])
	}
	if field.Range.Gte == nil || field.Range.Lte == nil {
		t.Fatalf("expected both bounds set, got %v", field.Range)
	}
	if *field.Range.Gte != 19.5 || *field.Range.Lte != 19.5 {
		t.Errorf("expected Gte=Lte=19.5, got %v", field.Range)
	}
}

func TestToFilter_DatetimeEqualityBecomesClosedRange(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := translateToFilter(t, filter.Eq(filter.Prop("CreatedAt"), filter.Const(ts)))

	field := f.Must[0].GetField()
	if field == nil || field.DatetimeRange == nil {
		t.Fatalf("expected datetime range condition, got %v", f.Must[0])
	}
	if field.DatetimeRange.Gte == nil || field.DatetimeRange.Lte == nil {
		t.Fatalf("expected both bounds set, got %v", field.DatetimeRange)
	}
	if !field.DatetimeRange.Gte.AsTime().Equal(ts) || !field.DatetimeRange.Lte.AsTime().Equal(ts) {
		t.Errorf("expected Gte=Lte=%v, got %v", ts, field.DatetimeRange)
	}
}

func TestToFilter_DecimalEqualityBecomesClosedRange(t *testing.T) {
	cond, err := toMatchCondition(&search.TermQuery{Field: "price", Value: decimal.RequireFromString("19.5")})
	if err != nil {
		t.Fatalf("toMatchCondition failed: %v", err)
	}
	field := cond.GetField()
	if field == nil || field.Range == nil {
		t.Fatalf("expected range condition, got %v", cond)
	}
	if field.Range.Gte == nil || *field.Range.Gte != 19.5 || field.Range.Lte == nil || *field.Range.Lte != 19.5 {
		t.Errorf("expected Gte=Lte=19.5, got %v", field.Range)
	}
}

func TestToFilter_NullEqualityUsesIsEmpty(t *testing.T) {
	// Rating == NULL: nested must_not is_empty inside a must_not.
	f := translateToFilter(t, filter.Eq(filter.Prop("Rating"), filter.Const(nil)))

	if len(f.MustNot) != 1 {
		t.Fatalf("expected 1 MustNot condition, got %d", len(f.MustNot))
	}
	nested := f.MustNot[0].GetFilter()
	if nested == nil {
		t.Fatalf("expected nested filter, got %v", f.MustNot[0])
	}
	if len(nested.MustNot) != 1 || nested.MustNot[0].GetIsEmpty() == nil {
		t.Errorf("expected must_not is_empty, got %v", nested)
	}
}

func TestToFilter_NotNullFlattensToIsEmptyNegation(t *testing.T) {
	f := translateToFilter(t, filter.Ne(filter.Prop("Rating"), filter.Const(nil)))

	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	nested := f.Must[0].GetFilter()
	if nested == nil || len(nested.MustNot) != 1 || nested.MustNot[0].GetIsEmpty() == nil {
		t.Errorf("expected nested must_not is_empty, got %v", f.Must[0])
	}
}

func TestToFilter_MembershipBecomesShould(t *testing.T) {
	f := translateToFilter(t, filter.In(filter.Prop("City"), "London", "Berlin"))

	if len(f.Should) != 2 {
		t.Fatalf("expected 2 Should conditions, got %d", len(f.Should))
	}
}

func TestToFilter_ContainsOnCollection(t *testing.T) {
	f := translateToFilter(t, filter.ContainsValue(filter.Prop("Tags"), "beta"))

	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	field := f.Must[0].GetField()
	if field == nil || field.Match == nil {
		t.Errorf("expected match condition on Tags, got %v", f.Must[0])
	}
}

func TestToFilter_NestedBooleans(t *testing.T) {
	f := translateToFilter(t, filter.Or(
		filter.Eq(filter.Prop("City"), filter.Const("London")),
		filter.And(
			filter.Eq(filter.Prop("Active"), filter.Const(true)),
			filter.Gt(filter.Prop("Price"), filter.Const(10.0)),
		),
	))

	if len(f.Should) != 2 {
		t.Fatalf("expected 2 Should conditions, got %d", len(f.Should))
	}
	nested := f.Should[1].GetFilter()
	if nested == nil || len(nested.Must) != 2 {
		t.Errorf("expected nested conjunction, got %v", f.Should[1])
	}
}

func TestToFilter_UnsupportedWildcardPattern(t *testing.T) {
	_, err := ToFilter(&search.WildcardQuery{Field: "City", Wildcard: "Lon*"})
	if err == nil {
		t.Fatal("expected error for non-existence wildcard pattern")
	}
}

func TestExtractPointID(t *testing.T) {
	id, err := extractPointID(&qdrant.PointId{
		PointIdOptions: &qdrant.PointId_Uuid{Uuid: "00000000-0000-0000-0000-000000000001"},
	})
	if err != nil {
		t.Fatalf("extractPointID failed: %v", err)
	}
	if id != "00000000-0000-0000-0000-000000000001" {
		t.Errorf("got %q", id)
	}

	id, err = extractPointID(&qdrant.PointId{
		PointIdOptions: &qdrant.PointId_Num{Num: 42},
	})
	if err != nil {
		t.Fatalf("extractPointID failed: %v", err)
	}
	if id != "42" {
		t.Errorf("got %q", id)
	}

	if _, err := extractPointID(nil); err == nil {
		t.Error("expected error for nil point ID")
	}
}

func TestExtractValue_Recursive(t *testing.T) {
	v := &qdrant.Value{Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{
		Values: []*qdrant.Value{
			{Kind: &qdrant.Value_StringValue{StringValue: "a"}},
			{Kind: &qdrant.Value_IntegerValue{IntegerValue: 7}},
		},
	}}}

	out, ok := extractValue(v).([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", extractValue(v))
	}
	if len(out) != 2 || out[0] != "a" || out[1] != int64(7) {
		t.Errorf("got %v", out)
	}
}
