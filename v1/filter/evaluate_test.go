package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/schema"
)

func testModelWithDate(t *testing.T) *schema.CollectionModel {
	t.Helper()
	return schema.MustModel("documents",
		schema.Property{Name: "CreatedAt", Type: schema.Of(schema.KindDateTime)},
	)
}

func TestEvaluate_Equality(t *testing.T) {
	m := testModel(t)
	doc := map[string]any{"hotel_name": "Ritz"}

	got, err := Evaluate(m, Eq(Prop("HotelName"), Const("Ritz")), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected match")
	}
}

func TestEvaluate_NumericWidening(t *testing.T) {
	m := testModel(t)
	// Document holds int32, predicate compares against int64.
	doc := map[string]any{"Age": int32(30)}

	got, err := Evaluate(m, Eq(Prop("Age"), Const(int64(30))), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected int32 document value to match int64 constant")
	}
}

func TestEvaluate_DecimalWidening(t *testing.T) {
	m := testModel(t)
	doc := map[string]any{"Rating": decimal.NewFromFloat(4.5)}

	got, err := Evaluate(m, Ge(Prop("Rating"), Const(4.0)), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected decimal rating to satisfy range")
	}
}

func TestEvaluate_NullEquality(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name     string
		doc      map[string]any
		expected bool
	}{
		{"absent field", map[string]any{}, true},
		{"explicit nil", map[string]any{"Rating": nil}, true},
		{"present value", map[string]any{"Rating": 4.5}, false},
	}
	for _, tt := range tests {
		got, err := Evaluate(m, Eq(Prop("Rating"), Const(nil)), tt.doc)
		if err != nil {
			t.Fatalf("%s: Evaluate failed: %v", tt.name, err)
		}
		if got != tt.expected {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestEvaluate_NullInequalitySymmetry(t *testing.T) {
	m := testModel(t)
	docs := []map[string]any{
		{},
		{"Rating": nil},
		{"Rating": 4.5},
	}
	for i, doc := range docs {
		eq, err := Evaluate(m, Eq(Prop("Rating"), Const(nil)), doc)
		if err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		ne, err := Evaluate(m, Ne(Prop("Rating"), Const(nil)), doc)
		if err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		if eq == ne {
			t.Errorf("doc %d: == NULL and != NULL must disagree", i)
		}
	}
}

func TestEvaluate_RangeAgainstMissingField(t *testing.T) {
	m := testModel(t)

	got, err := Evaluate(m, Gt(Prop("Age"), Const(int64(21))), map[string]any{})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got {
		t.Error("missing field must not satisfy a range")
	}
}

func TestEvaluate_DateOrdering(t *testing.T) {
	m := testModelWithDate(t)
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	doc := map[string]any{"CreatedAt": time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}

	got, err := Evaluate(m, Ge(Prop("CreatedAt"), Const(cutoff)), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected later date to satisfy >= cutoff")
	}
}

func TestEvaluate_ContainsCollection(t *testing.T) {
	m := testModel(t)
	doc := map[string]any{"Tags": []string{"alpha", "beta"}}

	got, err := Evaluate(m, ContainsValue(Prop("Tags"), "beta"), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected element to be found")
	}

	got, err = Evaluate(m, ContainsValue(Prop("Tags"), "gamma"), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got {
		t.Error("expected absent element to not match")
	}
}

func TestEvaluate_InList(t *testing.T) {
	m := testModel(t)
	doc := map[string]any{"hotel_name": "Savoy"}

	got, err := Evaluate(m, In(Prop("HotelName"), "Ritz", "Savoy"), doc)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected membership match")
	}
}

func TestEvaluate_SharesErrorTaxonomy(t *testing.T) {
	m := testModel(t)

	_, err := Evaluate(m, Eq(Prop("City"), Const("London")), map[string]any{})
	if !IsUnknownProperty(err) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}

	_, err = Evaluate(m, Eq(Const(1), Const(1)), map[string]any{})
	if !errors.Is(err, ErrAmbiguousOperand) {
		t.Errorf("expected ErrAmbiguousOperand, got %v", err)
	}
}
