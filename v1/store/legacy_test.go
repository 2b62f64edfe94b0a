package store

import (
	"testing"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
)

func legacyModel(t *testing.T) *schema.CollectionModel {
	t.Helper()
	return schema.MustModel("documents",
		schema.Property{Name: "Status", Type: schema.Of(schema.KindString)},
		schema.Property{Name: "Tags", Type: schema.CollectionOf(schema.KindString)},
	)
}

func TestEqualTo_Predicate(t *testing.T) {
	m := legacyModel(t)
	e := EqualTo{Field: "Status", Value: "active"}.Predicate()

	got, err := filter.Evaluate(m, e, map[string]any{"Status": "active"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected equal value to match")
	}

	got, err = filter.Evaluate(m, e, map[string]any{"Status": "draft"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got {
		t.Error("expected different value to not match")
	}
}

func TestAnyTagEqualTo_Predicate(t *testing.T) {
	m := legacyModel(t)
	e := AnyTagEqualTo{Field: "Tags", Value: "beta"}.Predicate()

	got, err := filter.Evaluate(m, e, map[string]any{"Tags": []string{"alpha", "beta"}})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected contained tag to match")
	}
}

func TestCombineClauses_Empty(t *testing.T) {
	if e := CombineClauses(); e != nil {
		t.Errorf("expected nil for no clauses, got %T", e)
	}
}

func TestCombineClauses_Single(t *testing.T) {
	e := CombineClauses(EqualTo{Field: "Status", Value: "active"})
	if _, ok := e.(*filter.CompareExpr); !ok {
		t.Errorf("expected bare comparison for one clause, got %T", e)
	}
}

func TestCombineClauses_FoldsWithAnd(t *testing.T) {
	m := legacyModel(t)
	e := CombineClauses(
		EqualTo{Field: "Status", Value: "active"},
		AnyTagEqualTo{Field: "Tags", Value: "beta"},
	)

	if _, ok := e.(*filter.AndExpr); !ok {
		t.Fatalf("expected AndExpr, got %T", e)
	}

	got, err := filter.Evaluate(m, e, map[string]any{
		"Status": "active",
		"Tags":   []string{"beta"},
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Error("expected document satisfying both clauses to match")
	}

	got, err = filter.Evaluate(m, e, map[string]any{
		"Status": "active",
		"Tags":   []string{"alpha"},
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got {
		t.Error("expected document failing one clause to not match")
	}
}
