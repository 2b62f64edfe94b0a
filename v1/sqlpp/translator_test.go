package sqlpp

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
)

func testModel(t *testing.T) *schema.CollectionModel {
	t.Helper()
	return schema.MustModel("hotels",
		schema.Property{Name: "Name", Type: schema.Of(schema.KindString)},
		schema.Property{Name: "HotelName", StorageName: "hotel_name", Type: schema.Of(schema.KindString)},
		schema.Property{Name: "Age", Type: schema.Of(schema.KindInt64)},
		schema.Property{Name: "Active", Type: schema.Of(schema.KindBool)},
		schema.Property{Name: "Rating", Type: schema.NullableOf(schema.KindFloat32)},
		schema.Property{Name: "Price", Type: schema.Of(schema.KindDecimal)},
		schema.Property{Name: "Tags", Type: schema.CollectionOf(schema.KindString)},
		schema.Property{Name: "CreatedAt", Type: schema.Of(schema.KindDateTime)},
		schema.Property{Name: "OwnerID", Type: schema.Of(schema.KindUUID)},
	)
}

func renderFragment(t *testing.T, e filter.Expr) string {
	t.Helper()
	out, err := Translate(testModel(t), e)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	return out
}

func TestTranslate_ConjunctionFullyParenthesized(t *testing.T) {
	got := renderFragment(t, filter.And(
		filter.Ge(filter.Prop("Age"), filter.Const(int64(21))),
		filter.Eq(filter.Prop("Active"), filter.Const(true)),
	))
	want := "((Age >= 21) AND (Active = TRUE))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslate_NullComparisons(t *testing.T) {
	got := renderFragment(t, filter.Eq(filter.Prop("Name"), filter.Const(nil)))
	if got != "(Name IS NULL)" {
		t.Errorf("got %q", got)
	}

	got = renderFragment(t, filter.Ne(filter.Prop("Name"), filter.Const(nil)))
	if got != "(Name IS NOT NULL)" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_Inequality(t *testing.T) {
	got := renderFragment(t, filter.Ne(filter.Prop("Name"), filter.Const("Ritz")))
	if got != "(Name != 'Ritz')" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_StorageNameUsed(t *testing.T) {
	got := renderFragment(t, filter.Eq(filter.Prop("HotelName"), filter.Const("Ritz")))
	if got != "(hotel_name = 'Ritz')" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_QuoteDoubling(t *testing.T) {
	got := renderFragment(t, filter.Eq(filter.Prop("Name"), filter.Const("O'Hare")))
	if got != "(Name = 'O''Hare')" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_FloatFidelity(t *testing.T) {
	got := renderFragment(t, filter.Gt(filter.Prop("Rating"), filter.Const(float32(3.5))))
	if got != "(Rating > 3.5)" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_DecimalLiteral(t *testing.T) {
	got := renderFragment(t, filter.Le(filter.Prop("Price"), filter.Const(decimal.RequireFromString("199.99"))))
	if got != "(Price <= 199.99)" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_DateTimeLiteral(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	got := renderFragment(t, filter.Ge(filter.Prop("CreatedAt"), filter.Const(ts)))
	if got != "(CreatedAt >= '2024-06-01T12:30:00Z')" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_UUIDLiteral(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	got := renderFragment(t, filter.Eq(filter.Prop("OwnerID"), filter.Const(id)))
	if got != "(OwnerID = '6ba7b810-9dad-11d1-80b4-00c04fd430c8')" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_MembershipBrackets(t *testing.T) {
	got := renderFragment(t, filter.In(filter.Prop("Name"), "Ritz", "Savoy"))
	if got != "(Name IN ['Ritz', 'Savoy'])" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_ContainsRendersSingleElementList(t *testing.T) {
	got := renderFragment(t, filter.ContainsValue(filter.Prop("Tags"), "beta"))
	if got != "(Tags IN ['beta'])" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_NestedBooleans(t *testing.T) {
	got := renderFragment(t, filter.Or(
		filter.Not(filter.Eq(filter.Prop("Active"), filter.Const(true))),
		filter.And(
			filter.Lt(filter.Prop("Age"), filter.Const(int64(65))),
			filter.Gt(filter.Prop("Age"), filter.Const(int64(18))),
		),
	))
	want := "((NOT (Active = TRUE)) OR ((Age < 65) AND (Age > 18)))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslate_BareBooleanProperty(t *testing.T) {
	got := renderFragment(t, filter.Prop("Active"))
	if got != "(Active = TRUE)" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_UnsupportedLiteral(t *testing.T) {
	type opaque struct{ X int }
	_, err := Translate(testModel(t), filter.Eq(filter.Prop("Name"), filter.Const(opaque{1})))
	if !errors.Is(err, filter.ErrUnsupportedLiteralType) {
		t.Errorf("expected ErrUnsupportedLiteralType, got %v", err)
	}
}

func TestTranslateDialect_Postgres(t *testing.T) {
	m := testModel(t)

	got, err := TranslateDialect(m, filter.And(
		filter.Ge(filter.Prop("Age"), filter.Const(int64(21))),
		filter.In(filter.Prop("Name"), "Ritz", "Savoy"),
	), Postgres)
	if err != nil {
		t.Fatalf("TranslateDialect failed: %v", err)
	}
	want := `(("Age" >= 21) AND ("Name" IN ('Ritz', 'Savoy')))`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateDialect_PostgresCollectionContains(t *testing.T) {
	got, err := TranslateDialect(testModel(t),
		filter.ContainsValue(filter.Prop("Tags"), "beta"), Postgres)
	if err != nil {
		t.Fatalf("TranslateDialect failed: %v", err)
	}
	want := `("Tags" @> '["beta"]'::jsonb)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateDialect_PostgresContainsQuoteDoubling(t *testing.T) {
	got, err := TranslateDialect(testModel(t),
		filter.ContainsValue(filter.Prop("Tags"), "O'Hare"), Postgres)
	if err != nil {
		t.Fatalf("TranslateDialect failed: %v", err)
	}
	want := `("Tags" @> '["O''Hare"]'::jsonb)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderLiteral_Null(t *testing.T) {
	got, err := RenderLiteral(nil)
	if err != nil {
		t.Fatalf("RenderLiteral failed: %v", err)
	}
	if got != "NULL" {
		t.Errorf("got %q", got)
	}
}
