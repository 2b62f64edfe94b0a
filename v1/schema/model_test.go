package schema

import (
	"testing"
)

func TestNewModel_EmptyName(t *testing.T) {
	_, err := NewModel("")
	if err == nil {
		t.Fatal("expected error for empty collection name")
	}
}

func TestNewModel_UnnamedProperty(t *testing.T) {
	_, err := NewModel("hotels", Property{Type: Of(KindString)})
	if err == nil {
		t.Fatal("expected error for property without a name")
	}
}

func TestNewModel_DuplicateProperty(t *testing.T) {
	_, err := NewModel("hotels",
		Property{Name: "Name", Type: Of(KindString)},
		Property{Name: "Name", Type: Of(KindString)},
	)
	if err == nil {
		t.Fatal("expected error for duplicate property name")
	}
}

func TestNewModel_StorageNameDefaultsToName(t *testing.T) {
	m, err := NewModel("hotels",
		Property{Name: "HotelName", Type: Of(KindString)},
	)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	p, ok := m.Property("HotelName")
	if !ok {
		t.Fatal("expected property to resolve")
	}
	if p.StorageName != "HotelName" {
		t.Errorf("expected storage name HotelName, got %q", p.StorageName)
	}
}

func TestNewModel_ExplicitStorageName(t *testing.T) {
	m := MustModel("hotels",
		Property{Name: "HotelName", StorageName: "hotel_name", Type: Of(KindString)},
	)

	p, ok := m.Property("HotelName")
	if !ok {
		t.Fatal("expected property to resolve")
	}
	if p.StorageName != "hotel_name" {
		t.Errorf("expected storage name hotel_name, got %q", p.StorageName)
	}
}

func TestProperty_UnknownName(t *testing.T) {
	m := MustModel("hotels", Property{Name: "Name", Type: Of(KindString)})

	if _, ok := m.Property("Rating"); ok {
		t.Error("expected unknown property to not resolve")
	}
}

func TestProperties_ReturnsCopy(t *testing.T) {
	m := MustModel("hotels",
		Property{Name: "Name", Type: Of(KindString)},
		Property{Name: "Rating", Type: Of(KindFloat64)},
	)

	props := m.Properties()
	props[0].Name = "mutated"

	p, ok := m.Property("Name")
	if !ok || p.Name != "Name" {
		t.Error("mutating the returned slice must not affect the model")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Of(KindString), "string"},
		{NullableOf(KindInt64), "int64?"},
		{CollectionOf(KindString), "collection<string>"},
		{AnyType, "any"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("Type.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestKind_IsNumeric(t *testing.T) {
	numeric := []Kind{KindInt32, KindInt64, KindFloat32, KindFloat64, KindDecimal}
	for _, k := range numeric {
		if !k.IsNumeric() {
			t.Errorf("expected %s to be numeric", k)
		}
	}
	other := []Kind{KindAny, KindString, KindBool, KindDateTime, KindUUID}
	for _, k := range other {
		if k.IsNumeric() {
			t.Errorf("expected %s to not be numeric", k)
		}
	}
}
