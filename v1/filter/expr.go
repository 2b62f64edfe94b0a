package filter

import (
	"github.com/harbourml/vectorstore/v1/schema"
)

// Expr is the predicate tree node interface. The grammar is closed:
// every node kind is declared in this file and every translator switch
// handles the full set. Trees are built by the caller, treated as
// read-only by translation, and never retained across calls.
type Expr interface {
	// isExpr is a marker method to keep the node set sealed
	isExpr()
}

// CompareOp enumerates comparison operators.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String returns the operator label used in diagnostics.
func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// ── Leaf nodes ───────────────────────────────────────────────────────────────

// ParamExpr is the single bound record parameter of the predicate.
type ParamExpr struct{}

func (*ParamExpr) isExpr() {}

// MemberExpr is static field access on its target (record.Field).
type MemberExpr struct {
	Target Expr
	Name   string
}

func (*MemberExpr) isExpr() {}

// IndexExpr is dynamic keyed access on its target (record["Field"]).
// The key must resolve to a constant string for property binding.
type IndexExpr struct {
	Target Expr
	Key    Expr
}

func (*IndexExpr) isExpr() {}

// ConstExpr is an inline literal value. A slice value represents a
// compile-time-known list of constants (membership tests).
type ConstExpr struct {
	Value any
}

func (*ConstExpr) isExpr() {}

// CaptureExpr is an external variable captured by the predicate.
// Normalization materializes it into a ConstExpr: both backends emit
// inline literals, never late-bound placeholders.
type CaptureExpr struct {
	Name  string
	Value any
}

func (*CaptureExpr) isExpr() {}

// ConvertExpr wraps its operand in a type conversion. Conversions to a
// property's declared type, its nullable form, or schema.AnyType are
// transparent; anything else is a translation error.
type ConvertExpr struct {
	Inner Expr
	To    schema.Type
}

func (*ConvertExpr) isExpr() {}

// ── Composite nodes ──────────────────────────────────────────────────────────

// CompareExpr is a binary comparison. Exactly one operand must bind to
// a property of the record parameter; the other must be a constant.
type CompareExpr struct {
	Op    CompareOp
	Left  Expr
	Right Expr
}

func (*CompareExpr) isExpr() {}

// AndExpr is logical conjunction of exactly two operands.
type AndExpr struct {
	Left  Expr
	Right Expr
}

func (*AndExpr) isExpr() {}

// OrExpr is logical disjunction of exactly two operands.
type OrExpr struct {
	Left  Expr
	Right Expr
}

func (*OrExpr) isExpr() {}

// NotExpr is logical negation.
type NotExpr struct {
	Inner Expr
}

func (*NotExpr) isExpr() {}

// ContainsExpr is a membership test. Two shapes translate:
//   - Collection binds to a collection-typed property, Item is a constant
//   - Collection is a constant list, Item binds to a property
type ContainsExpr struct {
	Collection Expr
	Item       Expr
}

func (*ContainsExpr) isExpr() {}

// CallExpr is a method call on its target. No call other than the
// membership test is translatable; the node exists so that predicates
// using arbitrary methods fail with a diagnostic naming the method
// instead of an opaque type mismatch.
type CallExpr struct {
	Name   string
	Target Expr
	Args   []Expr
}

func (*CallExpr) isExpr() {}
