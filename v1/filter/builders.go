package filter

import (
	"github.com/harbourml/vectorstore/v1/schema"
)

// Convenience constructors for assembling predicate trees without
// spelling out node structs.
//
//	f := filter.And(
//	    filter.Ge(filter.Prop("Age"), filter.Const(int64(21))),
//	    filter.Prop("Active"),
//	)

// Param returns the bound record parameter.
func Param() Expr { return &ParamExpr{} }

// Prop is static field access on the record parameter.
func Prop(name string) Expr { return &MemberExpr{Target: Param(), Name: name} }

// Key is dynamic string-keyed access on the record parameter, for
// dictionary-shaped records.
func Key(name string) Expr {
	return &IndexExpr{Target: Param(), Key: Const(name)}
}

// Const wraps an inline literal.
func Const(v any) Expr { return &ConstExpr{Value: v} }

// Capture wraps a captured external variable.
func Capture(name string, v any) Expr { return &CaptureExpr{Name: name, Value: v} }

// Convert wraps an expression in a type conversion.
func Convert(inner Expr, to schema.Type) Expr { return &ConvertExpr{Inner: inner, To: to} }

func Eq(l, r Expr) Expr { return &CompareExpr{Op: OpEq, Left: l, Right: r} }
func Ne(l, r Expr) Expr { return &CompareExpr{Op: OpNe, Left: l, Right: r} }
func Lt(l, r Expr) Expr { return &CompareExpr{Op: OpLt, Left: l, Right: r} }
func Le(l, r Expr) Expr { return &CompareExpr{Op: OpLe, Left: l, Right: r} }
func Gt(l, r Expr) Expr { return &CompareExpr{Op: OpGt, Left: l, Right: r} }
func Ge(l, r Expr) Expr { return &CompareExpr{Op: OpGe, Left: l, Right: r} }

// And folds operands into nested two-clause conjunctions.
func And(first, second Expr, rest ...Expr) Expr {
	e := Expr(&AndExpr{Left: first, Right: second})
	for _, r := range rest {
		e = &AndExpr{Left: e, Right: r}
	}
	return e
}

// Or folds operands into nested two-clause disjunctions.
func Or(first, second Expr, rest ...Expr) Expr {
	e := Expr(&OrExpr{Left: first, Right: second})
	for _, r := range rest {
		e = &OrExpr{Left: e, Right: r}
	}
	return e
}

// Not negates a predicate.
func Not(inner Expr) Expr { return &NotExpr{Inner: inner} }

// In tests a property's value against a constant list:
// new[]{a, b}.Contains(record.Prop).
func In(item Expr, values ...any) Expr {
	list := make([]any, len(values))
	copy(list, values)
	return &ContainsExpr{Collection: Const(list), Item: item}
}

// ContainsValue tests a collection-typed property for a single constant:
// record.Tags.Contains(v).
func ContainsValue(collection Expr, v any) Expr {
	return &ContainsExpr{Collection: collection, Item: Const(v)}
}
