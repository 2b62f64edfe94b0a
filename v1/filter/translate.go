package filter

import (
	"fmt"

	"github.com/harbourml/vectorstore/v1/schema"
)

// Backend builds backend-native query fragments for the leaves the
// shared tree walk produces. The walk owns all node-kind dispatch,
// property binding, and shape validation; a backend only decides how a
// term, range, null test, membership group, or boolean combinator looks
// in its target syntax.
//
// The negated flag on Term and Null lets each backend pick its own
// negative idiom (a != rendering versus wrapping in NOT).
type Backend[Q any] interface {
	// Term builds an equality leaf against a non-nil constant.
	Term(prop *schema.Property, value any, negated bool) (Q, error)

	// Null builds the backend's null-equality idiom.
	Null(prop *schema.Property, negated bool) (Q, error)

	// Range builds a relational comparison leaf. op is one of
	// OpLt, OpLe, OpGt, OpGe with the property on the left.
	Range(prop *schema.Property, op CompareOp, value any) (Q, error)

	// Contains builds "collection-typed property contains constant".
	Contains(prop *schema.Property, value any) (Q, error)

	// In builds "property value is one of the constant list".
	In(prop *schema.Property, values []any) (Q, error)

	// And, Or, Not combine translated sub-queries.
	And(left, right Q) Q
	Or(left, right Q) Q
	Not(q Q) Q
}

// Translate compiles a predicate tree against a collection model into a
// backend's native query artifact. It is a pure function of its inputs:
// no state survives the call, so one backend instance can serve
// concurrent translations over the same immutable model.
//
// Any error aborts the whole translation; see errors.go for the
// taxonomy.
func Translate[Q any](model *schema.CollectionModel, e Expr, b Backend[Q]) (Q, error) {
	return translateNode(model, Normalize(e), b)
}

func translateNode[Q any](model *schema.CollectionModel, e Expr, b Backend[Q]) (Q, error) {
	var zero Q

	switch n := e.(type) {
	case *AndExpr:
		left, err := translateNode(model, n.Left, b)
		if err != nil {
			return zero, err
		}
		right, err := translateNode(model, n.Right, b)
		if err != nil {
			return zero, err
		}
		return b.And(left, right), nil

	case *OrExpr:
		left, err := translateNode(model, n.Left, b)
		if err != nil {
			return zero, err
		}
		right, err := translateNode(model, n.Right, b)
		if err != nil {
			return zero, err
		}
		return b.Or(left, right), nil

	case *NotExpr:
		inner, err := translateNode(model, n.Inner, b)
		if err != nil {
			return zero, err
		}
		return b.Not(inner), nil

	case *CompareExpr:
		return translateCompare(model, n, b)

	case *ContainsExpr:
		return translateContains(model, n, b)

	case *MemberExpr, *IndexExpr, *ConvertExpr:
		// A property reference standing alone is only a predicate when
		// the property is boolean: implicit equality against true.
		prop, ok, err := BindProperty(model, e)
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, fmt.Errorf("%w: %T does not reference the record parameter", ErrUnsupportedNodeKind, e)
		}
		if prop.Type.IsCollection() || prop.Type.Kind != schema.KindBool {
			return zero, fmt.Errorf("%w: property %q of type %s used as a boolean predicate",
				ErrUnsupportedNodeKind, prop.Name, prop.Type)
		}
		return b.Term(prop, true, false)

	case *CallExpr:
		return zero, fmt.Errorf("%w: method call %q", ErrUnsupportedNodeKind, n.Name)

	case *ConstExpr:
		return zero, fmt.Errorf("%w: constant used as a predicate", ErrUnsupportedNodeKind)

	case *ParamExpr:
		return zero, fmt.Errorf("%w: bare record parameter", ErrUnsupportedNodeKind)

	case *CaptureExpr:
		// Normalize materializes captures; reaching one means the tree
		// bypassed normalization.
		return zero, fmt.Errorf("%w: unmaterialized captured variable %q", ErrUnsupportedNodeKind, n.Name)

	default:
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedNodeKind, e)
	}
}

func translateCompare[Q any](model *schema.CollectionModel, n *CompareExpr, b Backend[Q]) (Q, error) {
	var zero Q

	leftProp, leftOK, err := BindProperty(model, n.Left)
	if err != nil {
		return zero, err
	}
	rightProp, rightOK, err := BindProperty(model, n.Right)
	if err != nil {
		return zero, err
	}

	var prop *schema.Property
	var other Expr
	op := n.Op
	switch {
	case leftOK && rightOK:
		return zero, fmt.Errorf("%w: both operands of %s bind to properties (%q, %q)",
			ErrUnsupportedNodeKind, op, leftProp.Name, rightProp.Name)
	case leftOK:
		prop, other = leftProp, n.Right
	case rightOK:
		// Mirror the operator so the property reads on the left.
		prop, other, op = rightProp, n.Left, mirrorOp(n.Op)
	default:
		return zero, fmt.Errorf("%w: %s", ErrAmbiguousOperand, n.Op)
	}

	c, ok := other.(*ConstExpr)
	if !ok {
		return zero, fmt.Errorf("%w: operand of %s against property %q must be a constant, got %T",
			ErrUnsupportedNodeKind, op, prop.Name, other)
	}

	switch op {
	case OpEq, OpNe:
		if c.Value == nil {
			return b.Null(prop, op == OpNe)
		}
		return b.Term(prop, c.Value, op == OpNe)
	default:
		if c.Value == nil {
			return zero, fmt.Errorf("%w: relational %s against NULL on property %q",
				ErrUnsupportedLiteralType, op, prop.Name)
		}
		return b.Range(prop, op, c.Value)
	}
}

func translateContains[Q any](model *schema.CollectionModel, n *ContainsExpr, b Backend[Q]) (Q, error) {
	var zero Q

	// Shape (a): collection-typed property tested for a single constant.
	prop, ok, err := BindProperty(model, n.Collection)
	if err != nil {
		return zero, err
	}
	if ok {
		if !prop.Type.IsCollection() {
			return zero, fmt.Errorf("%w: Contains on scalar property %q of type %s",
				ErrUnsupportedMembershipShape, prop.Name, prop.Type)
		}
		c, isConst := n.Item.(*ConstExpr)
		if !isConst {
			return zero, fmt.Errorf("%w: Contains argument for property %q must be a constant, got %T",
				ErrUnsupportedMembershipShape, prop.Name, n.Item)
		}
		return b.Contains(prop, c.Value)
	}

	// Shape (b): compile-time-known constant list tested for a property value.
	c, isConst := n.Collection.(*ConstExpr)
	if !isConst {
		return zero, fmt.Errorf("%w: collection operand is neither a collection property nor a constant list (%T)",
			ErrUnsupportedMembershipShape, n.Collection)
	}
	values, ok := constantList(c.Value)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not a compile-time list of constants",
			ErrUnsupportedMembershipShape, c.Value)
	}
	// An empty Should group would match everything, the opposite of
	// membership in the empty set. Reject rather than guess.
	if len(values) == 0 {
		return zero, fmt.Errorf("%w: membership in an empty constant list", ErrUnsupportedMembershipShape)
	}
	item, ok, err := BindProperty(model, n.Item)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, fmt.Errorf("%w: membership item must be a bound property, got %T",
			ErrUnsupportedMembershipShape, n.Item)
	}
	return b.In(item, values)
}

func mirrorOp(op CompareOp) CompareOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	default:
		return op
	}
}

// constantList widens the common typed constant-list shapes to []any.
// Anything else (a runtime collection in particular) is not a
// translatable membership list.
func constantList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		out := make([]any, len(list))
		copy(out, list)
		return out, true
	case []string:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	case []int:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = int64(e)
		}
		return out, true
	case []int32:
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
	case []float64:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	case []bool:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}
