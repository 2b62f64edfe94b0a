package filter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/schema"
)

// Evaluate runs a predicate directly against an in-memory document
// keyed by storage name. It mirrors the translation semantics node for
// node and shares its error taxonomy, which makes it the reference
// oracle for checking that translated query artifacts are semantically
// equivalent to the predicate they came from. Nothing in the storage
// path uses it for real queries.
func Evaluate(model *schema.CollectionModel, e Expr, doc map[string]any) (bool, error) {
	return evalNode(model, Normalize(e), doc)
}

func evalNode(model *schema.CollectionModel, e Expr, doc map[string]any) (bool, error) {
	switch n := e.(type) {
	case *AndExpr:
		left, err := evalNode(model, n.Left, doc)
		if err != nil {
			return false, err
		}
		right, err := evalNode(model, n.Right, doc)
		if err != nil {
			return false, err
		}
		return left && right, nil

	case *OrExpr:
		left, err := evalNode(model, n.Left, doc)
		if err != nil {
			return false, err
		}
		right, err := evalNode(model, n.Right, doc)
		if err != nil {
			return false, err
		}
		return left || right, nil

	case *NotExpr:
		inner, err := evalNode(model, n.Inner, doc)
		if err != nil {
			return false, err
		}
		return !inner, nil

	case *CompareExpr:
		return evalCompare(model, n, doc)

	case *ContainsExpr:
		return evalContains(model, n, doc)

	case *MemberExpr, *IndexExpr, *ConvertExpr:
		prop, ok, err := BindProperty(model, e)
		if err != nil {
			return false, err
		}
		if !ok || prop.Type.IsCollection() || prop.Type.Kind != schema.KindBool {
			return false, fmt.Errorf("%w: %T used as a boolean predicate", ErrUnsupportedNodeKind, e)
		}
		v, _ := doc[prop.StorageName].(bool)
		return v, nil

	default:
		return false, fmt.Errorf("%w: %T", ErrUnsupportedNodeKind, e)
	}
}

func evalCompare(model *schema.CollectionModel, n *CompareExpr, doc map[string]any) (bool, error) {
	leftProp, leftOK, err := BindProperty(model, n.Left)
	if err != nil {
		return false, err
	}
	rightProp, rightOK, err := BindProperty(model, n.Right)
	if err != nil {
		return false, err
	}

	var prop *schema.Property
	var other Expr
	op := n.Op
	switch {
	case leftOK && rightOK:
		return false, fmt.Errorf("%w: both operands bind to properties", ErrUnsupportedNodeKind)
	case leftOK:
		prop, other = leftProp, n.Right
	case rightOK:
		prop, other, op = rightProp, n.Left, mirrorOp(n.Op)
	default:
		return false, fmt.Errorf("%w: %s", ErrAmbiguousOperand, n.Op)
	}

	c, ok := other.(*ConstExpr)
	if !ok {
		return false, fmt.Errorf("%w: comparison operand must be a constant", ErrUnsupportedNodeKind)
	}

	actual, present := doc[prop.StorageName]
	if actual == nil {
		present = false
	}

	switch op {
	case OpEq:
		if c.Value == nil {
			return !present, nil
		}
		return present && equalValues(actual, c.Value), nil
	case OpNe:
		if c.Value == nil {
			return present, nil
		}
		return !present || !equalValues(actual, c.Value), nil
	default:
		if !present {
			return false, nil
		}
		cmp, ok := compareValues(actual, c.Value)
		if !ok {
			return false, fmt.Errorf("%w: cannot order %T against %T", ErrUnsupportedLiteralType, actual, c.Value)
		}
		switch op {
		case OpLt:
			return cmp < 0, nil
		case OpLe:
			return cmp <= 0, nil
		case OpGt:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	}
}

func evalContains(model *schema.CollectionModel, n *ContainsExpr, doc map[string]any) (bool, error) {
	prop, ok, err := BindProperty(model, n.Collection)
	if err != nil {
		return false, err
	}
	if ok {
		c, isConst := n.Item.(*ConstExpr)
		if !isConst || !prop.Type.IsCollection() {
			return false, fmt.Errorf("%w: Contains on %q", ErrUnsupportedMembershipShape, prop.Name)
		}
		for _, elem := range docElements(doc[prop.StorageName]) {
			if equalValues(elem, c.Value) {
				return true, nil
			}
		}
		return false, nil
	}

	c, isConst := n.Collection.(*ConstExpr)
	if !isConst {
		return false, fmt.Errorf("%w: %T", ErrUnsupportedMembershipShape, n.Collection)
	}
	values, ok := constantList(c.Value)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a constant list", ErrUnsupportedMembershipShape, c.Value)
	}
	if len(values) == 0 {
		return false, fmt.Errorf("%w: membership in an empty constant list", ErrUnsupportedMembershipShape)
	}
	item, ok, err := BindProperty(model, n.Item)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: membership item must be a bound property", ErrUnsupportedMembershipShape)
	}
	actual, present := doc[item.StorageName]
	if !present || actual == nil {
		return false, nil
	}
	for _, v := range values {
		if equalValues(actual, v) {
			return true, nil
		}
	}
	return false, nil
}

func docElements(v any) []any {
	if v == nil {
		return nil
	}
	if list, ok := constantList(v); ok {
		return list
	}
	return nil
}

// equalValues compares a document value against a predicate constant
// with numeric widening, so an int32 document field matches an int64
// constant the way both backends treat them.
func equalValues(a, b any) bool {
	if af, aok := toFloat64(a); aok {
		bf, bok := toFloat64(b)
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
	case uuid.UUID:
		bv, ok := b.(uuid.UUID)
		return ok && av == bv
	default:
		return false
	}
}

// compareValues orders two values; the bool is false when the pair has
// no ordering rule.
func compareValues(a, b any) (int, bool) {
	if af, aok := toFloat64(a); aok {
		if bf, bok := toFloat64(b); bok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}
	if at, ok := a.(time.Time); ok {
		bt, bok := b.(time.Time)
		if !bok {
			return 0, false
		}
		return at.Compare(bt), true
	}
	if as, ok := a.(string); ok {
		bs, bok := b.(string)
		if !bok {
			return 0, false
		}
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
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
