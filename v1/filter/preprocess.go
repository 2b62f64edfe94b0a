package filter

// Normalize reshapes a raw predicate tree into the form both backends
// translate:
//
//   - captured external variables are materialized into inline literal
//     constants (backends emit literal-valued leaves, not late-bound
//     placeholders)
//   - nullable conversions wrapping a constant are dropped (lifting a
//     literal to its nullable form is a no-op for equality semantics)
//
// Conversions wrapping anything else survive: Normalize has no schema,
// so the binder must see the full cast chain to validate each target
// against the property's declared type. Validated lifts are peeled
// there, incompatible ones fail there.
//
// Normalize never raises binding errors; it only reshapes. The input
// tree is not mutated — rewritten nodes are rebuilt, untouched subtrees
// are shared.
func Normalize(e Expr) Expr {
	switch n := e.(type) {
	case *ConvertExpr:
		inner := Normalize(n.Inner)
		if n.To.Nullable {
			if _, isConst := inner.(*ConstExpr); isConst {
				return inner
			}
		}
		if inner == n.Inner {
			return n
		}
		return &ConvertExpr{Inner: inner, To: n.To}

	case *CaptureExpr:
		return &ConstExpr{Value: n.Value}

	case *MemberExpr:
		target := Normalize(n.Target)
		if target == n.Target {
			return n
		}
		return &MemberExpr{Target: target, Name: n.Name}

	case *IndexExpr:
		target := Normalize(n.Target)
		key := Normalize(n.Key)
		if target == n.Target && key == n.Key {
			return n
		}
		return &IndexExpr{Target: target, Key: key}

	case *CompareExpr:
		left := Normalize(n.Left)
		right := Normalize(n.Right)
		if left == n.Left && right == n.Right {
			return n
		}
		return &CompareExpr{Op: n.Op, Left: left, Right: right}

	case *AndExpr:
		left := Normalize(n.Left)
		right := Normalize(n.Right)
		if left == n.Left && right == n.Right {
			return n
		}
		return &AndExpr{Left: left, Right: right}

	case *OrExpr:
		left := Normalize(n.Left)
		right := Normalize(n.Right)
		if left == n.Left && right == n.Right {
			return n
		}
		return &OrExpr{Left: left, Right: right}

	case *NotExpr:
		inner := Normalize(n.Inner)
		if inner == n.Inner {
			return n
		}
		return &NotExpr{Inner: inner}

	case *ContainsExpr:
		coll := Normalize(n.Collection)
		item := Normalize(n.Item)
		if coll == n.Collection && item == n.Item {
			return n
		}
		return &ContainsExpr{Collection: coll, Item: item}

	case *CallExpr:
		target := Normalize(n.Target)
		args := n.Args
		rebuilt := target != n.Target
		normArgs := make([]Expr, len(args))
		for i, a := range args {
			normArgs[i] = Normalize(a)
			if normArgs[i] != a {
				rebuilt = true
			}
		}
		if !rebuilt {
			return n
		}
		return &CallExpr{Name: n.Name, Target: target, Args: normArgs}

	default:
		// ParamExpr, ConstExpr: nothing to reshape.
		return e
	}
}
