package filter

import (
	"fmt"

	"github.com/harbourml/vectorstore/v1/schema"
)

// BindProperty determines whether e denotes a property of the bound
// record parameter, and if so resolves its descriptor against the
// collection model.
//
// Two reference shapes bind: static member access (record.Field) and
// dynamic access with a constant string key (record["Field"]), the
// latter for dictionary-shaped records. An arbitrary chain of wrapping
// conversions is looked through before matching; after the name
// resolves, the same chain is re-walked and every conversion target
// must be the property's declared type, its nullable form, or the
// unconstrained type — anything else is ErrInvalidCast, never a silent
// coercion.
//
// The second return is false when e is not a property reference at all;
// that outcome is not an error, the caller decides what the shape means.
func BindProperty(model *schema.CollectionModel, e Expr) (*schema.Property, bool, error) {
	// Peel the conversion chain, outermost first.
	var convs []schema.Type
	for {
		conv, ok := e.(*ConvertExpr)
		if !ok {
			break
		}
		convs = append(convs, conv.To)
		e = conv.Inner
	}

	name, ok := referenceName(e)
	if !ok {
		return nil, false, nil
	}

	prop, ok := model.Property(name)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q is not part of collection %q", ErrUnknownProperty, name, model.Name())
	}

	for _, to := range convs {
		if !castCompatible(to, prop.Type) {
			return nil, false, fmt.Errorf("%w: property %q is %s, cast target is %s",
				ErrInvalidCast, prop.Name, prop.Type, to)
		}
	}

	return prop, true, nil
}

// referenceName extracts the logical property name from a member or
// constant-keyed index access on the record parameter.
func referenceName(e Expr) (string, bool) {
	switch n := e.(type) {
	case *MemberExpr:
		if _, ok := n.Target.(*ParamExpr); ok {
			return n.Name, true
		}
	case *IndexExpr:
		if _, ok := n.Target.(*ParamExpr); !ok {
			return "", false
		}
		key, ok := n.Key.(*ConstExpr)
		if !ok {
			return "", false
		}
		if name, ok := key.Value.(string); ok {
			return name, true
		}
	}
	return "", false
}

func castCompatible(to schema.Type, declared schema.Type) bool {
	if to.Kind == schema.KindAny {
		return true
	}
	if to.IsCollection() != declared.IsCollection() {
		return false
	}
	// Nullable lift of the declared kind is always fine.
	return to.Kind == declared.Kind
}
