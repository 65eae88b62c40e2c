// ==============================================================================================
// FILE: internal/builtins/register.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: Populates the Procedure Table (§6) into internal/object's shared registry. Plays
//          the role the teacher's object.Builtins slice plays for Eloquence, generalised from
//          Eloquence's variadic-Fn builtins to Lunar's fixed-arity Procedure model — the
//          evaluator needs to know each name's arity before it can pull the right number of
//          arguments, so arity is part of registration, not discovered at call time.
// ==============================================================================================

package builtins

import (
	"lunar/internal/eval"
	"lunar/internal/object"
)

func init() {
	registerMeta()
	registerFlow()
	registerIO()
	registerBindings()
	registerFunctions()
	registerArithmetic()
	registerComparison()
	registerLists()
	registerStrings()
	registerPredicates()
	registerDicts()
	registerRandomTime()
}

// define registers one Procedure Table entry.
func define(name string, arity int, h object.Handler) {
	object.RegisterProcedure(&object.Procedure{Name: name, Arity: arity, Handler: h})
}

// ----------------------------------------------------------------------------------------------
// Shared argument coercion helpers — every builtin below leans on these instead of repeating
// type switches, the same way the teacher's builtins lean on small `newBuiltinError` checks.
// ----------------------------------------------------------------------------------------------

func asInt(v object.Value) (int64, *eval.Error) {
	switch v := v.(type) {
	case object.Int:
		return v.Value, nil
	case object.Float:
		return int64(v.Value), nil
	default:
		return 0, eval.TypeErrorf("expected an integer, got %s", v.Type())
	}
}

func asFloat(v object.Value) (float64, *eval.Error) {
	switch v := v.(type) {
	case object.Int:
		return float64(v.Value), nil
	case object.Float:
		return v.Value, nil
	default:
		return 0, eval.TypeErrorf("expected a number, got %s", v.Type())
	}
}

func asStr(v object.Value) (string, *eval.Error) {
	s, ok := v.(object.Str)
	if !ok {
		return "", eval.TypeErrorf("expected a string, got %s", v.Type())
	}
	return s.Value, nil
}

func asList(v object.Value) (*object.List, *eval.Error) {
	l, ok := v.(*object.List)
	if !ok {
		return nil, eval.TypeErrorf("expected a list, got %s", v.Type())
	}
	return l, nil
}

func asDict(v object.Value) (*object.Dict, *eval.Error) {
	d, ok := v.(*object.Dict)
	if !ok {
		return nil, eval.TypeErrorf("expected a dict, got %s", v.Type())
	}
	return d, nil
}

func asClosure(v object.Value) (*object.Closure, *eval.Error) {
	c, ok := v.(*object.Closure)
	if !ok {
		return nil, eval.TypeErrorf("expected a function, got %s", v.Type())
	}
	return c, nil
}

// wordOf extracts the identifier text carried by a bare-word Str — `make`, `function`, `local`
// and the loop forms all take an argument-name this way (§4.3 rule 5).
func wordOf(v object.Value) (string, *eval.Error) {
	return asStr(v)
}

// listWords extracts the flat word strings out of a `[...]` list literal, for forms that need
// to re-tokenise their body (§4.6's "parse it ... results it").
func listWords(l *object.List) ([]string, *eval.Error) {
	words := make([]string, 0, len(*l.Elements))
	for _, el := range *l.Elements {
		s, err := asStr(el)
		if err != nil {
			return nil, eval.TypeErrorf("list literal must contain only words, found %s", el.Type())
		}
		words = append(words, s)
	}
	return words, nil
}

func valuesEqual(a, b object.Value) bool {
	an, aIsNum := numeric(a)
	bn, bIsNum := numeric(b)
	if aIsNum && bIsNum {
		return an == bn
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case object.Str:
		return a.Value == b.(object.Str).Value
	case object.Bool:
		return a.Value == b.(object.Bool).Value
	case object.Nil:
		return true
	default:
		// Lists, dicts, closures, procedures and blocks compare by reference: the spec gives
		// no structural-equality rule for composite values, only for the primitive cases its
		// own scenarios exercise (§8).
		return a == b
	}
}

func numeric(v object.Value) (float64, bool) {
	switch v := v.(type) {
	case object.Int:
		return float64(v.Value), true
	case object.Float:
		return v.Value, true
	default:
		return 0, false
	}
}
