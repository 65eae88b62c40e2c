// ==============================================================================================
// FILE: internal/builtins/lists.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Lists* group of §6: first last butfirst butlast count sorted list fput lput item
//          iseq concat slice setitem. Indices are 1-based throughout, matching Logo's `item`
//          convention the spec's lineage comes from. `setitem` is the one mutator — §5 calls out
//          aliasing as observable, so it writes through the shared backing slice rather than
//          copying.
// ==============================================================================================

package builtins

import (
	"sort"

	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerLists() {
	define("first", 1, biFirst)
	define("last", 1, biLast)
	define("butfirst", 1, biButfirst)
	define("butlast", 1, biButlast)
	define("count", 1, biCount)
	define("sorted", 1, biSorted)
	define("list", 2, biList)
	define("fput", 2, biFput)
	define("lput", 2, biLput)
	define("item", 2, biItem)
	define("iseq", 2, biIseq)
	define("concat", 2, biConcat)
	define("slice", 3, biSlice)
	define("setitem", 3, biSetitem)
}

func biFirst(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(*l.Elements) == 0 {
		return nil, eval.Errorf("first: empty list")
	}
	return (*l.Elements)[0], nil
}

func biLast(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(*l.Elements) == 0 {
		return nil, eval.Errorf("last: empty list")
	}
	return (*l.Elements)[len(*l.Elements)-1], nil
}

func biButfirst(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(*l.Elements) == 0 {
		return nil, eval.Errorf("butfirst: empty list")
	}
	return object.NewList((*l.Elements)[1:]), nil
}

func biButlast(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(*l.Elements) == 0 {
		return nil, eval.Errorf("butlast: empty list")
	}
	return object.NewList((*l.Elements)[:len(*l.Elements)-1]), nil
}

func biCount(scope *object.Scope, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.List:
		return object.Int{Value: int64(len(*v.Elements))}, nil
	case *object.Dict:
		return object.Int{Value: int64(len(v.Keys()))}, nil
	case object.Str:
		return object.Int{Value: int64(len([]rune(v.Value)))}, nil
	default:
		return nil, eval.TypeErrorf("count expects a list, dict or string, got %s", args[0].Type())
	}
}

func biSorted(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := append([]object.Value(nil), (*l.Elements)...)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aIsNum := numeric(out[i])
		bj, bIsNum := numeric(out[j])
		if aIsNum && bIsNum {
			return ai < bj
		}
		return out[i].Inspect() < out[j].Inspect()
	})
	return object.NewList(out), nil
}

func biList(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.NewList([]object.Value{args[0], args[1]}), nil
}

func biFput(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	out := append([]object.Value{args[0]}, (*l.Elements)...)
	return object.NewList(out), nil
}

func biLput(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	out := append(append([]object.Value(nil), (*l.Elements)...), args[0])
	return object.NewList(out), nil
}

func biItem(scope *object.Scope, args []object.Value) (object.Value, error) {
	idx, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	l, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > int64(len(*l.Elements)) {
		return nil, eval.Errorf("item: index %d out of range", idx)
	}
	return (*l.Elements)[idx-1], nil
}

func biIseq(scope *object.Scope, args []object.Value) (object.Value, error) {
	from, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	to, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	var out []object.Value
	if from <= to {
		for v := from; v <= to; v++ {
			out = append(out, object.Int{Value: v})
		}
	} else {
		for v := from; v >= to; v-- {
			out = append(out, object.Int{Value: v})
		}
	}
	return object.NewList(out), nil
}

func biConcat(scope *object.Scope, args []object.Value) (object.Value, error) {
	if a, ok := args[0].(object.Str); ok {
		b, err := asStr(args[1])
		if err != nil {
			return nil, err
		}
		return object.Str{Value: a.Value + b}, nil
	}
	a, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	out := append(append([]object.Value(nil), (*a.Elements)...), (*b.Elements)...)
	return object.NewList(out), nil
}

func biSlice(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	start, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	end, err := asInt(args[2])
	if err != nil {
		return nil, err
	}
	n := int64(len(*l.Elements))
	if start < 1 {
		start = 1
	}
	if end > n {
		end = n
	}
	if start > end {
		return object.NewList(nil), nil
	}
	return object.NewList((*l.Elements)[start-1 : end]), nil
}

func biSetitem(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > int64(len(*l.Elements)) {
		return nil, eval.Errorf("setitem: index %d out of range", idx)
	}
	(*l.Elements)[idx-1] = args[2]
	return object.NilValue, nil
}
