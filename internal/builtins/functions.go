// ==============================================================================================
// FILE: internal/builtins/functions.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Functions* group of §6: fn function apply map filter arity. `fn` builds an
//          anonymous Closure capturing the current scope (§4.4); `function` is `fn` plus binding
//          the result to a name via write-through `make`, which is how `function sq [n] [ ... ]`
//          in §8's scenarios makes `sq` callable as a bare word afterward. `apply`/`map`/`filter`
//          let user code treat a Closure as a first-class value instead of only calling it from
//          the token stream.
// ==============================================================================================

package builtins

import (
	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerFunctions() {
	define("fn", 2, biFn)
	define("function", 3, biFunction)
	define("apply", 2, biApply)
	define("map", 2, biMap)
	define("filter", 2, biFilter)
	define("arity", 1, biArity)
}

func closureParams(params object.Value) ([]string, *eval.Error) {
	list, err := asList(params)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(*list.Elements))
	for i, el := range *list.Elements {
		name, werr := wordOf(el)
		if werr != nil {
			return nil, werr
		}
		names[i] = name
	}
	return names, nil
}

func biFn(scope *object.Scope, args []object.Value) (object.Value, error) {
	names, err := closureParams(args[0])
	if err != nil {
		return nil, err
	}
	body, err := tokensOf(args[1])
	if err != nil {
		return nil, err
	}
	return &object.Closure{Params: names, Body: body, Env: scope}, nil
}

func biFunction(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := wordOf(args[0])
	if err != nil {
		return nil, err
	}
	names, err := closureParams(args[1])
	if err != nil {
		return nil, err
	}
	body, err := tokensOf(args[2])
	if err != nil {
		return nil, err
	}
	scope.Set(name, &object.Closure{Params: names, Body: body, Env: scope})
	return object.NilValue, nil
}

func biApply(scope *object.Scope, args []object.Value) (object.Value, error) {
	closure, err := asClosure(args[0])
	if err != nil {
		return nil, err
	}
	argList, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	v, callErr := eval.ApplyClosure(closure, *argList.Elements)
	if callErr != nil {
		return nil, callErr
	}
	return v, nil
}

func biMap(scope *object.Scope, args []object.Value) (object.Value, error) {
	closure, err := asClosure(args[0])
	if err != nil {
		return nil, err
	}
	list, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	out := make([]object.Value, len(*list.Elements))
	for i, el := range *list.Elements {
		v, callErr := eval.ApplyClosure(closure, []object.Value{el})
		if callErr != nil {
			return nil, callErr
		}
		out[i] = v
	}
	return object.NewList(out), nil
}

func biFilter(scope *object.Scope, args []object.Value) (object.Value, error) {
	closure, err := asClosure(args[0])
	if err != nil {
		return nil, err
	}
	list, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	var out []object.Value
	for _, el := range *list.Elements {
		v, callErr := eval.ApplyClosure(closure, []object.Value{el})
		if callErr != nil {
			return nil, callErr
		}
		if v.Truthy() {
			out = append(out, el)
		}
	}
	return object.NewList(out), nil
}

func biArity(scope *object.Scope, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.Closure:
		return object.Int{Value: int64(len(v.Params))}, nil
	case *object.Procedure:
		return object.Int{Value: int64(v.Arity)}, nil
	default:
		return nil, eval.TypeErrorf("arity expects a function or procedure, got %s", args[0].Type())
	}
}
