// ==============================================================================================
// FILE: internal/builtins/bindings.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Bindings* group of §6: make name local localmake thing. `make` is the
//          write-through assignment §4.2/§8 invariant 4 describes; `name` is its
//          reverse-argument alias; `local`/`localmake` bypass write-through to declare a name
//          (or several, given a list) in the current frame only; `thing` is indirect lookup —
//          the variable-by-name counterpart to `:name`, for code that computes the name it
//          wants to read.
// ==============================================================================================

package builtins

import (
	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerBindings() {
	define("make", 2, biMake)
	define("name", 2, biName)
	define("local", 1, biLocal)
	define("localmake", 2, biLocalmake)
	define("thing", 1, biThing)
}

func biMake(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := wordOf(args[0])
	if err != nil {
		return nil, err
	}
	scope.Set(name, args[1])
	return object.NilValue, nil
}

// biName is `make` with its arguments reversed: `name value varname`.
func biName(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := wordOf(args[1])
	if err != nil {
		return nil, err
	}
	scope.Set(name, args[0])
	return object.NilValue, nil
}

// biLocal declares a name (or, given a list literal, every name in it) in the current frame
// only, bound to Nil until assigned.
func biLocal(scope *object.Scope, args []object.Value) (object.Value, error) {
	if l, ok := args[0].(*object.List); ok {
		names, err := listWords(l)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			scope.DefineLocal(n, object.NilValue)
		}
		return object.NilValue, nil
	}
	name, err := wordOf(args[0])
	if err != nil {
		return nil, err
	}
	scope.DefineLocal(name, object.NilValue)
	return object.NilValue, nil
}

func biLocalmake(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := wordOf(args[0])
	if err != nil {
		return nil, err
	}
	scope.DefineLocal(name, args[1])
	return object.NilValue, nil
}

func biThing(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	if v, ok := scope.Get(name); ok {
		return v, nil
	}
	return nil, eval.UndefinedVariablef("undefined variable: %s", name)
}
