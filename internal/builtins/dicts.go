// ==============================================================================================
// FILE: internal/builtins/dicts.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Dicts* group of §6: dict get put del keys. `get` returns Nil for a missing key
//          rather than raising — `dict`/`get` form the sparse, tolerant counterpart to the
//          strict `item`/`setitem` pair over Lists.
// ==============================================================================================

package builtins

import "lunar/internal/object"

func registerDicts() {
	define("dict", 0, biDict)
	define("get", 2, biGet)
	define("put", 3, biPut)
	define("del", 2, biDel)
	define("keys", 1, biKeys)
}

func biDict(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.NewDict(), nil
}

func biGet(scope *object.Scope, args []object.Value) (object.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	if v, ok := d.Get(args[1]); ok {
		return v, nil
	}
	return object.NilValue, nil
}

func biPut(scope *object.Scope, args []object.Value) (object.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	d.Put(args[1], args[2])
	return object.NilValue, nil
}

func biDel(scope *object.Scope, args []object.Value) (object.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	d.Delete(args[1])
	return object.NilValue, nil
}

func biKeys(scope *object.Scope, args []object.Value) (object.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	return object.NewList(d.Keys()), nil
}
