// ==============================================================================================
// FILE: internal/builtins/compare.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Comparison/logic* group of §6: lt lte eq neq gt gte and or not. Because
//          applyProcedure (§4.3 rule 1) pulls and evaluates every argument before calling the
//          handler, `and`/`or` are unavoidably eager — there is no lazy-evaluation hook to give
//          them short-circuit behaviour, so both operands always run.
// ==============================================================================================

package builtins

import "lunar/internal/object"

func registerComparison() {
	define("lt", 2, biLt)
	define("lte", 2, biLte)
	define("eq", 2, biEq)
	define("neq", 2, biNeq)
	define("gt", 2, biGt)
	define("gte", 2, biGte)
	define("and", 2, biAnd)
	define("or", 2, biOr)
	define("not", 1, biNot)
}

func biLt(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(a < b), nil
}

func biLte(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(a <= b), nil
}

func biGt(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(a > b), nil
}

func biGte(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(a >= b), nil
}

func biEq(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Native(valuesEqual(args[0], args[1])), nil
}

func biNeq(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Native(!valuesEqual(args[0], args[1])), nil
}

func biAnd(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Native(args[0].Truthy() && args[1].Truthy()), nil
}

func biOr(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Native(args[0].Truthy() || args[1].Truthy()), nil
}

func biNot(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Native(!args[0].Truthy()), nil
}
