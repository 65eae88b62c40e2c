// ==============================================================================================
// FILE: internal/builtins/flow.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Flow* group of §6: break continue return if ifelse test iftrue iffalse while
//          for foreach. These are ordinary Procedure Table entries like any other builtin —
//          EvalNext never special-cases them — but their handlers are the ones that read and
//          write the Scope's control-flow flags (§4.5) and, for the loop forms, drive
//          execStatements/execResults repeatedly instead of once.
// ==============================================================================================

package builtins

import (
	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerFlow() {
	define("break", 0, biBreak)
	define("continue", 0, biContinue)
	define("return", 1, biReturn)
	define("if", 2, biIf)
	define("ifelse", 3, biIfelse)
	define("test", 1, biTest)
	define("iftrue", 1, biIftrue)
	define("iffalse", 1, biIffalse)
	define("while", 2, biWhile)
	define("for", 5, biFor)
	define("foreach", 3, biForeach)
}

func biBreak(scope *object.Scope, args []object.Value) (object.Value, error) {
	scope.Breaking = true
	return object.NilValue, nil
}

func biContinue(scope *object.Scope, args []object.Value) (object.Value, error) {
	scope.Continuing = true
	return object.NilValue, nil
}

func biReturn(scope *object.Scope, args []object.Value) (object.Value, error) {
	scope.Returning = true
	return args[0], nil
}

func biIf(scope *object.Scope, args []object.Value) (object.Value, error) {
	if args[0].Truthy() {
		if err := execStatements(scope, args[1]); err != nil {
			return nil, err
		}
	}
	return object.NilValue, nil
}

func biIfelse(scope *object.Scope, args []object.Value) (object.Value, error) {
	branch := args[2]
	if args[0].Truthy() {
		branch = args[1]
	}
	results, err := execResults(scope, branch)
	if err != nil {
		return nil, err
	}
	if len(*results.Elements) == 0 {
		return object.NilValue, nil
	}
	return (*results.Elements)[0], nil
}

func biTest(scope *object.Scope, args []object.Value) (object.Value, error) {
	scope.Test = args[0].Truthy()
	return object.NilValue, nil
}

func biIftrue(scope *object.Scope, args []object.Value) (object.Value, error) {
	if scope.Test {
		if err := execStatements(scope, args[0]); err != nil {
			return nil, err
		}
	}
	return object.NilValue, nil
}

func biIffalse(scope *object.Scope, args []object.Value) (object.Value, error) {
	if !scope.Test {
		if err := execStatements(scope, args[0]); err != nil {
			return nil, err
		}
	}
	return object.NilValue, nil
}

// runLoopBody executes one iteration's body and reports, per §4.5, whether the loop must now
// stop: `break` is consumed here (flag cleared, loop ends); `continue` is consumed here too
// (flag cleared) but only ends this iteration, not the loop; `return` is never consumed by a
// loop — it is left set on scope and the loop simply stops, so the enclosing Run/Results call
// for whatever contains this loop will see it and unwind further.
func runLoopBody(scope *object.Scope, body object.Value) (stop bool, err *eval.Error) {
	if err = execStatements(scope, body); err != nil {
		return true, err
	}
	switch {
	case scope.Returning:
		return true, nil
	case scope.Breaking:
		scope.Breaking = false
		return true, nil
	case scope.Continuing:
		scope.Continuing = false
		return false, nil
	default:
		return false, nil
	}
}

func biWhile(scope *object.Scope, args []object.Value) (object.Value, error) {
	condBody, body := args[0], args[1]
	for {
		results, err := execResults(scope, condBody)
		if err != nil {
			return nil, err
		}
		truthy := len(*results.Elements) > 0 && (*results.Elements)[0].Truthy()
		if !truthy {
			return object.NilValue, nil
		}
		stop, err := runLoopBody(scope, body)
		if err != nil {
			return nil, err
		}
		if stop {
			return object.NilValue, nil
		}
	}
}

// biFor re-reads the loop variable out of scope for both the continuation test and the
// per-iteration increment, rather than tracking it in a private Go counter — a body that
// reassigns it with `make` changes stepping/termination from that point on, the same as the
// canonical source's do_for (original_source/lunar.py:224-243), which reads scope[varname]
// fresh each pass instead of closing over the initial value.
func biFor(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, werr := wordOf(args[0])
	if werr != nil {
		return nil, werr
	}
	from, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	to, err := asInt(args[2])
	if err != nil {
		return nil, err
	}
	step, err := asInt(args[3])
	if err != nil {
		return nil, err
	}
	body := args[4]

	ascending := to >= from
	scope.DefineLocal(name, object.Int{Value: from})
	for {
		v, err := currentLoopVar(scope, name)
		if err != nil {
			return nil, err
		}
		if ascending && v > to {
			break
		}
		if !ascending && v < to {
			break
		}
		stop, rerr := runLoopBody(scope, body)
		if rerr != nil {
			return nil, rerr
		}
		if stop {
			break
		}
		if step == 0 {
			// A zero step would otherwise loop forever; nothing in §4.6 licenses that, so
			// treat it the way the boundary condition already implies: one iteration only.
			break
		}
		v, err = currentLoopVar(scope, name)
		if err != nil {
			return nil, err
		}
		scope.Set(name, object.Int{Value: v + step})
	}
	return object.NilValue, nil
}

// currentLoopVar reads back a `for` loop variable, in case the body reassigned it with `make`.
func currentLoopVar(scope *object.Scope, name string) (int64, *eval.Error) {
	v, ok := scope.Get(name)
	if !ok {
		return 0, eval.Errorf("for: loop variable %s vanished from scope", name)
	}
	return asInt(v)
}

func biForeach(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, werr := wordOf(args[0])
	if werr != nil {
		return nil, werr
	}
	list, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	body := args[2]

	for _, item := range *list.Elements {
		scope.DefineLocal(name, item)
		stop, err := runLoopBody(scope, body)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return object.NilValue, nil
}
