// ==============================================================================================
// FILE: internal/eval/closure.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: Closure invocation (§4.4). Generalises the teacher's applyFunction — which extends
//          the Function's captured env with one fresh NewEnclosedEnvironment — to Lunar's
//          "returning" flag discipline: a closure call is the one place that flag is consumed
//          and cleared, so it can never leak into the caller's own control flow.
// ==============================================================================================

package eval

import "lunar/internal/object"

// ApplyClosure constructs a fresh scope parented on the closure's *captured* scope (never the
// caller's — lexical scoping per §3), binds the formals to args, runs the body, and returns
// whatever `return` produced (or Nil if the body ran off the end without one).
func ApplyClosure(closure *object.Closure, args []object.Value) (object.Value, *Error) {
	if len(args) != len(closure.Params) {
		return nil, newError(NotEnoughArgumentsKind,
			"closure wants %d argument(s), got %d", len(closure.Params), len(args))
	}

	call := object.NewChildScope(closure.Env)
	for i, name := range closure.Params {
		call.DefineLocal(name, args[i])
	}

	result, err := Run(closure.Body, call)
	if err != nil {
		return nil, err
	}
	if call.Returning {
		call.ClearReturning()
		return result, nil
	}
	return object.NilValue, nil
}
