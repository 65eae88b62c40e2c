// ==============================================================================================
// FILE: internal/eval/closure_test.go
// ==============================================================================================
// PURPOSE: Unit tests for closure application — lexical capture (§8 invariant 3) and the
//          per-call consumption of the `returning` flag (§4.4, §8 invariant 5).
// ==============================================================================================

package eval

import (
	"testing"

	"lunar/internal/object"
)

func TestApplyClosure_CapturesDefiningScopeNotCaller(t *testing.T) {
	defining := object.NewScope()
	defining.DefineLocal("x", object.Int{Value: 1})

	closure := &object.Closure{
		Params: nil,
		Body:   []object.Token{procToken("eval-return"), object.RefToken("x", 0)},
		Env:    defining,
	}

	caller := object.NewScope()
	caller.DefineLocal("x", object.Int{Value: 999})

	v, err := ApplyClosure(closure, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testInt(t, v, 1)
}

func TestApplyClosure_RedefiningCallerAfterConstructionDoesNotLeak(t *testing.T) {
	defining := object.NewScope()
	closure := &object.Closure{
		Params: nil,
		Body:   []object.Token{object.RefToken("y", 0)},
		Env:    defining,
	}

	// y did not exist in the captured scope when the closure was built; binding it in a
	// different scope afterward must not become visible to the closure.
	other := object.NewScope()
	other.DefineLocal("y", object.Int{Value: 42})

	_, err := ApplyClosure(closure, nil)
	if err == nil || err.Kind != UndefinedVariableKind {
		t.Fatalf("got %v, want UndefinedVariable (closure must not see `other`'s binding)", err)
	}
}

func TestApplyClosure_ReturnIsConsumedByThisCallOnly(t *testing.T) {
	defining := object.NewScope()
	closure := &object.Closure{
		Params: []string{"n"},
		Body: []object.Token{
			procToken("eval-return"),
			object.RefToken("n", 0),
		},
		Env: defining,
	}

	v, err := ApplyClosure(closure, []object.Value{object.Int{Value: 7}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testInt(t, v, 7)
	if defining.Returning {
		t.Errorf("returning flag must be cleared on the call scope, not leak to the captured scope")
	}
}

func init() {
	defineTestProc("eval-return", 1, func(scope *object.Scope, args []object.Value) (object.Value, error) {
		scope.Returning = true
		return args[0], nil
	})
}

func TestApplyClosure_WrongArgCountIsNotEnoughArguments(t *testing.T) {
	closure := &object.Closure{Params: []string{"a", "b"}, Body: nil, Env: object.NewScope()}
	_, err := ApplyClosure(closure, []object.Value{object.Int{Value: 1}})
	if err == nil || err.Kind != NotEnoughArgumentsKind {
		t.Fatalf("got %v, want NotEnoughArguments", err)
	}
}
