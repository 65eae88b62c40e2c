// ==============================================================================================
// FILE: internal/object/scope_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the lexical scope chain — write-through assignment, local shadowing,
//          and the control-flow flags. Matches the teacher's hand-rolled-helper testing style.
// ==============================================================================================

package object

import "testing"

func testIntValue(t *testing.T, v Value, expected int64) {
	t.Helper()
	i, ok := v.(Int)
	if !ok {
		t.Fatalf("value is not Int. got=%T (%+v)", v, v)
	}
	if i.Value != expected {
		t.Errorf("wrong Int value. got=%d, want=%d", i.Value, expected)
	}
}

func TestScope_GetWalksParentChain(t *testing.T) {
	root := NewScope()
	root.DefineLocal("x", Int{Value: 1})
	child := NewChildScope(root)

	v, ok := child.Get("x")
	if !ok {
		t.Fatalf("expected to find x via parent chain")
	}
	testIntValue(t, v, 1)
}

func TestScope_SetWriteThroughMutatesOuterBinding(t *testing.T) {
	root := NewScope()
	root.DefineLocal("x", Int{Value: 1})
	child := NewChildScope(root)

	child.Set("x", Int{Value: 2})

	v, _ := root.Get("x")
	testIntValue(t, v, 2)
	if _, ok := child.vars["x"]; ok {
		t.Errorf("write-through assignment must not create a binding in the child scope")
	}
}

func TestScope_SetCreatesAtRootWhenNoBindingExistsAnywhere(t *testing.T) {
	root := NewScope()
	mid := NewChildScope(root)
	leaf := NewChildScope(mid)

	leaf.Set("y", Int{Value: 5})

	if _, ok := leaf.vars["y"]; ok {
		t.Fatalf("new binding from write-through must land at the root, not the calling scope")
	}
	v, ok := root.Get("y")
	if !ok {
		t.Fatalf("expected y to be created at the root scope")
	}
	testIntValue(t, v, 5)
}

func TestScope_DefineLocalShadowsWithoutTouchingParent(t *testing.T) {
	root := NewScope()
	root.DefineLocal("x", Int{Value: 1})
	child := NewChildScope(root)

	child.DefineLocal("x", Int{Value: 99})

	v, _ := child.Get("x")
	testIntValue(t, v, 99)
	v, _ = root.Get("x")
	testIntValue(t, v, 1)
}

func TestScope_NamesAreCaseInsensitive(t *testing.T) {
	s := NewScope()
	s.DefineLocal("X", Int{Value: 7})

	v, ok := s.Get("x")
	if !ok {
		t.Fatalf("expected lowercased lookup to find uppercase-defined binding")
	}
	testIntValue(t, v, 7)
}

func TestScope_SignalledReflectsAnyFlag(t *testing.T) {
	s := NewScope()
	if s.Signalled() {
		t.Fatalf("fresh scope should not be signalled")
	}
	s.Breaking = true
	if !s.Signalled() {
		t.Errorf("Signalled should report true once Breaking is set")
	}
}

func TestScope_ClearReturningOnlyAffectsThisScope(t *testing.T) {
	parent := NewScope()
	parent.Returning = true
	s := NewChildScope(parent)
	s.Returning = true
	s.ClearReturning()
	if s.Returning {
		t.Errorf("ClearReturning should reset the flag")
	}
	if !parent.Returning {
		t.Errorf("ClearReturning must not touch the parent scope's flag")
	}
}
