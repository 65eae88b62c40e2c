// ==============================================================================================
// FILE: internal/object/value_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the Value tagged union — truthiness, Inspect rendering, and Dict's
//          insertion-ordered keys (§3, §4.7).
// ==============================================================================================

package object

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", NilValue, false},
		{"false", False, false},
		{"true", True, true},
		{"zero int", Int{Value: 0}, false},
		{"nonzero int", Int{Value: -1}, true},
		{"zero float", Float{Value: 0}, false},
		{"empty string", Str{Value: ""}, false},
		{"nonempty string", Str{Value: "x"}, true},
		{"empty list", NewList(nil), false},
		{"nonempty list", NewList([]Value{Int{Value: 1}}), true},
		{"empty dict", NewDict(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Truthy(); got != c.want {
				t.Errorf("Truthy() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestListInspect(t *testing.T) {
	l := NewList([]Value{Int{Value: 1}, Str{Value: "a"}})
	if got, want := l.Inspect(), "[1 a]"; got != want {
		t.Errorf("Inspect() = %q, want %q", got, want)
	}
}

func TestListAliasing(t *testing.T) {
	l := NewList([]Value{Int{Value: 1}})
	alias := l
	(*alias.Elements)[0] = Int{Value: 99}

	testIntValue(t, (*l.Elements)[0], 99)
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Put(Str{Value: "b"}, Int{Value: 2})
	d.Put(Str{Value: "a"}, Int{Value: 1})

	keys := d.Keys()
	if len(keys) != 2 || keys[0].Inspect() != "b" || keys[1].Inspect() != "a" {
		t.Errorf("Keys() = %v, want insertion order [b a]", keys)
	}
}

func TestDictDeleteRemovesFromOrderAndPairs(t *testing.T) {
	d := NewDict()
	d.Put(Str{Value: "a"}, Int{Value: 1})
	d.Put(Str{Value: "b"}, Int{Value: 2})

	d.Delete(Str{Value: "a"})

	if _, ok := d.Get(Str{Value: "a"}); ok {
		t.Errorf("expected a to be deleted")
	}
	if keys := d.Keys(); len(keys) != 1 || keys[0].Inspect() != "b" {
		t.Errorf("Keys() after delete = %v, want [b]", keys)
	}
}
