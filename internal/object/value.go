// ==============================================================================================
// FILE: internal/object/value.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the tagged union of every runtime value in Lunar. This plays the role the
//          teacher's object.Object interface plays for Eloquence, generalised from an
//          AST-walking interpreter's value set to the flat, pull-parsed one the spec calls for:
//          Nil, Bool, Int, Float, Str, List, Dict, Closure, Procedure and Block.
// ==============================================================================================

package object

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies a Value's case at runtime.
type Type string

const (
	NilType      Type = "NIL"
	BoolType     Type = "BOOL"
	IntType      Type = "INT"
	FloatType    Type = "FLOAT"
	StrType      Type = "STR"
	ListType     Type = "LIST"
	DictType     Type = "DICT"
	ClosureType  Type = "CLOSURE"
	ProcType     Type = "PROCEDURE"
	BlockType    Type = "BLOCK"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
	Inspect() string // Human-readable rendering, used by `print`/`show` and error messages.
	Truthy() bool     // Lunar's truthiness rule (§4.7): non-Nil/false/zero/empty is truthy.
}

// ----------------------------------------------------------------------------------------------
// Nil
// ----------------------------------------------------------------------------------------------

type Nil struct{}

func (Nil) Type() Type      { return NilType }
func (Nil) Inspect() string { return "nil" }
func (Nil) Truthy() bool    { return false }

// NilValue is the single shared Nil instance; Nil carries no state so one suffices.
var NilValue Value = Nil{}

// ----------------------------------------------------------------------------------------------
// Bool
// ----------------------------------------------------------------------------------------------

type Bool struct{ Value bool }

func (b Bool) Type() Type      { return BoolType }
func (b Bool) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b Bool) Truthy() bool    { return b.Value }

var (
	True  Value = Bool{Value: true}
	False Value = Bool{Value: false}
)

// Native converts a host bool into the shared True/False singleton.
func Native(b bool) Value {
	if b {
		return True
	}
	return False
}

// ----------------------------------------------------------------------------------------------
// Int / Float
// ----------------------------------------------------------------------------------------------

type Int struct{ Value int64 }

func (i Int) Type() Type      { return IntType }
func (i Int) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i Int) Truthy() bool    { return i.Value != 0 }

type Float struct{ Value float64 }

func (f Float) Type() Type      { return FloatType }
func (f Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }
func (f Float) Truthy() bool    { return f.Value != 0 }

// ----------------------------------------------------------------------------------------------
// Str
// ----------------------------------------------------------------------------------------------

type Str struct{ Value string }

func (s Str) Type() Type      { return StrType }
func (s Str) Inspect() string { return s.Value }
func (s Str) Truthy() bool    { return s.Value != "" }

// ----------------------------------------------------------------------------------------------
// List — mutable, shared-by-reference per §5 (aliasing is observable).
// ----------------------------------------------------------------------------------------------

type List struct {
	Elements *[]Value
}

// NewList wraps a freshly allocated backing slice; callers that want a value-receiver copy
// that still aliases the same elements (spec: "List and Dict values are mutable and shared by
// reference") should copy the List struct, not *Elements.
func NewList(elements []Value) *List {
	e := append([]Value(nil), elements...)
	return &List{Elements: &e}
}

func (l *List) Type() Type { return ListType }
func (l *List) Truthy() bool {
	return len(*l.Elements) != 0
}
func (l *List) Inspect() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range *l.Elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ----------------------------------------------------------------------------------------------
// Dict — mutable, shared-by-reference, keyed by a Lunar Value's Inspect() text.
// ----------------------------------------------------------------------------------------------

// Dict keys are compared by their Inspect() rendering. This is adequate for the key types
// Lunar programs actually use (Str, Int, Bool) and avoids requiring every Value to implement a
// separate hashable-key interface the way the teacher's object.Hashable does — a generalisation
// not needed here because spec.md leaves Dict's iteration order unspecified and never requires
// non-primitive keys.
type Dict struct {
	pairs map[string]dictPair
	order []string // insertion order, for `keys`
}

type dictPair struct {
	key Value
	val Value
}

func NewDict() *Dict {
	return &Dict{pairs: make(map[string]dictPair)}
}

func (d *Dict) Type() Type      { return DictType }
func (d *Dict) Truthy() bool    { return len(d.pairs) != 0 }
func (d *Dict) Inspect() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range d.order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		p := d.pairs[k]
		sb.WriteString(p.key.Inspect())
		sb.WriteByte(':')
		sb.WriteString(p.val.Inspect())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (d *Dict) Get(key Value) (Value, bool) {
	p, ok := d.pairs[key.Inspect()]
	if !ok {
		return nil, false
	}
	return p.val, true
}

func (d *Dict) Put(key, val Value) {
	k := key.Inspect()
	if _, exists := d.pairs[k]; !exists {
		d.order = append(d.order, k)
	}
	d.pairs[k] = dictPair{key: key, val: val}
}

func (d *Dict) Delete(key Value) {
	k := key.Inspect()
	if _, ok := d.pairs[k]; !ok {
		return
	}
	delete(d.pairs, k)
	for i, o := range d.order {
		if o == k {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *Dict) Keys() []Value {
	keys := make([]Value, 0, len(d.order))
	for _, o := range d.order {
		keys = append(keys, d.pairs[o].key)
	}
	return keys
}

// SortedKeys returns the keys ordered by their Inspect() text, regardless of insertion order.
func (d *Dict) SortedKeys() []Value {
	keys := d.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].Inspect() < keys[j].Inspect() })
	return keys
}
