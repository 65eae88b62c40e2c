// ==============================================================================================
// FILE: internal/object/scope.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The lexical environment chain (§3, §4.2). Generalises the teacher's
//          object.Environment — which always shadows in the current frame — to the
//          write-through discipline Lunar's `make` requires: assignment mutates the nearest
//          existing binding, creating a new one at the root only if none exists anywhere.
//          Also carries the per-scope control-flow flags threaded through by §4.5.
// ==============================================================================================

package object

import "strings"

// Scope is a mapping from lowercased name to Value, plus an optional parent and the
// control-flow flags the evaluator consults after every expression.
type Scope struct {
	vars   map[string]Value
	parent *Scope

	Breaking   bool
	Continuing bool
	Returning  bool
	Test       bool
}

// NewScope creates a fresh top-level scope (no parent — this is the root).
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// NewChildScope creates a scope lexically nested inside parent. Closures use this with their
// captured scope (never the caller's) per §4.4; loops and `do` blocks reuse the enclosing
// scope directly instead of calling this, per §4.5's "loops introduce no new scope" rule.
func NewChildScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]Value), parent: parent}
}

func key(name string) string { return strings.ToLower(name) }

// Get walks the parent chain; a missing name returns (nil, false) rather than an error —
// used by call sites that want §4.3 rule 5's fallback-to-Str-word behaviour.
func (s *Scope) Get(name string) (Value, bool) {
	n := key(name)
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[n]; ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup is Get but, when name is absent, returns whatever the supplied onMissing func returns;
// the caller decides how to report the miss, so object need not depend on eval's error type.
func (s *Scope) Lookup(name string, onMissing func(name string) Value) Value {
	if v, ok := s.Get(name); ok {
		return v
	}
	return onMissing(name)
}

// Set implements write-through assignment (§4.2): find the nearest ancestor already holding
// name and mutate it there; if none exists anywhere, create it in the root scope.
func (s *Scope) Set(name string, val Value) {
	n := key(name)
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.vars[n]; ok {
			sc.vars[n] = val
			return
		}
	}
	s.root().vars[n] = val
}

// DefineLocal creates or overwrites name in this scope's own map, bypassing write-through.
// Used by `local`/`localmake` and by loop constructs binding their iteration variable.
func (s *Scope) DefineLocal(name string, val Value) {
	s.vars[key(name)] = val
}

func (s *Scope) root() *Scope {
	sc := s
	for sc.parent != nil {
		sc = sc.parent
	}
	return sc
}

// ClearReturning resets the returning flag on this exact scope instance — used when a Closure
// invocation consumes its own body's `return` so the flag never leaks to the caller (§4.4).
func (s *Scope) ClearReturning() { s.Returning = false }

// Signalled reports whether any control-flow flag is currently set on this scope — the check
// `run`/`results` perform after every expression (§4.3, §4.5).
func (s *Scope) Signalled() bool {
	return s.Breaking || s.Continuing || s.Returning
}
