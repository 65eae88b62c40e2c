// ==============================================================================================
// FILE: internal/object/registry.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The Procedure Table (§6): a flat name -> *Procedure registry populated by
//          internal/builtins at package init, and read by internal/lexer's word-classification
//          rule 8. Keeping the table itself here (rather than in internal/builtins) lets the
//          tokeniser depend only on object, never on the builtin handler implementations —
//          which in turn depend on internal/eval to run Block/list bodies — so the tokeniser
//          and the evaluator never import each other.
// ==============================================================================================

package object

var registry = make(map[string]*Procedure)

// RegisterProcedure installs (or replaces) a builtin under its lowercased name.
func RegisterProcedure(p *Procedure) {
	registry[key(p.Name)] = p
}

// LookupProcedure is rule 8 of §4.1: is this word a known builtin?
func LookupProcedure(name string) (*Procedure, bool) {
	p, ok := registry[key(name)]
	return p, ok
}

// RegisteredProcedureNames returns every registered name, in no particular order.
func RegisteredProcedureNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
