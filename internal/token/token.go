// ==============================================================================================
// FILE: internal/token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: The small, dependency-free vocabulary shared by the tokeniser (internal/lexer) and
//          the runtime value model (internal/object): the Kind enum a Token carries and the
//          two reserved sentinel words that delimit a `do ... end` block. It intentionally
//          knows nothing about object.Value — that coupling lives in object.Token, since a
//          Token's Literal/Proc payload and a Block's token sequence are mutually recursive.
// ==============================================================================================

package token

// Kind identifies which case of a Token is populated.
type Kind int

const (
	// Literal wraps a Value: the tokeniser produces Bool, Int, Float, List and Nil literals
	// directly from words, and the block scanner folds a nested `do ... end` Block into one.
	// (Closure has no literal surface form.)
	Literal Kind = iota
	// VarRef is a `:name` reference, resolved against the active Scope when evaluated.
	VarRef
	// Word is a bare, unresolved word: the sentinels Do/End, or an identifier that is neither
	// a reserved sentinel nor (at tokenise time) a known Procedure name.
	Word
	// Proc embeds a builtin Procedure handle directly, so the evaluator never re-looks-up a
	// name at call time.
	Proc
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "LITERAL"
	case VarRef:
		return "VARREF"
	case Word:
		return "WORD"
	case Proc:
		return "PROC"
	default:
		return "UNKNOWN"
	}
}

// Reserved sentinel words recognised by rule 6 of the tokeniser's per-word classification.
const (
	Do  = "do"
	End = "end"
)
