// ==============================================================================================
// FILE: internal/lexer/lexer_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the tokeniser/parser of §4.1 — each classification rule, list-literal
//          accumulation across words, comment handling, and the per-line isolation guarantee.
// ==============================================================================================

package lexer

import (
	"testing"

	"lunar/internal/object"
	"lunar/internal/token"
)

func tokenizeOrFail(t *testing.T, line string) []object.Token {
	t.Helper()
	toks, err := TokenizeLine(line, 1)
	if err != nil {
		t.Fatalf("TokenizeLine(%q) returned error: %v", line, err)
	}
	return toks
}

func TestTokenizeWords_Integer(t *testing.T) {
	toks := tokenizeOrFail(t, "42")
	if len(toks) != 1 || toks[0].Kind != token.Literal {
		t.Fatalf("got %+v, want a single Literal token", toks)
	}
	if i, ok := toks[0].Value.(object.Int); !ok || i.Value != 42 {
		t.Errorf("got %+v, want Int 42", toks[0].Value)
	}
}

func TestTokenizeWords_NegativeIntegerAndFloat(t *testing.T) {
	toks := tokenizeOrFail(t, "-7 3.5")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if i, ok := toks[0].Value.(object.Int); !ok || i.Value != -7 {
		t.Errorf("got %+v, want Int -7", toks[0].Value)
	}
	if f, ok := toks[1].Value.(object.Float); !ok || f.Value != 3.5 {
		t.Errorf("got %+v, want Float 3.5", toks[1].Value)
	}
}

func TestTokenizeWords_VariableReference(t *testing.T) {
	toks := tokenizeOrFail(t, ":x")
	if len(toks) != 1 || toks[0].Kind != token.VarRef || toks[0].Name != "x" {
		t.Fatalf("got %+v, want a VarRef to x", toks)
	}
}

func TestTokenizeWords_VariableReferenceIsLowercased(t *testing.T) {
	toks := tokenizeOrFail(t, ":Foo")
	if toks[0].Name != "foo" {
		t.Errorf("got Name=%q, want lowercased \"foo\"", toks[0].Name)
	}
}

func TestTokenizeWords_BooleansAndNil(t *testing.T) {
	toks := tokenizeOrFail(t, "true false nil")
	want := []object.Value{object.True, object.False, object.NilValue}
	for i, w := range want {
		if toks[i].Value != w {
			t.Errorf("token %d = %+v, want %+v", i, toks[i].Value, w)
		}
	}
}

func TestTokenizeWords_DoEndSentinels(t *testing.T) {
	toks := tokenizeOrFail(t, "do end")
	if toks[0].Kind != token.Word || toks[0].Name != token.Do {
		t.Errorf("expected do sentinel, got %+v", toks[0])
	}
	if toks[1].Kind != token.Word || toks[1].Name != token.End {
		t.Errorf("expected end sentinel, got %+v", toks[1])
	}
}

func TestTokenizeWords_BareWordIsAWordTokenNotAStrLiteral(t *testing.T) {
	toks := tokenizeOrFail(t, "frobnicate")
	if toks[0].Kind != token.Word {
		t.Fatalf("expected an unresolved bare word to tokenise as Word, got Kind=%v", toks[0].Kind)
	}
	if toks[0].Name != "frobnicate" {
		t.Errorf("got Name=%q, want \"frobnicate\"", toks[0].Name)
	}
}

func TestTokenizeWords_KnownProcedureBecomesProcToken(t *testing.T) {
	object.RegisterProcedure(&object.Procedure{Name: "lexertestproc", Arity: 0, Handler: nil})
	toks := tokenizeOrFail(t, "lexertestproc")
	if toks[0].Kind != token.Proc || toks[0].Proc.Name != "lexertestproc" {
		t.Fatalf("expected a Proc token, got %+v", toks[0])
	}
}

func TestTokenizeWords_EmptyListLiteral(t *testing.T) {
	toks := tokenizeOrFail(t, "[]")
	l, ok := toks[0].Value.(*object.List)
	if !ok || len(*l.Elements) != 0 {
		t.Fatalf("got %+v, want an empty List literal", toks[0].Value)
	}
}

func TestTokenizeWords_SelfContainedListLiteral(t *testing.T) {
	toks := tokenizeOrFail(t, "[make]")
	l := toks[0].Value.(*object.List)
	if len(*l.Elements) != 1 || (*l.Elements)[0].(object.Str).Value != "make" {
		t.Fatalf("got %+v, want [\"make\"]", l.Inspect())
	}
}

func TestTokenizeWords_ListLiteralAccumulatesAcrossWords(t *testing.T) {
	toks := tokenizeOrFail(t, "[ print :i ]")
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want exactly one List literal", len(toks))
	}
	l := toks[0].Value.(*object.List)
	words := make([]string, len(*l.Elements))
	for i, el := range *l.Elements {
		words[i] = el.(object.Str).Value
	}
	want := []string{"print", ":i"}
	if len(words) != len(want) || words[0] != want[0] || words[1] != want[1] {
		t.Errorf("got %v, want %v", words, want)
	}
}

func TestTokenizeWords_UnclosedListIsAnError(t *testing.T) {
	_, err := TokenizeLine("[ print :i", 1)
	if err == nil {
		t.Fatalf("expected an error for an unclosed list literal")
	}
}

func TestTokenizeWords_CommentDiscardsRestOfLine(t *testing.T) {
	toks := tokenizeOrFail(t, "42 -- ignored tail :x")
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1 (comment should discard the rest)", len(toks))
	}
}

func TestTokenizeSource_LinesAreIndependent(t *testing.T) {
	// A comment on line 1 must not swallow line 2.
	toks, err := TokenizeSource("42 -- comment\n7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (one per line)", len(toks))
	}
}
