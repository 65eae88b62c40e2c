// ==============================================================================================
// FILE: internal/lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: The tokeniser/parser of §4.1. Where the teacher's lexer.Lexer scans a source string
//          rune by rune into conventional lexical categories (IDENT, INT, LBRACE, ...) for a
//          Pratt parser to later assemble into an AST, Lunar has no separate parse tree: each
//          whitespace-separated WORD is classified, in one pass, directly into the Token the
//          evaluator will later pull from (internal/object.Token). "Tokeniser" and "parser" are
//          the same step here, per spec.md's naming.
// ==============================================================================================

package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"lunar/internal/object"
)

// TokenizeSource splits source into lines, tokenises each independently (so a `--` comment or
// an unclosed `[` cannot leak past a line boundary — file format §6), and concatenates the
// resulting token sequences into one program, per the data model's lifecycle note in §3.
func TokenizeSource(source string) ([]object.Token, error) {
	var all []object.Token
	for i, line := range strings.Split(source, "\n") {
		lineNo := i + 1
		toks, err := TokenizeLine(line, lineNo)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		all = append(all, toks...)
	}
	return all, nil
}

// TokenizeLine splits one line on whitespace and classifies each word via TokenizeWords.
func TokenizeLine(line string, lineNo int) ([]object.Token, error) {
	return TokenizeWords(strings.Fields(line), lineNo)
}

// TokenizeWords applies the per-word classification rules of §4.1 to an already
// whitespace-split word list. The CLI (§4.9) calls this directly on os.Args so that a Lunar
// program supplied on the command line is tokenised exactly like one line of a loaded file.
func TokenizeWords(words []string, lineNo int) ([]object.Token, error) {
	var toks []object.Token

	var accumulating bool
	var buf []string

	closeList := func() {
		elems := make([]object.Value, len(buf))
		for i, w := range buf {
			elems[i] = object.Str{Value: w}
		}
		toks = append(toks, object.LitToken(object.NewList(elems), lineNo))
		accumulating = false
		buf = nil
	}

	for _, w := range words {
		if accumulating {
			// Rule 1: keep accumulating a list literal until a word ends with ']'.
			if strings.HasSuffix(w, "]") {
				w = strings.TrimSuffix(w, "]")
				if w != "" {
					buf = append(buf, w)
				}
				closeList()
			} else {
				buf = append(buf, w)
			}
			continue
		}

		switch {
		case w == "[]":
			// Rule 2: empty list literal.
			toks = append(toks, object.LitToken(object.NewList(nil), lineNo))

		case strings.HasPrefix(w, "["):
			// Rule 3: start a list literal buffer; close immediately if self-contained.
			w = strings.TrimPrefix(w, "[")
			accumulating = true
			if strings.HasSuffix(w, "]") {
				w = strings.TrimSuffix(w, "]")
				if w != "" {
					buf = append(buf, w)
				}
				closeList()
			} else if w != "" {
				buf = append(buf, w)
			}

		case strings.HasPrefix(w, "--"):
			// Rule 4: rest of the line is a comment.
			return toks, nil

		case strings.HasPrefix(w, ":") && len(w) > 1:
			// Rule 5: variable reference.
			toks = append(toks, object.RefToken(strings.ToLower(w[1:]), lineNo))

		case strings.EqualFold(w, "do") || strings.EqualFold(w, "end"):
			// Rule 6: block sentinels.
			toks = append(toks, object.WordToken(strings.ToLower(w), lineNo))

		case strings.EqualFold(w, "true"):
			toks = append(toks, object.LitToken(object.True, lineNo))
		case strings.EqualFold(w, "false"):
			toks = append(toks, object.LitToken(object.False, lineNo))
		case strings.EqualFold(w, "nil"):
			toks = append(toks, object.LitToken(object.NilValue, lineNo))

		default:
			if proc, ok := object.LookupProcedure(w); ok {
				// Rule 8: known builtin.
				toks = append(toks, object.ProcToken(proc, lineNo))
			} else if n, err := strconv.ParseInt(w, 10, 64); err == nil {
				// Rule 9: signed integer.
				toks = append(toks, object.LitToken(object.Int{Value: n}, lineNo))
			} else if f, err := strconv.ParseFloat(w, 64); err == nil {
				// Rule 10: floating point.
				toks = append(toks, object.LitToken(object.Float{Value: f}, lineNo))
			} else {
				// Rule 11: bare word — an identifier, an argument name, or an as-yet-unbound
				// name. Resolved against the active Scope at evaluation time (§4.3 rule 5).
				toks = append(toks, object.WordToken(strings.ToLower(w), lineNo))
			}
		}
	}

	if accumulating {
		return nil, fmt.Errorf("unclosed list literal at end of input")
	}
	return toks, nil
}
