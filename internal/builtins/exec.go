// ==============================================================================================
// FILE: internal/builtins/exec.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: Shared machinery for every control-flow builtin (§4.6, §4.7): a body argument
//          arrives either as a Block — a `do ... end` form, already scanned into Tokens by
//          EvalNext's rule 4 — or as a List of bare words — a `[...]` literal, which §4.6
//          says must be re-tokenised ("parsed") before each run. execStatements/execResults
//          accept either so `if`, `while`, `for`, `foreach` and `ifelse` can all be written
//          with whichever body form reads best at the call site.
// ==============================================================================================

package builtins

import (
	"lunar/internal/eval"
	"lunar/internal/lexer"
	"lunar/internal/object"
)

func tokensOf(body object.Value) ([]object.Token, *eval.Error) {
	switch b := body.(type) {
	case *object.Block:
		return b.Tokens, nil
	case *object.List:
		words, err := listWords(b)
		if err != nil {
			return nil, err
		}
		toks, tokErr := lexer.TokenizeWords(words, 0)
		if tokErr != nil {
			return nil, eval.Errorf("%s", tokErr.Error())
		}
		return toks, nil
	default:
		return nil, eval.TypeErrorf("expected a `do ... end` block or a `[...]` list, got %s", body.Type())
	}
}

// execStatements runs body statement-style (§4.3 `run`), discarding its value.
func execStatements(scope *object.Scope, body object.Value) *eval.Error {
	toks, err := tokensOf(body)
	if err != nil {
		return err
	}
	_, runErr := eval.Run(toks, scope)
	return runErr
}

// execResults runs body collecting every produced value (§4.3 `results`).
func execResults(scope *object.Scope, body object.Value) (*object.List, *eval.Error) {
	toks, err := tokensOf(body)
	if err != nil {
		return nil, err
	}
	return eval.Results(toks, scope)
}
