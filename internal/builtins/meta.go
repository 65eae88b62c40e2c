// ==============================================================================================
// FILE: internal/builtins/meta.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Meta* group of §6: parse run results load ignore throw catch. These are the
//          user-facing doors into the machinery internal/eval already provides — `parse` is the
//          only builtin that produces a Block from raw words without also running it, `load`
//          is the "module system" §1 allows, and `catch`/`throw` are the error-handling model
//          of §4.8/§7 made concrete.
// ==============================================================================================

package builtins

import (
	"context"
	"io"
	"os"

	"lunar/internal/diagnostics"
	"lunar/internal/eval"
	"lunar/internal/lexer"
	"lunar/internal/object"
)

func registerMeta() {
	define("parse", 1, biParse)
	define("run", 1, biRun)
	define("results", 1, biResults)
	define("load", 1, biLoad)
	define("ignore", 1, biIgnore)
	define("throw", 1, biThrow)
	define("catch", 2, biCatch)
}

// biParse tokenises a `[...]` list literal (or a raw Str line) into a Block, without running it
// — the counterpart to `run`/`results`, which execute a Block but never produce one.
func biParse(scope *object.Scope, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.List:
		words, err := listWords(v)
		if err != nil {
			return nil, err
		}
		toks, tokErr := lexer.TokenizeWords(words, 0)
		if tokErr != nil {
			return nil, eval.Errorf("%s", tokErr.Error())
		}
		return &object.Block{Tokens: toks}, nil
	case object.Str:
		toks, tokErr := lexer.TokenizeLine(v.Value, 0)
		if tokErr != nil {
			return nil, eval.Errorf("%s", tokErr.Error())
		}
		return &object.Block{Tokens: toks}, nil
	default:
		return nil, eval.TypeErrorf("parse expects a list or a string, got %s", args[0].Type())
	}
}

func biRun(scope *object.Scope, args []object.Value) (object.Value, error) {
	if err := execStatements(scope, args[0]); err != nil {
		return nil, err
	}
	return object.NilValue, nil
}

func biResults(scope *object.Scope, args []object.Value) (object.Value, error) {
	list, err := execResults(scope, args[0])
	if err != nil {
		return nil, err
	}
	return list, nil
}

// biLoad reads a source file, tokenises each line independently and concatenates the tokens
// into one program (§6 file format), and runs it in a scope nested under the caller's — so a top-level `make`/`function` inside the
// loaded file, finding no existing binding anywhere in the chain, lands at the shared global
// root and is visible to the caller once `load` returns. The file handle is closed on every
// exit path via defer, success or error alike (§5 resource discipline).
func biLoad(scope *object.Scope, args []object.Value) (object.Value, error) {
	path, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, eval.Errorf("load: %s", openErr.Error())
	}
	defer f.Close()

	data, readErr := io.ReadAll(f)
	if readErr != nil {
		return nil, eval.Errorf("load: %s", readErr.Error())
	}

	toks, tokErr := lexer.TokenizeSource(string(data))
	if tokErr != nil {
		return nil, eval.Errorf("load: %s", tokErr.Error())
	}

	fileScope := object.NewChildScope(scope)
	if _, runErr := eval.Run(toks, fileScope); runErr != nil {
		return nil, runErr
	}
	return object.NilValue, nil
}

// biIgnore evaluates its argument (already done by the pull-parser before this handler runs)
// and discards it — the escape hatch for a statement-position expression that would otherwise
// trip `run`'s UnusedValue check.
func biIgnore(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.NilValue, nil
}

func biThrow(scope *object.Scope, args []object.Value) (object.Value, error) {
	return nil, eval.Errorf("%s", args[0].Inspect())
}

// biCatch runs body and always rebinds varname (§4.8, §8 invariant 6): to the error message on
// failure, to Nil on success — and never lets the error itself propagate further.
func biCatch(scope *object.Scope, args []object.Value) (object.Value, error) {
	name, err := wordOf(args[0])
	if err != nil {
		return nil, err
	}
	body := args[1]

	if runErr := execStatements(scope, body); runErr != nil {
		diagnostics.Recovered(context.Background(), runErr)
		scope.Set(name, object.Str{Value: runErr.Message})
	} else {
		scope.Set(name, object.NilValue)
	}
	return object.NilValue, nil
}
