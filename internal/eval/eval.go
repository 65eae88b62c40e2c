// ==============================================================================================
// FILE: internal/eval/eval.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The heart of the interpreter (§4.3): EvalNext is the pull-parser primitive that
//          consumes exactly one expression from a flat Token stream, recursively pulling as
//          many further expressions as a Procedure/Closure's declared arity demands. Run and
//          Results are the two ways a whole sequence is driven to completion, differing only
//          in how they treat a statement's produced value (discarded-and-errors-if-non-Nil,
//          vs. collected). Where the teacher's evaluator.Eval switches on AST node type, this
//          switches on object.Token.Kind — there is no tree to walk.
// ==============================================================================================

package eval

import (
	"lunar/internal/object"
	"lunar/internal/token"
)

// EvalNext consumes exactly one expression starting at cursor and returns its value plus the
// cursor just past it, per the five dispatch rules of §4.3.
func EvalNext(tokens []object.Token, cursor int, scope *object.Scope) (object.Value, int, *Error) {
	if cursor >= len(tokens) {
		return nil, cursor, newError(NotEnoughArgumentsKind, "unexpected end of input")
	}
	t := tokens[cursor]

	switch t.Kind {
	case token.Proc:
		return applyProcedure(t.Proc, tokens, cursor+1, scope)

	case token.Literal:
		return t.Value, cursor + 1, nil

	case token.VarRef:
		v, ok := scope.Get(t.Name)
		if !ok {
			return nil, cursor, newError(UndefinedVariableKind, "undefined variable: %s", t.Name)
		}
		return v, cursor + 1, nil

	case token.Word:
		if t.Name == token.Do {
			block, next, err := scanBlock(tokens, cursor+1)
			if err != nil {
				return nil, cursor, err
			}
			return block, next, nil
		}
		return evalBareWord(t.Name, tokens, cursor+1, scope)

	default:
		return nil, cursor, newError(SyntaxErrorKind, "unrecognised token at position %d", cursor)
	}
}

// applyProcedure implements dispatch rule 1: pull exactly Arity further expressions, then call
// the handler with the already-evaluated arguments.
func applyProcedure(proc *object.Procedure, tokens []object.Token, cursor int, scope *object.Scope) (object.Value, int, *Error) {
	args := make([]object.Value, 0, proc.Arity)
	for i := 0; i < proc.Arity; i++ {
		if cursor >= len(tokens) {
			return nil, cursor, newError(NotEnoughArgumentsKind,
				"%s wants %d argument(s), got %d before running out of input", proc.Name, proc.Arity, i)
		}
		v, next, err := EvalNext(tokens, cursor, scope)
		if err != nil {
			return nil, cursor, err
		}
		args = append(args, v)
		cursor = next
	}
	v, err := proc.Handler(scope, args)
	if err != nil {
		return nil, cursor, asEvalError(err)
	}
	return v, cursor, nil
}

// evalBareWord implements dispatch rule 5: a name that is not `do` is looked up; a bound
// Closure is invoked like a Procedure, anything else (unbound, or bound to a non-Closure
// value) evaluates to the word itself as a Str — this is deliberate, not a miss: only `:name`
// fetches an ordinary variable's value, a bare word is either a call or an identifier literal.
func evalBareWord(name string, tokens []object.Token, cursor int, scope *object.Scope) (object.Value, int, *Error) {
	if v, ok := scope.Get(name); ok {
		if closure, ok := v.(*object.Closure); ok {
			return applyClosureFromStream(closure, tokens, cursor, scope)
		}
	}
	return object.Str{Value: name}, cursor, nil
}

func applyClosureFromStream(closure *object.Closure, tokens []object.Token, cursor int, scope *object.Scope) (object.Value, int, *Error) {
	args := make([]object.Value, 0, len(closure.Params))
	for i := 0; i < len(closure.Params); i++ {
		if cursor >= len(tokens) {
			return nil, cursor, newError(NotEnoughArgumentsKind,
				"closure wants %d argument(s), got %d before running out of input", len(closure.Params), i)
		}
		v, next, err := EvalNext(tokens, cursor, scope)
		if err != nil {
			return nil, cursor, err
		}
		args = append(args, v)
		cursor = next
	}
	v, err := ApplyClosure(closure, args)
	if err != nil {
		return nil, cursor, err
	}
	return v, cursor, nil
}

// scanBlock is §4.3's block scanner: append tokens to a fresh Block until `end`; a nested `do`
// opens a nested block, recursively scanned and folded back in as a single Literal token.
func scanBlock(tokens []object.Token, cursor int) (*object.Block, int, *Error) {
	var body []object.Token
	for cursor < len(tokens) {
		t := tokens[cursor]
		if t.IsSentinel(token.End) {
			return &object.Block{Tokens: body}, cursor + 1, nil
		}
		if t.IsSentinel(token.Do) {
			nested, next, err := scanBlock(tokens, cursor+1)
			if err != nil {
				return nil, cursor, err
			}
			body = append(body, object.LitToken(nested, t.Line))
			cursor = next
			continue
		}
		body = append(body, t)
		cursor++
	}
	return nil, cursor, newError(SyntaxErrorKind, "`do` without matching `end`")
}

// Run drives tokens to completion, statement-style (§4.3): a non-Nil result with nothing
// consuming it is a UnusedValue error; break/continue/return unwind it immediately, leaving
// their flag set on scope for the enclosing loop or closure call to consume.
func Run(tokens []object.Token, scope *object.Scope) (object.Value, *Error) {
	cursor := 0
	last := object.Value(object.NilValue)
	for cursor < len(tokens) {
		v, next, err := EvalNext(tokens, cursor, scope)
		if err != nil {
			return nil, err
		}
		cursor = next

		if scope.Breaking || scope.Continuing {
			return object.NilValue, nil
		}
		if scope.Returning {
			return v, nil
		}
		if v.Type() != object.NilType {
			return nil, newError(UnusedValueKind, "you don't say what to do with: %s", v.Inspect())
		}
		last = v
	}
	return last, nil
}

// Results drives tokens to completion collecting every produced value into a List (§4.3); used
// for loop conditions, `ifelse` branches, and the top-level CLI.
func Results(tokens []object.Token, scope *object.Scope) (*object.List, *Error) {
	cursor := 0
	var out []object.Value
	for cursor < len(tokens) {
		v, next, err := EvalNext(tokens, cursor, scope)
		if err != nil {
			return nil, err
		}
		cursor = next

		if scope.Breaking || scope.Continuing {
			return object.NewList(out), nil
		}
		if scope.Returning {
			return object.NewList([]object.Value{v}), nil
		}
		out = append(out, v)
	}
	return object.NewList(out), nil
}

// asEvalError adapts the plain `error` a Handler returns (object.Handler cannot depend on this
// package) back into the concrete *Error type the rest of eval threads.
func asEvalError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return Errorf("%s", err.Error())
}
