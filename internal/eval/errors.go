// ==============================================================================================
// FILE: internal/eval/errors.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The error kinds of §7. Mirrors the teacher's object.Error — a single concrete type
//          threaded back as an ordinary Go error and checked by every caller — generalised
//          from Eloquence's single untagged error string to the six kinds spec.md names, so
//          `catch` and the CLI can report what actually went wrong.
// ==============================================================================================

package eval

import "fmt"

// Kind enumerates the error categories of §7.
type Kind int

const (
	SyntaxErrorKind Kind = iota
	NotEnoughArgumentsKind
	UndefinedVariableKind
	UnusedValueKind
	TypeErrorKind
	RuntimeErrorKind
)

func (k Kind) String() string {
	switch k {
	case SyntaxErrorKind:
		return "SyntaxError"
	case NotEnoughArgumentsKind:
		return "NotEnoughArguments"
	case UndefinedVariableKind:
		return "UndefinedVariable"
	case UnusedValueKind:
		return "UnusedValue"
	case TypeErrorKind:
		return "TypeError"
	case RuntimeErrorKind:
		return "RuntimeError"
	default:
		return "Error"
	}
}

// Error is the single error type every evaluator entry point returns.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Message }

func newError(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Errorf builds a RuntimeError — the catch-all kind builtins reach for (division by zero,
// out-of-range index, `throw`). Exported so internal/builtins can raise without importing the
// Kind constants directly for the common case.
func Errorf(format string, a ...any) *Error { return newError(RuntimeErrorKind, format, a...) }

// TypeErrorf builds a TypeError — a builtin received an argument of the wrong Value variant.
func TypeErrorf(format string, a ...any) *Error { return newError(TypeErrorKind, format, a...) }

// UndefinedVariablef builds an UndefinedVariable error — raised by `:name` and by `thing` for an
// unbound name (§7).
func UndefinedVariablef(format string, a ...any) *Error {
	return newError(UndefinedVariableKind, format, a...)
}
