// ==============================================================================================
// FILE: internal/builtins/predicates.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Type predicates* group of §6: is-string is-bool is-int is-float is-list is-dict
//          is-fn is-proc is-space is-alpha is-alnum is-digit. The first eight ask "what variant
//          is this Value"; the last four ask a character-class question of a Str's whole
//          content — true only when the string is non-empty and every rune qualifies.
// ==============================================================================================

package builtins

import (
	"unicode"

	"lunar/internal/object"
)

func registerPredicates() {
	define("is-string", 1, biIsString)
	define("is-bool", 1, biIsBool)
	define("is-int", 1, biIsInt)
	define("is-float", 1, biIsFloat)
	define("is-list", 1, biIsList)
	define("is-dict", 1, biIsDict)
	define("is-fn", 1, biIsFn)
	define("is-proc", 1, biIsProc)
	define("is-space", 1, biIsSpace)
	define("is-alpha", 1, biIsAlpha)
	define("is-alnum", 1, biIsAlnum)
	define("is-digit", 1, biIsDigit)
}

func biIsString(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(object.Str)
	return object.Native(ok), nil
}

func biIsBool(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(object.Bool)
	return object.Native(ok), nil
}

func biIsInt(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(object.Int)
	return object.Native(ok), nil
}

func biIsFloat(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(object.Float)
	return object.Native(ok), nil
}

func biIsList(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(*object.List)
	return object.Native(ok), nil
}

func biIsDict(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(*object.Dict)
	return object.Native(ok), nil
}

func biIsFn(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(*object.Closure)
	return object.Native(ok), nil
}

func biIsProc(scope *object.Scope, args []object.Value) (object.Value, error) {
	_, ok := args[0].(*object.Procedure)
	return object.Native(ok), nil
}

func runeClass(args []object.Value, class func(r rune) bool) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	if s == "" {
		return object.False, nil
	}
	for _, r := range s {
		if !class(r) {
			return object.False, nil
		}
	}
	return object.True, nil
}

func biIsSpace(scope *object.Scope, args []object.Value) (object.Value, error) {
	return runeClass(args, unicode.IsSpace)
}

func biIsAlpha(scope *object.Scope, args []object.Value) (object.Value, error) {
	return runeClass(args, unicode.IsLetter)
}

func biIsAlnum(scope *object.Scope, args []object.Value) (object.Value, error) {
	return runeClass(args, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
}

func biIsDigit(scope *object.Scope, args []object.Value) (object.Value, error) {
	return runeClass(args, unicode.IsDigit)
}
