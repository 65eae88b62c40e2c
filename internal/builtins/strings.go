// ==============================================================================================
// FILE: internal/builtins/strings.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Strings* group of §6: lowercase uppercase trim ltrim rtrim empty space tab nl
//          split join split-by join-by word starts-with ends-with to-string parse-int
//          parse-float. `empty`/`space`/`tab`/`nl` are arity-0 constants — the same "trivial
//          bridge" §1 calls these out as, just with no argument to bridge.
// ==============================================================================================

package builtins

import (
	"strconv"
	"strings"
	"unicode"

	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerStrings() {
	define("lowercase", 1, biLowercase)
	define("uppercase", 1, biUppercase)
	define("trim", 1, biTrim)
	define("ltrim", 1, biLtrim)
	define("rtrim", 1, biRtrim)
	define("empty", 0, biEmpty)
	define("space", 0, biSpace)
	define("tab", 0, biTab)
	define("nl", 0, biNl)
	define("split", 1, biSplit)
	define("join", 1, biJoin)
	define("split-by", 2, biSplitBy)
	define("join-by", 2, biJoinBy)
	define("word", 2, biWord)
	define("starts-with", 2, biStartsWith)
	define("ends-with", 2, biEndsWith)
	define("to-string", 1, biToString)
	define("parse-int", 1, biParseInt)
	define("parse-float", 1, biParseFloat)
}

func biLowercase(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return object.Str{Value: strings.ToLower(s)}, nil
}

func biUppercase(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return object.Str{Value: strings.ToUpper(s)}, nil
}

func biTrim(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return object.Str{Value: strings.TrimSpace(s)}, nil
}

func biLtrim(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return object.Str{Value: strings.TrimLeftFunc(s, unicode.IsSpace)}, nil
}

func biRtrim(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return object.Str{Value: strings.TrimRightFunc(s, unicode.IsSpace)}, nil
}

func biEmpty(scope *object.Scope, args []object.Value) (object.Value, error) { return object.Str{Value: ""}, nil }
func biSpace(scope *object.Scope, args []object.Value) (object.Value, error) { return object.Str{Value: " "}, nil }
func biTab(scope *object.Scope, args []object.Value) (object.Value, error)   { return object.Str{Value: "\t"}, nil }
func biNl(scope *object.Scope, args []object.Value) (object.Value, error)    { return object.Str{Value: "\n"}, nil }

func biSplit(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	words := strings.Fields(s)
	out := make([]object.Value, len(words))
	for i, w := range words {
		out[i] = object.Str{Value: w}
	}
	return object.NewList(out), nil
}

func biJoin(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(*l.Elements))
	for i, el := range *l.Elements {
		parts[i] = el.Inspect()
	}
	return object.Str{Value: strings.Join(parts, " ")}, nil
}

func biSplitBy(scope *object.Scope, args []object.Value) (object.Value, error) {
	sep, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	s, err := asStr(args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	out := make([]object.Value, len(parts))
	for i, p := range parts {
		out[i] = object.Str{Value: p}
	}
	return object.NewList(out), nil
}

func biJoinBy(scope *object.Scope, args []object.Value) (object.Value, error) {
	sep, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	l, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(*l.Elements))
	for i, el := range *l.Elements {
		parts[i] = el.Inspect()
	}
	return object.Str{Value: strings.Join(parts, sep)}, nil
}

func biWord(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Str{Value: args[0].Inspect() + args[1].Inspect()}, nil
}

func biStartsWith(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	prefix, err := asStr(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(strings.HasPrefix(s, prefix)), nil
}

func biEndsWith(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	suffix, err := asStr(args[1])
	if err != nil {
		return nil, err
	}
	return object.Native(strings.HasSuffix(s, suffix)), nil
}

func biToString(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Str{Value: args[0].Inspect()}, nil
}

func biParseInt(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	n, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return nil, eval.Errorf("parse-int: %s is not an integer", s)
	}
	return object.Int{Value: n}, nil
}

func biParseFloat(scope *object.Scope, args []object.Value) (object.Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	f, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if perr != nil {
		return nil, eval.Errorf("parse-float: %s is not a number", s)
	}
	return object.Float{Value: f}, nil
}
