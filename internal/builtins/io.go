// ==============================================================================================
// FILE: internal/builtins/io.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *I/O* group of §6: print type show readlist readword. The only builtins that
//          touch the host beyond `load` (§5) — each is the "trivial one-line bridge to a host
//          facility" §1 describes them as.
// ==============================================================================================

package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"lunar/internal/object"
)

var stdin = bufio.NewReader(os.Stdin)

func registerIO() {
	define("print", 1, biPrint)
	define("type", 1, biType)
	define("show", 1, biShow)
	define("readlist", 0, biReadlist)
	define("readword", 0, biReadword)
}

func biPrint(scope *object.Scope, args []object.Value) (object.Value, error) {
	fmt.Println(args[0].Inspect())
	return object.NilValue, nil
}

// biType is `print` without the trailing newline — classic Logo print/type pairing, used to
// build up a line from several calls before ending it (e.g. with a final `print`).
func biType(scope *object.Scope, args []object.Value) (object.Value, error) {
	fmt.Print(args[0].Inspect())
	return object.NilValue, nil
}

// biShow writes a value the way a program reading it back would need to see it: strings
// quoted, everything else exactly as print renders it.
func biShow(scope *object.Scope, args []object.Value) (object.Value, error) {
	if s, ok := args[0].(object.Str); ok {
		fmt.Println(quoteString(s.Value))
	} else {
		fmt.Println(args[0].Inspect())
	}
	return object.NilValue, nil
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(s)
	sb.WriteByte('"')
	return sb.String()
}

// biReadword blocks for one whitespace-delimited word from standard input.
func biReadword(scope *object.Scope, args []object.Value) (object.Value, error) {
	var word string
	_, err := fmt.Fscan(stdin, &word)
	if err != nil {
		return object.NilValue, nil
	}
	return object.Str{Value: word}, nil
}

// biReadlist blocks for one line from standard input and splits it into a List of words, the
// same shape a `[...]` list literal produces.
func biReadlist(scope *object.Scope, args []object.Value) (object.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return object.NewList(nil), nil
	}
	words := strings.Fields(line)
	elems := make([]object.Value, len(words))
	for i, w := range words {
		elems[i] = object.Str{Value: w}
	}
	return object.NewList(elems), nil
}
