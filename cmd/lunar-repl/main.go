// ==============================================================================================
// FILE: cmd/lunar-repl/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The REPL entry point (§4.10 expansion) — a separate binary from cmd/lunar so the CLI
//          wrapper's two invocation shapes (§4.9) stay exactly what spec.md describes, with the
//          interactive session as its own thin collaborator rather than a mode switch baked into
//          the argument grammar.
// ==============================================================================================

package main

import (
	"os"

	"lunar/internal/diagnostics"
	"lunar/internal/replloop"
)

func main() {
	diagnostics.Init(os.Getenv("LUNAR_DEBUG") != "")
	replloop.Start(os.Stdin, os.Stdout)
}
