// ==============================================================================================
// FILE: internal/replloop/repl.go
// ==============================================================================================
// PACKAGE: replloop
// PURPOSE: The Read-Eval-Print Loop (§4.10). Modelled on the teacher's repl.Start — a persistent
//          session state, a colored prompt, dot-commands for session control — generalised from
//          Eloquence's Lexer->Parser->Evaluator pipeline to Lunar's single tokenise-then-`results`
//          step: each line is tokenised independently and run against the session's top-level
//          Scope, so bindings persist across lines the same way `load` concatenates a whole
//          file's lines before evaluating them as one sequence.
// ==============================================================================================

package replloop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"lunar/internal/diagnostics"
	"lunar/internal/eval"
	"lunar/internal/lexer"
	"lunar/internal/object"
)

const (
	prompt = "lunar> "
	banner = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  Lunar — a small prefix-notation scripting language ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	gray   = "\033[37m"
)

// Start launches the REPL: reads lines from in, evaluates each against a session-wide Scope
// that survives across lines, and writes prompts/results/errors to out.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scope := object.NewScope()

	fmt.Fprint(out, banner)
	printHelp(out)

	for {
		fmt.Fprint(out, gray+prompt+reset)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleCommand(out, line, &scope) {
				return
			}
			continue
		}

		evalLine(out, line, scope)
	}
}

// handleCommand runs a dot-command; it reports whether the session should end.
func handleCommand(out io.Writer, line string, scope **object.Scope) bool {
	switch line {
	case ".exit":
		fmt.Fprintln(out, yellow+"goodbye"+reset)
		return true
	case ".clear":
		*scope = object.NewScope()
		fmt.Fprintln(out, green+"session cleared"+reset)
	case ".help":
		printHelp(out)
	default:
		if strings.HasPrefix(line, ".tokens ") {
			printTokens(out, strings.TrimPrefix(line, ".tokens "))
		} else {
			fmt.Fprintf(out, red+"unknown command: %s (try .help)\n"+reset, line)
		}
	}
	return false
}

func evalLine(out io.Writer, line string, scope *object.Scope) {
	toks, tokErr := lexer.TokenizeLine(line, 0)
	if tokErr != nil {
		fmt.Fprintf(out, red+"SyntaxError: %s\n"+reset, tokErr.Error())
		return
	}

	results, runErr := eval.Results(toks, scope)
	if runErr != nil {
		diagnostics.Uncaught(context.Background(), runErr)
		fmt.Fprintf(out, red+"%s\n"+reset, runErr.Error())
		return
	}

	for _, v := range *results.Elements {
		if v.Type() == object.NilType {
			continue
		}
		fmt.Fprintln(out, colorFor(v)+v.Inspect()+reset)
	}
}

func colorFor(v object.Value) string {
	switch v.(type) {
	case object.Int, object.Float:
		return yellow
	case object.Bool:
		return green
	case object.Str:
		return green
	default:
		return reset
	}
}

func printTokens(out io.Writer, line string) {
	toks, err := lexer.TokenizeLine(line, 0)
	if err != nil {
		fmt.Fprintf(out, red+"SyntaxError: %s\n"+reset, err.Error())
		return
	}
	fmt.Fprintln(out, gray+"tokens:"+reset)
	for _, t := range toks {
		fmt.Fprintf(out, "  %s\n", t.String())
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, gray+"commands:")
	fmt.Fprintln(out, "  .exit          quit the session")
	fmt.Fprintln(out, "  .clear         reset all bindings")
	fmt.Fprintln(out, "  .tokens <line> show how a line tokenises, without running it")
	fmt.Fprintln(out, "  .help          show this message"+reset)
	fmt.Fprintln(out)
}
