// ==============================================================================================
// FILE: cmd/lunar/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The CLI entry point (§6, §4.9 expansion). A Cobra root command with no subcommands
//          of its own: `load` reaches the CLI exactly like any other Procedure Table word, it
//          is never a distinct Cobra verb. DisableFlagParsing keeps pflag's hands off Lunar
//          source, which may itself contain words that look like flags (`-1`, `--`).
// ==============================================================================================

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lunar/internal/diagnostics"
	"lunar/internal/eval"
	"lunar/internal/lexer"
	"lunar/internal/object"
)

func main() {
	program := filepath.Base(os.Args[0])

	root := &cobra.Command{
		Use:                program + " [logo code...]",
		Short:              "Lunar — a small prefix-notation scripting language",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), program, args)
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, program string, args []string) error {
	diagnostics.Init(os.Getenv("LUNAR_DEBUG") != "")

	if len(args) == 0 {
		fmt.Printf("Usage:\n\t%s [logo code...]\n\t%s load <filename>\n", program, program)
		return nil
	}

	toks, tokErr := lexer.TokenizeWords(args, 0)
	if tokErr != nil {
		diagnostics.Uncaught(ctx, tokErr)
		fmt.Fprintln(os.Stderr, tokErr.Error())
		return tokErr
	}

	scope := object.NewScope()
	results, runErr := eval.Results(toks, scope)
	if runErr != nil {
		diagnostics.Uncaught(ctx, runErr)
		fmt.Fprintln(os.Stderr, runErr.Error())
		return runErr
	}

	for _, v := range *results.Elements {
		if v.Type() != object.NilType {
			fmt.Println(v.Inspect())
		}
	}
	return nil
}
