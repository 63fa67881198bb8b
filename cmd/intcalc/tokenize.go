package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intcalc/internal/diagfmt"
	"intcalc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   `tokenize [flags] "expression"`,
	Short: "Dump the normalized token stream of an expression",
	Long: `Tokenize normalizes an expression (rewriting negation minuses into the
unary '~' marker) and prints its token stream without validating or
evaluating it`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, ""))
	if input == "" {
		return fmt.Errorf("expression is empty")
	}

	out, err := resolveOutputOptions(cmd)
	if err != nil {
		return err
	}

	res := driver.Tokenize(input)

	// Диагностика в stderr, токены в stdout
	if res.Diag != nil {
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Expr, res.Diag, diagfmt.PrettyOpts{Color: out.color})
	}

	switch out.format {
	case formatJSON:
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens)
	}
}
