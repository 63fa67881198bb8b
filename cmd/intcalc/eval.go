package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"intcalc/internal/diagfmt"
	"intcalc/internal/driver"
)

type evalPayload struct {
	Expression string `json:"expression"`
	Postfix    string `json:"postfix,omitempty"`
	Value      *int64 `json:"value,omitempty"`
	Error      string `json:"error,omitempty"`
}

// runEval is the root command: evaluate the expression given as arguments.
// Output mirrors the classic calculator contract: the postfix form and the
// result on stdout on success; the original text plus a caret diagnostic on
// stderr for syntax errors; an aligned Error line on stderr for arithmetic
// failures. Every failure path exits with code 1.
func runEval(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, ""))
	if input == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), `Usage: intcalc "expression"`)
		os.Exit(1)
	}

	out, err := resolveOutputOptions(cmd)
	if err != nil {
		return err
	}

	res, evalErr := driver.Run(input)

	if res.Diag != nil {
		if out.format == formatJSON {
			if err := diagfmt.JSON(cmd.ErrOrStderr(), res.Expr, res.Diag); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Expr, res.Diag, diagfmt.PrettyOpts{Color: out.color})
		}
		os.Exit(1)
	}

	if out.format == formatJSON {
		payload := evalPayload{
			Expression: res.Expr.Original,
			Postfix:    res.PostfixString,
		}
		if evalErr != nil {
			payload.Error = evalErr.Error()
		} else {
			payload.Value = &res.Value
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
		if evalErr != nil {
			os.Exit(1)
		}
		return nil
	}

	// Постфиксная форма печатается до вычисления, как в исходном калькуляторе
	fmt.Fprintf(cmd.OutOrStdout(), "Postfix expression: %s\n", res.PostfixString)
	if evalErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error:              %s\n", evalErr.Error())
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Evaluation:         %d\n", res.Value)
	return nil
}
