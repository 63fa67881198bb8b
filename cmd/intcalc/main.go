package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"intcalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   `intcalc [flags] "expression"`,
	Short: "Integer expression calculator",
	Long: `intcalc parses, validates, converts, and evaluates arithmetic expressions
over signed integers. Supported operators: + - x / % ^ plus parentheses
and unary negation. Put the expression in quotes, as in:

  intcalc "(2 x 3) ^ 2"`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "", "output format (pretty|json)")
	rootCmd.PersistentFlags().String("config", "", "path to intcalc.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
