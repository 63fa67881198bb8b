package main

import (
	"bufio"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"intcalc/internal/driver"
)

var batchJobs int

func init() {
	batchCmd.Flags().IntVar(&batchJobs, "jobs", runtime.NumCPU(), "maximum number of expressions evaluated in parallel")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate one expression per stdin line",
	Long: `Batch reads expressions from stdin, one per line, and prints one result
line per expression in input order. Every line is an independent
expression: no state is shared between them, which is what makes the
parallel evaluation safe — the pipeline stages are pure and the operator
table is read-only`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, _ []string) error {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("no expressions on stdin")
	}

	jobs := batchJobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]string, len(lines))
	failures := make([]bool, len(lines))

	var g errgroup.Group
	g.SetLimit(min(jobs, len(lines)))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			res, err := driver.Run(line)
			switch {
			case res.Diag != nil:
				results[i] = res.Diag.Message
				failures[i] = true
			case err != nil:
				results[i] = err.Error()
				failures[i] = true
			default:
				results[i] = strconv.FormatInt(res.Value, 10)
			}
			return nil
		})
	}
	// Воркеры никогда не возвращают ошибку: все строки обрабатываются
	_ = g.Wait()

	failed := 0
	for i, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r)
		if failures[i] {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(lines))
	}
	return nil
}
