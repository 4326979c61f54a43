package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/style"
	"github.com/chriserin/tloc/internal/suite"
	"github.com/chriserin/tloc/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <tree-file>",
	Short: "Print the tests and groups found in a suite tree file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunResolve(cmd.Context(), cmd.OutOrStdout(), args[0], cfg.Concurrency, styleFlag)
	},
}

var styleFlag string

func init() {
	resolveCmd.Flags().StringVar(&styleFlag, "style", "", "Only show suites of this style (function, feature, free, method)")
	rootCmd.AddCommand(resolveCmd)
}

// RunResolve prints the selections of every suite in path, or only of suites
// declaring only when it is set.
func RunResolve(ctx context.Context, w io.Writer, path string, concurrency int, only string) error {
	var want style.Style
	if only != "" {
		s, err := style.Parse(only)
		if err != nil {
			return err
		}
		want = s
	}

	results, err := loadAndResolve(ctx, path, concurrency)
	if err != nil {
		return err
	}

	failed, shown := 0, 0
	for _, r := range results {
		if want != "" && r.Style != want {
			continue
		}
		shown++
		if r.Err != nil {
			ui.SuiteError(w, r.Class, r.Err)
			failed++
			continue
		}
		ui.SuiteHeader(w, r.Class, string(r.Style))
		for _, sel := range r.Selections {
			ui.Selection(w, sel.DisplayName, sel.TestNames)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d suites could not be resolved", failed, shown)
	}
	return nil
}

func loadAndResolve(ctx context.Context, path string, concurrency int) ([]suite.Result, error) {
	doc, err := suite.Load(path)
	if err != nil {
		return nil, err
	}
	log := slog.Default()
	results, err := suite.Resolve(ctx, style.NewRegistry(log), doc.Suites, concurrency, log)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return results, nil
}
