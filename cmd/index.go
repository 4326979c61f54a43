package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/db"
	"github.com/chriserin/tloc/internal/locate"
	"github.com/chriserin/tloc/internal/ui"
)

var indexCmd = &cobra.Command{
	Use:   "index <tree-file>",
	Short: "Resolve a suite tree file and store its selections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunIndex(cmd.Context(), cmd.OutOrStdout(), cfg.DBPath, args[0], cfg.Concurrency)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

// RunIndex stores the selections of every suite that resolved. Suites that
// failed are reported but do not prevent the others from being indexed. When
// none resolved, no run is saved and the previous run stays current.
func RunIndex(ctx context.Context, w io.Writer, dbPath, path string, concurrency int) error {
	sqlDB, err := openIndex(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	results, err := loadAndResolve(ctx, path, concurrency)
	if err != nil {
		return err
	}

	var sels []locate.Selection
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			ui.SuiteError(w, r.Class, r.Err)
			failed++
			continue
		}
		sels = append(sels, r.Selections...)
	}

	if len(results) > 0 && failed == len(results) {
		return fmt.Errorf("%d of %d suites could not be resolved", failed, len(results))
	}

	runID, err := db.SaveRun(sqlDB, path, sels)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	slog.Info("run indexed", "run", runID, "source", path, "selections", len(sels))

	ui.IndexSummary(w, runID, len(results)-failed, len(sels), failed)
	return nil
}
