package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/db"
	"github.com/chriserin/tloc/internal/ui"
)

const maxSuggestions = 5

var showCmd = &cobra.Command{
	Use:   "show <display-name>",
	Short: "Show the test names selected by a test or group",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), cfg.DBPath, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, dbPath, display string) error {
	sqlDB, err := openIndex(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runID, err := db.LatestRun(sqlDB)
	if err != nil {
		return err
	}
	if runID == "" {
		return fmt.Errorf("nothing indexed yet, run `tloc index` first")
	}

	rows, err := db.FindSelections(sqlDB, display)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		for _, r := range rows {
			ui.ShowNames(w, r.ClassName, r.DisplayName, r.TestNames)
		}
		return nil
	}

	names, err := db.DisplayNames(sqlDB)
	if err != nil {
		return err
	}
	var suggestions []string
	for _, m := range fuzzy.Find(display, names) {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	if len(suggestions) > 0 {
		ui.Suggestions(w, suggestions)
	}
	return fmt.Errorf("no selection named %q", display)
}
