package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/db"
	"github.com/chriserin/tloc/internal/ui"
)

var classFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed selections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), cfg.DBPath, classFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&classFlag, "class", "", "Only show selections of this class")
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, dbPath, class string) error {
	sqlDB, err := openIndex(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rows, err := db.ListSelections(sqlDB, class)
	if err != nil {
		return err
	}

	classWidth := 0
	for _, r := range rows {
		if len(r.ClassName) > classWidth {
			classWidth = len(r.ClassName)
		}
	}

	for _, r := range rows {
		ui.ListRow(w, r.ClassName, r.DisplayName, len(r.TestNames), classWidth)
	}

	return nil
}
