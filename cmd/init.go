package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the selection index in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout(), cfg.DBPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer, dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir != "." {
		_, err := os.Stat(dir)
		dirExists := err == nil
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", dir, err)
		}
		if dirExists {
			fmt.Fprintf(w, "%s/ already exists\n", dir)
		} else {
			fmt.Fprintf(w, "%s/ created\n", dir)
		}
	}

	_, err := os.Stat(dbPath)
	dbExists := err == nil
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", dbPath)
	} else {
		fmt.Fprintf(w, "%s created\n", dbPath)
	}

	msgs, err := ensureGitignore(dbPath)
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore(entry string) ([]string, error) {
	entry = filepath.ToSlash(entry)

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}

// openIndex opens an existing index, failing when init has not run.
func openIndex(dbPath string) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("run `tloc init` first")
	}
	conn, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return conn, nil
}
