package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chriserin/tloc/internal/locate"
)

// Row is an indexed selection from the latest run.
type Row struct {
	ClassName   string
	DisplayName string
	TestNames   []string
}

// SaveRun stores sels as a new run in one transaction and returns the run's
// UUID.
func SaveRun(sqlDB *sql.DB, source string, sels []locate.Selection) (string, error) {
	runID := uuid.NewString()

	tx, err := sqlDB.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (uuid, source) VALUES (?, ?)`, runID, source)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	runRowID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("reading run id: %w", err)
	}

	for i, sel := range sels {
		res, err := tx.Exec(
			`INSERT INTO selections (run_id, class_name, display_name, position) VALUES (?, ?, ?, ?)`,
			runRowID, sel.ClassName, sel.DisplayName, i,
		)
		if err != nil {
			return "", fmt.Errorf("inserting selection %q: %w", sel.DisplayName, err)
		}
		selID, err := res.LastInsertId()
		if err != nil {
			return "", fmt.Errorf("reading selection id: %w", err)
		}
		for j, name := range sel.TestNames {
			if _, err := tx.Exec(
				`INSERT INTO test_names (selection_id, name, position) VALUES (?, ?, ?)`,
				selID, name, j,
			); err != nil {
				return "", fmt.Errorf("inserting test name %q: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// LatestRun returns the UUID of the most recent run, or "" when nothing has
// been indexed.
func LatestRun(sqlDB *sql.DB) (string, error) {
	var runID string
	err := sqlDB.QueryRow(`SELECT uuid FROM runs ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying latest run: %w", err)
	}
	return runID, nil
}

// ListSelections returns the selections of the latest run, optionally
// restricted to one class.
func ListSelections(sqlDB *sql.DB, class string) ([]Row, error) {
	return querySelections(sqlDB, `AND (? = '' OR s.class_name = ?)`, class, class)
}

// FindSelections returns the selections of the latest run with the given
// display name.
func FindSelections(sqlDB *sql.DB, displayName string) ([]Row, error) {
	return querySelections(sqlDB, `AND s.display_name = ?`, displayName)
}

func querySelections(sqlDB *sql.DB, filter string, args ...any) ([]Row, error) {
	rows, err := sqlDB.Query(`
		SELECT s.id, s.class_name, s.display_name
		FROM selections s
		WHERE s.run_id = (SELECT MAX(id) FROM runs) `+filter+`
		ORDER BY s.position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer rows.Close()

	var ids []int64
	var results []Row
	for rows.Next() {
		var id int64
		var r Row
		if err := rows.Scan(&id, &r.ClassName, &r.DisplayName); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		ids = append(ids, id)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	rows.Close()

	for i, id := range ids {
		names, err := testNames(sqlDB, id)
		if err != nil {
			return nil, err
		}
		results[i].TestNames = names
	}
	return results, nil
}

func testNames(sqlDB *sql.DB, selectionID int64) ([]string, error) {
	rows, err := sqlDB.Query(`SELECT name FROM test_names WHERE selection_id = ? ORDER BY position`, selectionID)
	if err != nil {
		return nil, fmt.Errorf("querying test names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning test name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DisplayNames returns the distinct display names of the latest run.
func DisplayNames(sqlDB *sql.DB) ([]string, error) {
	rows, err := sqlDB.Query(`
		SELECT DISTINCT display_name FROM selections
		WHERE run_id = (SELECT MAX(id) FROM runs)
		ORDER BY display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying display names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning display name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
