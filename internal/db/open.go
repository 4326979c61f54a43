package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens the sqlite index at path and applies pending migrations.
func Open(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(wal)")
	if err != nil {
		return nil, err
	}
	if err := Migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
