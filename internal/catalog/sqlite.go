package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cities (
	position    INTEGER PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	country     TEXT NOT NULL DEFAULT '',
	coordinates TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT ''
);`

// mapSQLiteError converts SQLite errors to catalog errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrDuplicateID, err)
	}
	return err
}

// OpenSQLite loads a catalog from an SQLite export, read-only.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, country, coordinates, image
		FROM cities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Coordinates, &c.Image); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cities: %w", err)
	}

	return New(cities)
}

// ExportSQLite writes cities to an SQLite file at path, replacing any rows already there.
// Row order is preserved in the position column.
func ExportSQLite(ctx context.Context, path string, cities []City) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open export db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cities"); err != nil {
		return fmt.Errorf("clear cities: %w", err)
	}
	for i, c := range cities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cities (position, id, name, country, coordinates, image)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Name, c.Country, c.Coordinates, c.Image,
		)
		if err != nil {
			return fmt.Errorf("insert city %q: %w", c.ID, mapSQLiteError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
