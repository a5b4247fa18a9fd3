package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Decode reads a JSON array of cities, the format of data/cities.json.
func Decode(r io.Reader) (*Store, error) {
	var cities []City
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cities); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(cities)
}

// LoadFile reads a JSON catalog from path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load reads the catalog from source, choosing the format from the extension:
// .db, .sqlite and .sqlite3 are SQLite exports, anything else is JSON.
func Load(ctx context.Context, source string) (*Store, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(ctx, source)
	default:
		return LoadFile(source)
	}
}
