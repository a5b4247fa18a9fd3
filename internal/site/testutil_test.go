package site

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/citypaper/citypaper/internal/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.New([]catalog.City{
		{ID: "paris", Name: "Paris", Country: "France", Coordinates: "48.8566° N, 2.3522° E", Image: "/maps/paris.jpg"},
		{ID: "lyon", Name: "Lyon", Country: "France", Coordinates: "45.7640° N, 4.8357° E", Image: "/maps/lyon.jpg"},
		{ID: "nice", Name: "Nice", Country: "France", Coordinates: "43.7102° N, 7.2620° E", Image: "/maps/nice.jpg"},
		{ID: "lille", Name: "Lille", Country: "France", Coordinates: "50.6292° N, 3.0573° E", Image: "/maps/lille.jpg"},
	})
	require.NoError(t, err)
	return store
}

func testRenderer(t *testing.T, store *catalog.Store) *Renderer {
	t.Helper()
	r, err := NewRenderer(store)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

// parse renders with fn and parses the result as HTML.
func parse(t *testing.T, fn func(w io.Writer) error) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}
