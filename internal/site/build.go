package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites bounds the page writers running at once.
const maxConcurrentWrites = 8

// Build writes the static site into dir: index.html, city/<id>/index.html for
// every city and 404.html. It returns the number of pages written.
func (r *Renderer) Build(ctx context.Context, dir string, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}
	cities := r.store.All()
	for _, city := range cities {
		if city.ID == "." || city.ID == ".." || strings.ContainsAny(city.ID, `/\`) {
			return 0, fmt.Errorf("city id %q cannot be used as a path", city.ID)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)

	write := func(rel string, render func(*bytes.Buffer) error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render(&buf); err != nil {
				return err
			}
			path := filepath.Join(dir, rel)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.Debug("page written", "path", rel)
			return nil
		})
	}

	write("index.html", func(b *bytes.Buffer) error { return r.Catalog(b, "") })
	write("404.html", func(b *bytes.Buffer) error { return r.NotFound(b) })
	for _, city := range cities {
		id := city.ID
		write(filepath.Join("city", id, "index.html"), func(b *bytes.Buffer) error { return r.City(b, id) })
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	pages := len(cities) + 2
	log.Info("site built", "dir", dir, "pages", pages)
	return pages, nil
}
