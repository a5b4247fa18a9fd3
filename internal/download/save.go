package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ensure DirSaver implements Saver at compile time.
var _ Saver = (*DirSaver)(nil)

// maxNameAttempts bounds the " (n)" suffixes tried before giving up.
const maxNameAttempts = 1000

// DirSaver saves blobs into a download directory.
// Existing files are never overwritten; a " (n)" suffix is added instead.
type DirSaver struct {
	dir string
}

// NewDirSaver creates a saver writing into dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Save copies blob into the download directory under filename.
func (s *DirSaver) Save(ctx context.Context, blob Blob, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	src, err := os.Open(blob.Path())
	if err != nil {
		return "", fmt.Errorf("open staged blob: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, path, err := s.create(SanitizeFilename(filename))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// create opens the first free name: "name.ext", "name (1).ext", "name (2).ext", ...
func (s *DirSaver) create(filename string) (*os.File, string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := range maxNameAttempts {
		name := filename
		if i > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("no free name for %s in %s", filename, s.dir)
}

// SanitizeFilename strips directory components and characters that are unsafe
// in filenames on common platforms. An unusable name becomes "download".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	s := strings.TrimSpace(b.String())
	s = strings.Trim(s, ".")
	if s == "" {
		return "download"
	}
	return s
}
