package download

import (
	"fmt"
	"os"
	"sync"
)

// Ensure TempStager implements Stager at compile time.
var _ Stager = (*TempStager)(nil)

// TempStager stages bytes as temporary files.
type TempStager struct {
	dir string
}

// NewTempStager stages into dir, or the system temp directory when dir is empty.
func NewTempStager(dir string) *TempStager {
	return &TempStager{dir: dir}
}

// Stage writes data to a new temporary file.
func (s *TempStager) Stage(data []byte) (Blob, error) {
	f, err := os.CreateTemp(s.dir, "citypaper-*.part")
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("close staging file: %w", err)
	}

	return &fileBlob{path: f.Name(), size: int64(len(data))}, nil
}

type fileBlob struct {
	path string
	size int64

	mu      sync.Mutex
	revoked bool
}

func (b *fileBlob) Path() string { return b.path }
func (b *fileBlob) Size() int64  { return b.size }

func (b *fileBlob) Revoke() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.revoked {
		return ErrRevoked
	}
	b.revoked = true
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove staging file: %w", err)
	}
	return nil
}
