// Package download saves a remote image under a suggested filename.
//
// An Agent drives one download control through idle, in_flight and a terminal
// state. The host environment is reached only through the Fetcher, Stager, Saver
// and Opener interfaces, so the same agent runs against the network and the
// filesystem in the CLI and against mocks in tests.
package download

//go:generate mockgen -source=download.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

// Task is one download invocation. It is created by Agent.Start and owned by
// that agent; callers only ever see copies.
type Task struct {
	ID         string
	Source     string // Locator the image was fetched from
	Filename   string // Suggested name for the saved file
	SavedPath  string // Where the file ended up, set when Status is done
	Status     Status
	Err        error // Retrieval failure, set when the fallback was taken
	StartedAt  time.Time
	FinishedAt time.Time
}

// Fetcher retrieves the raw bytes behind a locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// Blob is a scoped local copy of retrieved bytes.
// It stays addressable until Revoke is called.
type Blob interface {
	// Path locates the staged bytes on the local filesystem.
	Path() string
	// Size is the number of staged bytes.
	Size() int64
	// Revoke releases the staged bytes. Calling it twice returns ErrRevoked.
	Revoke() error
}

// Stager turns retrieved bytes into a Blob.
type Stager interface {
	Stage(data []byte) (Blob, error)
}

// Saver persists a staged blob under a suggested filename and returns the final path.
type Saver interface {
	Save(ctx context.Context, blob Blob, filename string) (string, error)
}

// Opener shows a locator to the user in a new viewing context.
type Opener interface {
	Open(ctx context.Context, locator string) error
}

// Observer is told when an agent becomes busy and when it is idle again.
// Each Start produces exactly one DownloadBusy followed by one DownloadIdle.
type Observer interface {
	DownloadBusy(task Task)
	DownloadIdle(task Task)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(task Task, busy bool)

func (f ObserverFunc) DownloadBusy(task Task) { f(task, true) }
func (f ObserverFunc) DownloadIdle(task Task) { f(task, false) }

// Host bundles the environment primitives an agent needs.
// The implementations in this package hold no per-download state, so one Host
// can back any number of agents.
type Host struct {
	Fetcher Fetcher
	Stager  Stager
	Saver   Saver
	Opener  Opener
}
