package download

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Agent runs downloads for a single control, such as one button on a detail page.
// It owns its status; separate controls use separate agents and share nothing.
type Agent struct {
	host     Host
	observer Observer
	fallback bool
	log      *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	task Task
}

// Option configures an Agent.
type Option func(*Agent)

// WithObserver registers the observer told about busy and idle changes.
func WithObserver(o Observer) Option {
	return func(a *Agent) {
		a.observer = o
	}
}

// WithFallback controls whether a failed retrieval opens the source instead.
// Enabled by default.
func WithFallback(enabled bool) Option {
	return func(a *Agent) {
		a.fallback = enabled
	}
}

// NewAgent creates an idle agent backed by host.
func NewAgent(host Host, log *slog.Logger, opts ...Option) *Agent {
	if log == nil {
		log = slog.Default()
	}
	a := &Agent{
		host:     host,
		fallback: true,
		log:      log,
		now:      time.Now,
		task:     Task{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Status returns the agent's current status.
func (a *Agent) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task.Status
}

// Busy reports whether a download is in flight.
func (a *Agent) Busy() bool {
	return a.Status().IsBusy()
}

// Last returns a copy of the most recent task.
func (a *Agent) Last() Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task
}

// Start fetches source and saves it as filename, blocking until the task settles.
//
// Retrieval failures never surface as errors: the task ends failed, or
// opened_externally when the fallback opener succeeded, with Task.Err set.
// The returned error is reserved for ErrBusy, ErrInvalidTask and
// ErrIncompleteHost. A host without an Opener behaves as WithFallback(false).
func (a *Agent) Start(ctx context.Context, source, filename string) (Task, error) {
	if source == "" || filename == "" {
		return Task{}, fmt.Errorf("%w: source and filename are required", ErrInvalidTask)
	}
	if a.host.Fetcher == nil || a.host.Stager == nil || a.host.Saver == nil {
		return Task{}, ErrIncompleteHost
	}

	task, err := a.begin(source, filename)
	if err != nil {
		return task, err
	}
	a.notify(task, true)

	log := a.log.With("task", task.ID, "source", source, "filename", filename)
	log.Debug("download started")

	saved, err := a.retrieve(ctx, source, filename)
	if err == nil {
		task = a.settle(StatusDone, saved, nil)
		log.Info("download saved", "path", saved)
		a.notify(task, false)
		return task, nil
	}

	log.Warn("download failed", "error", err)
	task = a.settle(StatusFailed, "", err)

	if a.fallback && a.host.Opener != nil {
		// The failure may be ctx itself expiring; the open must still run.
		if oerr := a.host.Opener.Open(context.WithoutCancel(ctx), source); oerr != nil {
			log.Error("fallback open failed", "error", oerr)
		} else {
			task = a.advance(StatusOpenedExternally)
			log.Info("opened source externally")
		}
	}

	a.notify(task, false)
	return task, nil
}

// begin resets a settled agent and moves it into flight.
func (a *Agent) begin(source, filename string) (Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.task.Status.IsBusy() {
		return a.task, ErrBusy
	}
	if a.task.Status.IsTerminal() {
		if err := a.transitionLocked(StatusIdle); err != nil {
			return a.task, err
		}
	}

	a.task = Task{
		ID:       newTaskID(),
		Source:   source,
		Filename: filename,
		Status:   StatusIdle,
	}
	if err := a.transitionLocked(StatusInFlight); err != nil {
		return a.task, err
	}
	a.task.StartedAt = a.now()
	return a.task, nil
}

// retrieve is the acquire/use/release block: the staged blob is revoked on every
// path once it exists.
func (a *Agent) retrieve(ctx context.Context, source, filename string) (saved string, err error) {
	data, err := a.host.Fetcher.Fetch(ctx, source)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	blob, err := a.host.Stager.Stage(data)
	if err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}
	defer func() {
		if rerr := blob.Revoke(); rerr != nil {
			a.log.Warn("revoke failed", "path", blob.Path(), "error", rerr)
		}
	}()

	saved, err = a.host.Saver.Save(ctx, blob, filename)
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	return saved, nil
}

func (a *Agent) settle(to Status, saved string, cause error) Task {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.transitionLocked(to); err != nil {
		a.log.Error("status change rejected", "error", err)
		return a.task
	}
	a.task.SavedPath = saved
	a.task.Err = cause
	a.task.FinishedAt = a.now()
	return a.task
}

func (a *Agent) advance(to Status) Task {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.transitionLocked(to); err != nil {
		a.log.Error("status change rejected", "error", err)
	}
	return a.task
}

// transitionLocked changes status after validating the edge. a.mu must be held.
func (a *Agent) transitionLocked(to Status) error {
	from := a.task.Status
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	a.task.Status = to
	return nil
}

func (a *Agent) notify(task Task, busy bool) {
	if a.observer == nil {
		return
	}
	if busy {
		a.observer.DownloadBusy(task)
		return
	}
	a.observer.DownloadIdle(task)
}

func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
