package download

import "errors"

// Sentinel errors for the download package.
var (
	// ErrBusy is returned when Start is called while the agent is in flight.
	// Controls disable their trigger while busy, so this is a caller error.
	ErrBusy = errors.New("download already in progress")

	// ErrInvalidTask is returned when the source or filename is empty.
	ErrInvalidTask = errors.New("invalid download task")

	// ErrIncompleteHost is returned when the Host lacks a Fetcher, Stager or Saver.
	ErrIncompleteHost = errors.New("download host incomplete")

	// ErrInvalidTransition is returned for a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRetrieval wraps failures to fetch or materialize a resource.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrRevoked is returned when a blob is used or revoked after release.
	ErrRevoked = errors.New("blob already revoked")
)
