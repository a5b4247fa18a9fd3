package config

import "errors"

var (
	// ErrNotFound is returned by Discover when no config file exists.
	ErrNotFound = errors.New("config not found")
	// ErrInvalid matches any *Error with errors.Is.
	ErrInvalid = errors.New("invalid config")
)
