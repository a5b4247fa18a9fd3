package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Empty(t *testing.T) {
	e := &Error{Path: "/etc/citypaper/config.toml"}
	assert.Empty(t, e.Error())
	assert.False(t, e.HasErrors())
}

func TestError_MissingVars(t *testing.T) {
	e := &Error{
		Path:    "/etc/citypaper/config.toml",
		Missing: []string{"CITYPAPER_BASE_URL", "HOME"},
	}
	got := e.Error()
	assert.Contains(t, got, "missing environment variables")
	assert.Contains(t, got, "CITYPAPER_BASE_URL")
	assert.Contains(t, got, "HOME")
	assert.True(t, e.HasErrors())
}

func TestError_ValidationErrors(t *testing.T) {
	e := &Error{
		Path:   "/etc/citypaper/config.toml",
		Errors: []string{"log.level: invalid", "catalog.source: required"},
	}
	got := e.Error()
	assert.Contains(t, got, "validation failed")
	assert.Contains(t, got, "  - log.level: invalid")
	assert.Contains(t, got, "  - catalog.source: required")
}

func TestError_Both(t *testing.T) {
	e := &Error{
		Missing: []string{"CITYPAPER_BASE_URL"},
		Errors:  []string{"log.level: invalid"},
	}
	got := e.Error()
	assert.Contains(t, got, "missing environment variables")
	assert.Contains(t, got, "validation failed")
}

func TestError_IsInvalid(t *testing.T) {
	var err error = &Error{Errors: []string{"log.level: invalid"}}
	assert.ErrorIs(t, err, ErrInvalid)

	err = &Error{}
	assert.NotErrorIs(t, err, ErrInvalid)
}
