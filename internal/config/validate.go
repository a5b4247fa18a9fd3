package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var catalogExtensions = map[string]bool{
	".json": true, ".db": true, ".sqlite": true, ".sqlite3": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Catalog.Source == "" {
		errs = append(errs, "catalog.source: required")
	} else if ext := strings.ToLower(filepath.Ext(c.Catalog.Source)); !catalogExtensions[ext] {
		errs = append(errs, fmt.Sprintf("catalog.source: must be .json, .db, .sqlite or .sqlite3; got %q", c.Catalog.Source))
	}

	if c.Download.Timeout.Duration < 0 {
		errs = append(errs, fmt.Sprintf("download.timeout: must be positive, got %s", c.Download.Timeout))
	}
	if c.Download.BaseURL != "" {
		u, err := url.Parse(c.Download.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("download.base_url: must be an http(s) URL, got %q", c.Download.BaseURL))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
