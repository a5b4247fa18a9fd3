package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/config"
)

// env is what every catalog command needs: configuration, a logger and the loaded catalog.
type env struct {
	cfg   *config.Config
	log   *slog.Logger
	store *catalog.Store
}

func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store, err := catalog.Load(ctx, cfg.Catalog.Source)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Source, err)
	}
	logger.Debug("catalog loaded", "source", cfg.Catalog.Source, "cities", store.Len())

	return &env{cfg: cfg, log: logger, store: store}, nil
}

// loadConfig loads --config, or the discovered config file, or the defaults
// when no config file exists anywhere.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	return config.Load(path)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")) // red
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // green
)
