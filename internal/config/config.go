// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Download DownloadConfig `toml:"download"`
	Site     SiteConfig     `toml:"site"`
	Log      LogConfig      `toml:"log"`
}

type CatalogConfig struct {
	// Source is a JSON feed or an SQLite export (.db, .sqlite, .sqlite3).
	Source string `toml:"source"`
}

type DownloadConfig struct {
	Dir     string   `toml:"dir"`
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
	// FallbackOpen opens the image externally when a download fails.
	FallbackOpen *bool `toml:"fallback_open"`
}

type SiteConfig struct {
	Title string `toml:"title"`
	Out   string `toml:"out"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration decoded from a TOML string such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Fallback reports whether failed downloads should open the source externally.
func (d DownloadConfig) Fallback() bool {
	return d.FallbackOpen == nil || *d.FallbackOpen
}

const (
	defaultSource  = "./data/cities.json"
	defaultTimeout = 30 * time.Second
	defaultTitle   = "CityPaper"
	defaultOut     = "./public"
	defaultLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation problems are returned together as *Error.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration without validating it.
// Used by `config test` to report every problem at once.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog.Source == "" {
		c.Catalog.Source = defaultSource
	}
	if c.Download.Dir == "" {
		c.Download.Dir = defaultDownloadDir()
	}
	if c.Download.Timeout.Duration == 0 {
		c.Download.Timeout.Duration = defaultTimeout
	}
	if c.Site.Title == "" {
		c.Site.Title = defaultTitle
	}
	if c.Site.Out == "" {
		c.Site.Out = defaultOut
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./downloads"
	}
	return home + string(os.PathSeparator) + "Downloads"
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and returns the names
// (or ":?" messages) of the ones that could not be resolved. Unresolved
// references are left in place. Comments are copied untouched.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		cut := commentStart(line)
		code, comment := line[:cut], line[cut:]
		lines[i] = envVarPattern.ReplaceAllStringFunc(code, func(match string) string {
			value, ok := expand(match)
			if !ok {
				missing = append(missing, value)
				return match
			}
			return value
		}) + comment
	}
	return strings.Join(lines, ""), missing
}

// expand resolves one reference. When it cannot be resolved the returned
// string is the entry to report as missing.
func expand(ref string) (string, bool) {
	m := envVarPattern.FindStringSubmatch(ref)
	name, op, arg := m[1], m[2], m[3]
	value, ok := os.LookupEnv(name)

	switch op {
	case ":-":
		if value == "" {
			return arg, true
		}
		return value, true
	case ":?":
		if value == "" {
			return fmt.Sprintf("%s: %s", name, arg), false
		}
		return value, true
	}
	if !ok {
		return name, false
	}
	return value, true
}

// commentStart returns the index of the '#' opening a TOML comment on line,
// or len(line). A '#' inside a basic or literal string does not count.
// Multi-line strings are not tracked.
func commentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return i
		}
	}
	return len(line)
}
