package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/download"
)

var testCities = []catalog.City{
	{ID: "paris", Name: "Paris", Country: "France", Coordinates: "48.8566° N, 2.3522° E", Image: "/maps/paris.jpg"},
	{ID: "lyon", Name: "Lyon", Country: "France", Coordinates: "45.7640° N, 4.8357° E", Image: "/maps/lyon.jpg"},
	{ID: "nice", Name: "Nice", Country: "France", Coordinates: "43.7102° N, 7.2620° E", Image: "/maps/nice.jpg"},
	{ID: "lille", Name: "Lille", Country: "France", Coordinates: "50.6292° N, 3.0573° E", Image: "/maps/lille.jpg"},
}

// testEnv is a temp directory holding a catalog feed, a config file and a
// download directory.
type testEnv struct {
	dir       string
	config    string
	downloads string
}

type envOption func(*strings.Builder)

func withSetting(line string) envOption {
	return func(b *strings.Builder) {
		b.WriteString(line + "\n")
	}
}

func newTestEnv(t *testing.T, download ...envOption) *testEnv {
	t.Helper()
	dir := t.TempDir()
	feed := filepath.Join(dir, "cities.json")
	data, err := json.Marshal(testCities)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(feed, data, 0644))

	env := &testEnv{
		dir:       dir,
		config:    filepath.Join(dir, "citypaper.toml"),
		downloads: filepath.Join(dir, "downloads"),
	}

	var b strings.Builder
	b.WriteString("[catalog]\nsource = \"" + feed + "\"\n\n")
	b.WriteString("[download]\ndir = \"" + env.downloads + "\"\n")
	for _, opt := range download {
		opt(&b)
	}
	b.WriteString("\n[site]\nout = \"" + filepath.Join(dir, "public") + "\"\n")
	b.WriteString("\n[log]\nlevel = \"error\"\n")
	require.NoError(t, os.WriteFile(env.config, []byte(b.String()), 0644))
	return env
}

// run executes the root command with args against env's config and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCmd(t, append([]string{"--config", e.config}, args...)...)
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	configPath = ""
	jsonOutput = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag to its default; cobra keeps flag values
// between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// imageServer serves every /maps/<id>.jpg of testCities except the ones in missing.
func imageServer(t *testing.T, missing ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, m := range missing {
			if r.URL.Path == "/maps/"+m+".jpg" {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("map:" + r.URL.Path))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// recordingOpener stands in for the platform opener.
type recordingOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (o *recordingOpener) Open(_ context.Context, locator string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, locator)
	return o.err
}

func (o *recordingOpener) Opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}

func useOpener(t *testing.T, o download.Opener) {
	t.Helper()
	orig := newOpener
	newOpener = func() download.Opener { return o }
	t.Cleanup(func() { newOpener = orig })
}
