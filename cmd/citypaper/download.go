package main

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/citypaper/citypaper/internal/download"
	"github.com/citypaper/citypaper/internal/site"
)

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a city's poster and wallpaper",
	Long: `Download a city's poster and wallpaper into the download directory.

Each variant is an independent download. When one cannot be retrieved the
image is opened in the default viewer instead (see download.fallback_open).

Examples:
  citypaper download paris
  citypaper download paris --variant wallpaper --dir ~/Pictures`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().String("variant", "all", "Which download: poster, wallpaper or all")
	downloadCmd.Flags().String("dir", "", "Download directory (default: download.dir)")
}

// newOpener builds the fallback opener. Replaced in tests.
var newOpener = func() download.Opener {
	return download.NewBrowserOpener()
}

var errDownloadFailed = errors.New("download failed")

type taskOutput struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	SavedPath string `json:"saved_path,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runDownload(cmd *cobra.Command, args []string) error {
	variant, _ := cmd.Flags().GetString("variant")
	dir, _ := cmd.Flags().GetString("dir")

	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}
	city, err := e.store.ByID(args[0])
	if err != nil {
		return err
	}

	buttons, err := selectButtons(site.DownloadButtons(city), variant)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = e.cfg.Download.Dir
	}

	host := download.Host{
		Fetcher: download.NewHTTPFetcher(download.WithTimeout(e.cfg.Download.Timeout.Duration)),
		Stager:  download.NewTempStager(""),
		Saver:   download.NewDirSaver(dir),
		Opener:  newOpener(),
	}

	w := cmd.OutOrStdout()
	progress := &progressPrinter{w: w, quiet: jsonOutput}
	results := make([]taskOutput, len(buttons))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, b := range buttons {
		agent := download.NewAgent(host, e.log.With("component", "download", "kind", b.Kind),
			download.WithObserver(progress.observer(b)),
			download.WithFallback(e.cfg.Download.Fallback()),
		)
		source := download.ResolveLocator(e.cfg.Download.BaseURL, b.Source)
		g.Go(func() error {
			task, err := agent.Start(ctx, source, b.Filename)
			if err != nil {
				return fmt.Errorf("%s: %w", b.Kind, err)
			}
			results[i] = newTaskOutput(b.Kind, task)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		if err := printJSON(w, results); err != nil {
			return err
		}
	}
	for _, r := range results {
		if r.Status == download.StatusFailed.String() {
			return fmt.Errorf("%w: %s", errDownloadFailed, r.Filename)
		}
	}
	return nil
}

func selectButtons(all []site.Button, variant string) ([]site.Button, error) {
	if variant == "all" {
		return all, nil
	}
	for _, b := range all {
		if b.Kind == variant {
			return []site.Button{b}, nil
		}
	}
	return nil, fmt.Errorf("unknown variant %q (want poster, wallpaper or all)", variant)
}

func newTaskOutput(kind string, task download.Task) taskOutput {
	out := taskOutput{
		ID:        task.ID,
		Kind:      kind,
		Source:    task.Source,
		Filename:  task.Filename,
		Status:    task.Status.String(),
		SavedPath: task.SavedPath,
	}
	if task.Err != nil {
		out.Error = task.Err.Error()
	}
	return out
}

// progressPrinter shows each control's busy label while it runs and its outcome
// when it settles. Agents run concurrently, so writes are serialized.
type progressPrinter struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
}

func (p *progressPrinter) observer(b site.Button) download.Observer {
	return download.ObserverFunc(func(task download.Task, busy bool) {
		if p.quiet {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()

		if busy {
			fmt.Fprintf(p.w, "%s  %s\n", b.Variant.Render(b.BusyLabel), b.Filename)
			return
		}
		switch task.Status {
		case download.StatusDone:
			fmt.Fprintf(p.w, "%s  %s\n", b.Variant.Render(b.Label), successStyle.Render("saved "+task.SavedPath))
		case download.StatusOpenedExternally:
			fmt.Fprintf(p.w, "%s  %s\n", b.Variant.Render(b.Label), dimStyle.Render("download failed, opened "+task.Source))
		default:
			fmt.Fprintf(p.w, "%s  %s\n", b.Variant.Render(b.Label), errorStyle.Render(fmt.Sprintf("failed: %v", task.Err)))
		}
	})
}
