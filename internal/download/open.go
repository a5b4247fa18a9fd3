package download

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Ensure BrowserOpener implements Opener at compile time.
var _ Opener = (*BrowserOpener)(nil)

// BrowserOpener hands a locator to the platform's default viewer.
type BrowserOpener struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

// NewBrowserOpener creates an opener for the running platform.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{
		goos: runtime.GOOS,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// Open launches the default viewer for locator.
func (o *BrowserOpener) Open(ctx context.Context, locator string) error {
	name, args, err := openCommand(o.goos, locator)
	if err != nil {
		return err
	}
	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s %s: %w", name, locator, err)
	}
	return nil
}

func openCommand(goos, locator string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{locator}, nil
	case "windows":
		// Not cmd /c start: cmd.exe would split a URL at '&'.
		return "rundll32", []string{"url.dll,FileProtocolHandler", locator}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{locator}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
