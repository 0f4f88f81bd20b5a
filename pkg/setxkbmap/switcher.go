package setxkbmap

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"io"
	"os"
	"os/exec"
)

const defaultPath = "setxkbmap"

// Switcher applies X11 keyboard layouts by running setxkbmap. The child
// inherits the caller's standard streams unless overridden.
type Switcher struct {
	Path string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log *zap.SugaredLogger
}

func NewSwitcher(path string, log *zap.SugaredLogger) *Switcher {
	return &Switcher{
		Path:   path,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log,
	}
}

func Args(layout toggle.Layout) []string {
	args := []string{layout.Code}
	if variant, ok := layout.Variant(); ok {
		args = append(args, "-variant", variant)
	}
	return args
}

// Apply runs setxkbmap and waits for it. Only a failure to start the process
// is an error, its exit status is discarded.
func (s *Switcher) Apply(ctx context.Context, layout toggle.Layout) error {
	path := s.Path
	if path == "" {
		path = defaultPath
	}

	cmd := exec.CommandContext(ctx, path, Args(layout)...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	s.log.Debugw("running setxkbmap", "args", cmd.Args)

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		s.log.Debugw("setxkbmap exited non-zero, ignoring", "status", exitErr.ExitCode())
		return nil
	case err != nil:
		return fmt.Errorf("run %s: %w", path, err)
	}

	return nil
}
