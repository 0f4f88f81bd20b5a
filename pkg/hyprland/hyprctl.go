package hyprland

import (
	"bytes"
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"os/exec"
	"regexp"
	"strings"
)

// Hyprctl applies layouts to a running Hyprland instance through its
// input:kb_layout and input:kb_variant keywords.
type Hyprctl struct {
	Path string

	log *zap.SugaredLogger
}

func NewHyprctl(path string, log *zap.SugaredLogger) *Hyprctl {
	return &Hyprctl{Path: path, log: log}
}

var okReply = regexp.MustCompile(`^(ok\s*)+$`)

func BatchArg(layout toggle.Layout) string {
	// A layout without a variant still sets kb_variant, to an empty value.
	// Empty is the kb_variant default and selects the layout's base variant;
	// skipping the keyword would keep the previous layout's variant (rs latin
	// followed by plain rs would stay latin). The variant goes first so the
	// keymap reload triggered by kb_layout sees the matching variant.
	variant, _ := layout.Variant()
	return fmt.Sprintf("keyword input:kb_variant %s ; keyword input:kb_layout %s", variant, layout.Code)
}

func (h *Hyprctl) runCommand(ctx context.Context, args ...string) (string, error) {
	var stdout bytes.Buffer

	path := h.Path
	if path == "" {
		path = "hyprctl"
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout

	err := cmd.Run()
	outStr := strings.TrimSpace(stdout.String())
	if err != nil {
		return outStr, fmt.Errorf("hyprctl: %w, stdout: %s", err, outStr)
	}

	return outStr, nil
}

// Apply is fire-and-forget like the setxkbmap switcher: rejected keywords and
// non-zero exits are logged, only a failure to start hyprctl is returned.
func (h *Hyprctl) Apply(ctx context.Context, layout toggle.Layout) error {
	outStr, err := h.runCommand(ctx, "--batch", BatchArg(layout))

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		h.log.Warnw("hyprctl exited non-zero", "status", exitErr.ExitCode(), "output", outStr)
		return nil
	case err != nil:
		return err
	}

	if !okReply.MatchString(outStr) {
		h.log.Warnw("hyprctl rejected layout", "layout", layout.String(), "output", outStr)
	}

	return nil
}
