package journal

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"fmt"
	"github.com/coreos/go-systemd/v22/journal"
	"go.uber.org/zap"
	"strconv"
)

type Describer interface {
	Describe(code, variant string) string
}

type sendFunc func(message string, priority journal.Priority, vars map[string]string) error

// Reporter writes a journal entry for every switch, so a toggle bound to a
// hotkey leaves a trace even when nobody sees its stdout.
type Reporter struct {
	names Describer
	log   *zap.SugaredLogger

	enabled bool
	send    sendFunc
}

// NewReporter returns a reporter that is a no-op when journald is not
// reachable. names may be nil.
func NewReporter(names Describer, log *zap.SugaredLogger) *Reporter {
	return &Reporter{
		names:   names,
		log:     log,
		enabled: journal.Enabled(),
		send:    journal.Send,
	}
}

func (r *Reporter) Report(idx int, layout toggle.Layout) error {
	if !r.enabled {
		return nil
	}

	message, vars := r.entry(idx, layout)
	if err := r.send(message, journal.PriInfo, vars); err != nil {
		r.log.Warnw("send journal entry", "error", err)
	}

	return nil
}

func (r *Reporter) entry(idx int, layout toggle.Layout) (string, map[string]string) {
	variant, _ := layout.Variant()

	name := ""
	if r.names != nil {
		name = r.names.Describe(layout.Code, variant)
	}
	if name == "" {
		name = layout.String()
	}

	vars := map[string]string{
		"LAYOUT_INDEX": strconv.Itoa(idx),
		"LAYOUT":       layout.Code,
		"VARIANT":      variant,
	}

	return fmt.Sprintf("keyboard layout: %s", name), vars
}
