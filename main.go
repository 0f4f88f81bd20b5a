package main

import (
	"codeberg.org/miketth/xkbtoggle/pkg/hyprland"
	"codeberg.org/miketth/xkbtoggle/pkg/journal"
	"codeberg.org/miketth/xkbtoggle/pkg/setxkbmap"
	"codeberg.org/miketth/xkbtoggle/pkg/statestore/file"
	"codeberg.org/miketth/xkbtoggle/pkg/statestore/sqlite"
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"codeberg.org/miketth/xkbtoggle/pkg/xkblayouts"
	"context"
	"flag"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// layouts is the toggle cycle. The index in the state file points into it.
var layouts = toggle.Table{
	toggle.Plain("us"),
	toggle.WithVariant("rs", "latin"),
	toggle.Plain("rs"),
}

type options struct {
	debug        bool
	store        string
	stateFile    string
	stateDB      string
	atomicWrite  bool
	backend      string
	setxkbmap    string
	hyprctl      string
	journal      bool
	evdevXmlPath string
}

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	opts := parseFlags()

	log, err := newLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStateStore(opts, log)
	if err != nil {
		return fmt.Errorf("create state store: %w", err)
	}
	defer closeStore()

	applier, err := newApplier(opts, log)
	if err != nil {
		return fmt.Errorf("create layout applier: %w", err)
	}

	runner, err := toggle.NewRunner(layouts, store, applier, newReporter(opts, log), log)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	idx, err := runner.Toggle(ctx)
	if err != nil {
		return fmt.Errorf("toggle layout: %w", err)
	}

	log.Debugw("switched layout", "index", idx)
	return nil
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.StringVar(&opts.store, "store", "file", "state backend: file or sqlite")
	flag.StringVar(&opts.stateFile, "state-file", "", "path to the state file (default ~/.keyboard_layout)")
	flag.StringVar(&opts.stateDB, "state-db", "", "path to the sqlite state db (default $XDG_STATE_HOME/xkbtoggle/state.db)")
	flag.BoolVar(&opts.atomicWrite, "atomic-write", false, "replace the state file through a rename instead of truncating it")
	flag.StringVar(&opts.backend, "backend", "setxkbmap", "layout switcher: setxkbmap or hyprctl")
	flag.StringVar(&opts.setxkbmap, "setxkbmap-path", "setxkbmap", "setxkbmap executable")
	flag.StringVar(&opts.hyprctl, "hyprctl-path", "hyprctl", "hyprctl executable")
	flag.BoolVar(&opts.journal, "journal", false, "log every switch to the systemd journal")
	flag.StringVar(&opts.evdevXmlPath, "evdev-xml-path", xkblayouts.DefaultPath, "path to evdev.xml, used for journal layout names")
	flag.Parse()
	return opts
}

func newStateStore(opts options, log *zap.SugaredLogger) (toggle.StateStore, func(), error) {
	switch opts.store {
	case "file":
		path := opts.stateFile
		if path == "" {
			path = file.DefaultPath()
		}
		store := file.NewStore(path)
		store.Atomic = opts.atomicWrite
		return store, func() {}, nil

	case "sqlite":
		path := opts.stateDB
		if path == "" {
			var err error
			path, err = sqlite.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
		}
		store, err := sqlite.NewStore(path, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warnw("close state db", "error", err)
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown store %q", opts.store)
}

func newApplier(opts options, log *zap.SugaredLogger) (toggle.LayoutApplier, error) {
	switch opts.backend {
	case "setxkbmap":
		return setxkbmap.NewSwitcher(opts.setxkbmap, log), nil
	case "hyprctl":
		return hyprland.NewHyprctl(opts.hyprctl, log), nil
	}

	return nil, fmt.Errorf("unknown backend %q", opts.backend)
}

func newReporter(opts options, log *zap.SugaredLogger) toggle.Reporter {
	stdout := toggle.WriterReporter{W: os.Stdout}
	if !opts.journal {
		return stdout
	}

	var names journal.Describer
	registry, err := xkblayouts.ParseLayouts(opts.evdevXmlPath)
	if err != nil {
		log.Debugw("layout names unavailable", "error", err)
	} else {
		names = registry
	}

	return toggle.MultiReporter{stdout, journal.NewReporter(names, log)}
}

// newLogger logs to stderr, stdout only carries the new layout index.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
