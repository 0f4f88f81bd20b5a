package toggle

import (
	"context"
	"fmt"
	"go.uber.org/zap"
)

type Runner struct {
	layouts Table

	store    StateStore
	applier  LayoutApplier
	reporter Reporter
	log      *zap.SugaredLogger
}

func NewRunner(
	layouts Table,
	store StateStore,
	applier LayoutApplier,
	reporter Reporter,
	log *zap.SugaredLogger,
) (*Runner, error) {
	if len(layouts) == 0 {
		return nil, ErrEmptyTable
	}

	return &Runner{
		layouts:  layouts,
		store:    store,
		applier:  applier,
		reporter: reporter,
		log:      log,
	}, nil
}

// Toggle advances the stored index by one, reports and persists it, and
// applies the layout it points to. It returns the new index.
func (r *Runner) Toggle(ctx context.Context) (int, error) {
	current, err := r.store.Load()
	if err != nil {
		return -1, err
	}

	next := Advance(current, len(r.layouts))
	layout := r.layouts[next]
	r.log.Debugw("advancing layout", "from", current, "to", next, "layout", layout.String())

	// the index is reported before it is persisted, so a failed write can
	// still leave the new index on stdout
	if err := r.reporter.Report(next, layout); err != nil {
		return -1, err
	}

	if err := r.store.Store(next); err != nil {
		return -1, err
	}

	if err := r.applier.Apply(ctx, layout); err != nil {
		return -1, fmt.Errorf("apply layout %s: %w", layout, err)
	}

	return next, nil
}
