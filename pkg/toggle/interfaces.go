package toggle

import "context"

type StateStore interface {
	Load() (int, error)
	Store(idx int) error
}

type LayoutApplier interface {
	Apply(ctx context.Context, layout Layout) error
}

type Reporter interface {
	Report(idx int, layout Layout) error
}
