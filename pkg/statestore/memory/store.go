package memory

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"fmt"
)

type Store struct {
	idx int

	LoadErr  error
	StoreErr error
	Writes   int
}

func NewStore(idx int) *Store {
	return &Store{idx: idx}
}

func (s *Store) Index() int {
	return s.idx
}

func (s *Store) Load() (int, error) {
	if s.LoadErr != nil {
		return -1, fmt.Errorf("%w: %w", toggle.ErrStateRead, s.LoadErr)
	}
	return s.idx, nil
}

func (s *Store) Store(idx int) error {
	if s.StoreErr != nil {
		return fmt.Errorf("%w: %w", toggle.ErrStateWrite, s.StoreErr)
	}
	s.idx = idx
	s.Writes++
	return nil
}
