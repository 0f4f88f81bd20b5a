package file

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"fmt"
	"github.com/adrg/xdg"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultFilename = ".keyboard_layout"

func DefaultPath() string {
	return filepath.Join(xdg.Home, defaultFilename)
}

// Store keeps the layout index as decimal text in a single file. It does no
// locking; two concurrent toggles may both read the same value.
type Store struct {
	Path string
	// Atomic writes through a temp file and a rename instead of truncating
	// the state file in place.
	Atomic bool
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", toggle.ErrStateRead, err)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return -1, fmt.Errorf("%w: %s: %w", toggle.ErrStateParse, s.Path, err)
	}

	return idx, nil
}

func (s *Store) Store(idx int) error {
	data := []byte(strconv.Itoa(idx))

	write := s.writeInPlace
	if s.Atomic {
		write = s.writeAtomic
	}

	if err := write(data); err != nil {
		return fmt.Errorf("%w: %w", toggle.ErrStateWrite, err)
	}
	return nil
}

func (s *Store) writeInPlace(data []byte) error {
	return os.WriteFile(s.Path, data, 0644)
}

// atomicTarget resolves a symlinked state file so the rename replaces the
// link target, and returns the mode to give the replacement.
func (s *Store) atomicTarget() (string, os.FileMode) {
	target := s.Path
	if resolved, err := filepath.EvalSymlinks(s.Path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	return target, mode
}

func (s *Store) writeAtomic(data []byte) error {
	target, mode := s.atomicTarget()

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
