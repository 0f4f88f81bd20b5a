package sqlite

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"database/sql"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"strconv"
	"strings"
)

const (
	getIndexQuery = `select layout_index from keyboard_state where id = 1`
	setIndexQuery = `insert into keyboard_state (id, layout_index)
values (1, ?)
on conflict (id) do update set layout_index = excluded.layout_index`
)

func DefaultPath() (string, error) {
	path, err := xdg.StateFile("xkbtoggle/state.db")
	if err != nil {
		return "", fmt.Errorf("resolve state db path: %w", err)
	}
	return path, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(filename string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrateSchema(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load() (int, error) {
	var raw string
	err := s.db.QueryRow(getIndexQuery).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, fmt.Errorf("%w: no state row", toggle.ErrStateRead)
		}
		return -1, fmt.Errorf("%w: sqlite select: %w", toggle.ErrStateRead, err)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, fmt.Errorf("%w: %w", toggle.ErrStateParse, err)
	}

	return idx, nil
}

func (s *Store) Store(idx int) error {
	if _, err := s.db.Exec(setIndexQuery, idx); err != nil {
		return fmt.Errorf("%w: sqlite upsert: %w", toggle.ErrStateWrite, err)
	}
	return nil
}
