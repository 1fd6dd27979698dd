// Package filestore persists each key as a file under a data folder.
package filestore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/consolekit/consoleauth/session/kv"
)

var _ kv.Store = (*Store)(nil)

// Store keeps one file per key inside a single directory. Writes go through a
// temp file and rename so a crash mid-write never leaves a half-written value
// behind for the reader.
type Store struct {
	dir string
}

// New creates the data folder if needed and returns a file-backed store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[filestore.New] MkdirAll")
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return errors.Wrap(err, "[filestore.Set] WriteFile")
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrap(err, "[filestore.Set] Rename")
	}
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "[filestore.Get] ReadFile")
	}
	return value, true, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "[filestore.Delete] Remove")
	}
	return nil
}
