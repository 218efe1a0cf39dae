// Package session owns the authenticated identity: establishing it at login,
// persisting it across restarts of the same browsing session, and tearing it
// down on logout.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists exactly one serialized value, the current AuthUser.
type Store interface {
	// Load returns the persisted value, or (nil, nil) when absent.
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// FileStore keeps the session value in a single file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStore is an in-process Store used by tests and as a fallback when no
// session file path is configured.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]byte, error) {
	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.data = nil
	return nil
}
