// Package sessionstore persists opaque login session blobs keyed by
// account username.
package sessionstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound means no session has been saved for the username.
var ErrNotFound = errors.New("no saved session")

// Store persists the opaque session blob produced by the client.
type Store interface {
	Save(username string, blob []byte) error
	Load(username string) ([]byte, error)
}

// FileStore keeps one <username>-session.dat file per account under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) FileStore {
	return FileStore{Dir: dir}
}

func (f FileStore) path(username string) string {
	return filepath.Join(f.Dir, username+"-session.dat")
}

func (f FileStore) Save(username string, blob []byte) error {
	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path(username), blob, 0o600); err != nil {
		return fmt.Errorf("write session for %s: %w", username, err)
	}
	return nil
}

func (f FileStore) Load(username string) ([]byte, error) {
	data, err := os.ReadFile(f.path(username))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for %s", ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("read session for %s: %w", username, err)
	}
	return data, nil
}
