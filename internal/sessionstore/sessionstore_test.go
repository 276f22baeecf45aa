package sessionstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	blob := []byte(`{"cookies":[{"name":"csrftoken","value":"tok"}]}`)

	if err := store.Save("alice", blob); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Load = %s, want %s", got, blob)
	}
}

func TestFileStoreNamingConvention(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := store.Save("alice", []byte("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "alice-session.dat")); err != nil {
		t.Errorf("expected alice-session.dat: %v", err)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if _, err := store.Load("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
