package storage

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestObjectStore_PutOpen(t *testing.T) {
	root := filepath.Join(t.TempDir(), "objects")
	store, err := NewObjectStore(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put("1.2.3", "1.2.3.4", bytes.NewReader([]byte("first"))); err != nil {
		t.Fatal(err)
	}
	path, _ := store.Path("1.2.3", "1.2.3.4")
	if path != filepath.Join(root, "1.2.3", "1.2.3.4") {
		t.Errorf("path = %s", path)
	}

	// Last write wins.
	if err := store.Put("1.2.3", "1.2.3.4", bytes.NewReader([]byte("second"))); err != nil {
		t.Fatal(err)
	}
	f, err := store.Open("1.2.3", "1.2.3.4")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, _ := io.ReadAll(f)
	if string(got) != "second" {
		t.Errorf("content = %q", got)
	}

	entries, _ := os.ReadDir(filepath.Join(root, "1.2.3"))
	if len(entries) != 1 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestObjectStore_NotFound(t *testing.T) {
	store, err := NewObjectStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Open("1", "2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open: expected ErrNotFound, got %v", err)
	}
	if _, err := store.ReadFile("1", "2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile: expected ErrNotFound, got %v", err)
	}
}

func TestObjectStore_InvalidUID(t *testing.T) {
	store, err := NewObjectStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]string{{"", "1"}, {"1", ""}, {"..", "1"}, {"1", "../../etc"}, {"a/b", "1"}, {".", "1"}} {
		if err := store.Put(pair[0], pair[1], bytes.NewReader(nil)); !errors.Is(err, ErrInvalidUID) {
			t.Errorf("Put(%q, %q): expected ErrInvalidUID, got %v", pair[0], pair[1], err)
		}
	}
}
