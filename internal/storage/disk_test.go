package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsage(t *testing.T) {
	dir := t.TempDir()

	// Single file
	f1 := filepath.Join(dir, "f1.dcm")
	if err := os.WriteFile(f1, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := DiskUsage(f1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bytes != 5 || got.Files != 1 {
		t.Errorf("single file: got %+v, want 5 bytes in 1 file", got)
	}

	// Study directory with nested objects
	study := filepath.Join(dir, "1.2.3")
	if err := os.MkdirAll(filepath.Join(study, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(study, "a"), []byte("ab"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(study, "nested", "b"), []byte("c"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = DiskUsage(study)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bytes != 3 || got.Files != 2 {
		t.Errorf("dir: got %+v, want 3 bytes in 2 files", got)
	}

	// Missing and empty paths are skipped
	got, err = DiskUsage("", f1, filepath.Join(dir, "nonexistent"), study)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bytes != 8 || got.Files != 3 {
		t.Errorf("mixed: got %+v, want 8 bytes in 3 files", got)
	}
}

func TestDatabaseUsage(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kura.db")
	for name, size := range map[string]int{db: 4, db + "-wal": 6} {
		if err := os.WriteFile(name, make([]byte, size), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := DatabaseUsage(db)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bytes != 10 || got.Files != 2 {
		t.Errorf("got %+v, want 10 bytes in 2 files", got)
	}
	if got, _ := DatabaseUsage(""); got.Bytes != 0 {
		t.Errorf("empty path: got %+v", got)
	}
}
