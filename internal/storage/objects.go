package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
)

// ObjectStore places binary objects under root/{StudyInstanceUID}/{SOPInstanceUID}.
// Writes are atomic: readers see either the previous object or the complete new one.
type ObjectStore struct {
	root string
}

// NewObjectStore returns a store rooted at root, creating it if needed.
func NewObjectStore(root string) (*ObjectStore, error) {
	if root == "" {
		return nil, fmt.Errorf("object store root is empty")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create object root: %w", err)
	}
	return &ObjectStore{root: root}, nil
}

// Root returns the store root directory.
func (s *ObjectStore) Root() string {
	return s.root
}

// Path returns the location of the object for (study, sop).
func (s *ObjectStore) Path(study, sop string) (string, error) {
	if err := checkUID(study); err != nil {
		return "", err
	}
	if err := checkUID(sop); err != nil {
		return "", err
	}
	return filepath.Join(s.root, study, sop), nil
}

// Put copies r to the object location for (study, sop), replacing any existing object.
func (s *ObjectStore) Put(study, sop string, r io.Reader) error {
	path, err := s.Path(study, sop)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create study directory: %w", err)
	}
	pending, err := renameio.TempFile(dir, path)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer pending.Cleanup()
	if _, err := io.Copy(pending, r); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := pending.Chmod(0644); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to place object: %w", err)
	}
	return nil
}

// Open opens the object for (study, sop). A missing object is reported as ErrNotFound.
func (s *ObjectStore) Open(study, sop string) (*os.File, error) {
	path, err := s.Path(study, sop)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, study, sop)
	}
	return f, err
}

// ReadFile returns the full contents of the object for (study, sop).
func (s *ObjectStore) ReadFile(study, sop string) ([]byte, error) {
	path, err := s.Path(study, sop)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, study, sop)
	}
	return data, err
}

// checkUID rejects identifiers that would escape or collapse the two-level layout.
func checkUID(uid string) error {
	if uid == "" || uid == "." || uid == ".." || strings.ContainsAny(uid, `/\`) || strings.ContainsRune(uid, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidUID, uid)
	}
	return nil
}
