// Package storage defines the instance index and the UID-addressed object store.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

var (
	// ErrDuplicateObject is returned when an instance with the same SOP Instance UID is already indexed.
	ErrDuplicateObject = errors.New("object already indexed")
	// ErrNotFound is returned when a stored object does not exist.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidUID is returned for identifiers that are empty or cannot be used as a path segment.
	ErrInvalidUID = errors.New("invalid UID")
)

// Index persists datasets and evaluates filters over them.
type Index interface {
	// Type returns the index type identifier.
	Type() string
	// Insert adds a dataset keyed by its SOP Instance UID. It returns ErrDuplicateObject
	// if the UID is already present; the existing record is left untouched.
	Insert(ctx context.Context, ds models.Dataset) error
	// Find returns every dataset matching f, in insertion order.
	Find(ctx context.Context, f filter.Filter) ([]models.Dataset, error)
	// Stats returns instance, series and study counts.
	Stats(ctx context.Context) (models.IndexStats, error)
	Close() error
}

// identifiers extracts the hierarchy UIDs from ds. The SOP Instance UID is required.
func identifiers(ds models.Dataset) (study, series, sop string, err error) {
	sop, ok := ds.String("00080018")
	if !ok {
		return "", "", "", ErrInvalidUID
	}
	study, _ = ds.String("0020000D")
	series, _ = ds.String("0020000E")
	return study, series, sop, nil
}
