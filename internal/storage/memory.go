package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

// MemoryIndex is an in-memory Index. Records are kept in their JSON form so reads decode
// the same way the SQLite index does.
type MemoryIndex struct {
	records [][]byte
	bySOP   map[string]int
	studies map[string]struct{}
	series  map[string]struct{}
	mu      sync.RWMutex
}

// NewMemoryIndex returns an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		bySOP:   make(map[string]int),
		studies: make(map[string]struct{}),
		series:  make(map[string]struct{}),
	}
}

// Type returns the index type identifier.
func (m *MemoryIndex) Type() string {
	return string(IndexTypeMemory)
}

// Insert stores ds unless its SOP Instance UID is already present.
func (m *MemoryIndex) Insert(ctx context.Context, ds models.Dataset) error {
	study, series, sop, err := identifiers(ds)
	if err != nil {
		return err
	}
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySOP[sop]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, sop)
	}
	m.bySOP[sop] = len(m.records)
	m.records = append(m.records, data)
	if study != "" {
		m.studies[study] = struct{}{}
	}
	if series != "" {
		m.series[series] = struct{}{}
	}
	return nil
}

// Find scans all records in insertion order.
func (m *MemoryIndex) Find(ctx context.Context, f filter.Filter) ([]models.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Dataset
	for _, data := range m.records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var ds models.Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
		}
		if f.Match(ds) {
			out = append(out, ds)
		}
	}
	return out, nil
}

// Stats returns instance, series and study counts.
func (m *MemoryIndex) Stats(ctx context.Context) (models.IndexStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.IndexStats{
		Instances: int64(len(m.records)),
		Series:    int64(len(m.series)),
		Studies:   int64(len(m.studies)),
	}, nil
}

// Close is a no-op.
func (m *MemoryIndex) Close() error {
	return nil
}
