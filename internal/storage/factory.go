package storage

import "fmt"

// IndexType represents the type of instance index to use.
type IndexType string

const (
	// IndexTypeSQLite persists datasets in a SQLite database.
	IndexTypeSQLite IndexType = "sqlite"
	// IndexTypeMemory keeps datasets in memory. Contents are lost on exit.
	IndexTypeMemory IndexType = "memory"
)

// NewIndex creates an index of the specified type.
// Supported types: "sqlite" (default), "memory". dbPath is ignored for memory indexes.
func NewIndex(indexType, dbPath string) (Index, error) {
	switch IndexType(indexType) {
	case IndexTypeSQLite, "":
		return NewSQLiteIndex(dbPath)
	case IndexTypeMemory:
		return NewMemoryIndex(), nil
	default:
		return nil, fmt.Errorf("unknown index type: %s (supported: sqlite, memory)", indexType)
	}
}
