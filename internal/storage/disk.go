package storage

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Usage is the on-disk footprint of a set of paths.
type Usage struct {
	Bytes int64 `json:"bytes"`
	Files int64 `json:"files"`
}

// DiskUsage sums the size and regular-file count of the given paths.
// Each path may be a file or a directory (recursively summed).
// Missing paths and empty strings are skipped.
func DiskUsage(paths ...string) (Usage, error) {
	var u Usage
	for _, p := range paths {
		if p == "" {
			continue
		}
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) && path == p {
					return filepath.SkipAll
				}
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			u.Bytes += info.Size()
			u.Files++
			return nil
		})
		if err != nil {
			return Usage{}, err
		}
	}
	return u, nil
}

// DatabaseUsage includes the SQLite WAL and shared-memory files next to dbPath.
func DatabaseUsage(dbPath string) (Usage, error) {
	if dbPath == "" {
		return Usage{}, nil
	}
	return DiskUsage(dbPath, dbPath+"-wal", dbPath+"-shm")
}
