package query

import "github.com/hyperjump/kura/internal/models"

// Finalize deduplicates records on the level's key and projects each survivor.
// Records without a key value are dropped; among records sharing a key the first wins.
// The input is not modified.
func Finalize(level models.Level, records []models.Dataset, proj Projection) []models.Dataset {
	key := level.KeyTag()
	seen := make(map[any]struct{}, len(records))
	out := make([]models.Dataset, 0, len(records))
	for _, ds := range records {
		v, ok := ds.First(key)
		if !ok {
			continue
		}
		id, ok := dedupKey(v)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, ds.Project(proj))
	}
	return out
}

// dedupKey returns a comparable key for a first value. Composite values cannot be keys.
func dedupKey(v any) (any, bool) {
	switch t := v.(type) {
	case string, float64:
		return t, true
	case models.PersonName:
		return t, true
	}
	return nil, false
}
