package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

func instance(study, series, sop, name, date, modality string, number float64) models.Dataset {
	return models.Dataset{
		"0020000D": {VR: "UI", Value: []any{study}},
		"0020000E": {VR: "UI", Value: []any{series}},
		"00080018": {VR: "UI", Value: []any{sop}},
		"00100010": {VR: "PN", Value: []any{models.PersonName{Alphabetic: name}}},
		"00080020": {VR: "DA", Value: []any{date}},
		"00080060": {VR: "CS", Value: []any{modality}},
		"00200013": {VR: "IS", Value: []any{number}},
		"7FE00010": {VR: "OW"},
	}
}

func testIndexes(t *testing.T) map[string]Index {
	t.Helper()
	sqlite, err := NewIndex("sqlite", filepath.Join(t.TempDir(), "index", "kura.db"))
	if err != nil {
		t.Fatal(err)
	}
	mem, err := NewIndex("memory", "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = sqlite.Close()
		_ = mem.Close()
	})
	return map[string]Index{"sqlite": sqlite, "memory": mem}
}

func seed(t *testing.T, idx Index) {
	t.Helper()
	ctx := context.Background()
	for _, ds := range []models.Dataset{
		instance("1.1", "1.1.1", "1.1.1.1", "Doe^John", "20200115", "CT", 1),
		instance("1.1", "1.1.1", "1.1.1.2", "Doe^John", "20200115", "CT", 2),
		instance("1.1", "1.1.2", "1.1.2.1", "Doe^John", "20200115", "MR", 1),
		instance("2.2", "2.2.1", "2.2.1.1", "Smith^Jane", "20211231", "US", 12),
	} {
		if err := idx.Insert(ctx, ds); err != nil {
			t.Fatal(err)
		}
	}
}

func mustRegex(t *testing.T, tag, comp, pattern string) *filter.Regex {
	t.Helper()
	r, err := filter.NewRegex(tag, comp, pattern)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func sops(records []models.Dataset) []string {
	out := make([]string, 0, len(records))
	for _, ds := range records {
		s, _ := ds.String("00080018")
		out = append(out, s)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIndex_FindParity(t *testing.T) {
	tests := []struct {
		name string
		f    filter.Filter
		want []string
	}{
		{"empty and", filter.And{}, []string{"1.1.1.1", "1.1.1.2", "1.1.2.1", "2.2.1.1"}},
		{"person name wildcard", filter.And{mustRegex(t, "00100010", filter.ComponentAlphabetic, "doe.*")}, []string{"1.1.1.1", "1.1.1.2", "1.1.2.1"}},
		{"date range", filter.And{&filter.Range{Tag: "00080020", Lower: "20210101", Upper: "20211231"}}, []string{"2.2.1.1"}},
		{"inclusive bounds", filter.And{&filter.Range{Tag: "00080020", Lower: "20200115", Upper: "20200115"}}, []string{"1.1.1.1", "1.1.1.2", "1.1.2.1"}},
		{"missing upper bound", filter.And{&filter.Range{Tag: "00080020", Lower: "20200101", Upper: ""}}, nil},
		{"case-insensitive text", filter.And{mustRegex(t, "00080060", "", "mr")}, []string{"1.1.2.1"}},
		{"numeric value as text", filter.And{mustRegex(t, "00200013", "", "^12$")}, []string{"2.2.1.1"}},
		{"uid conjunction", filter.And{
			mustRegex(t, "0020000D", "", "1.1"),
			mustRegex(t, "0020000E", "", "1.1.1"),
		}, []string{"1.1.1.1", "1.1.1.2"}},
		{"absent tag", filter.And{mustRegex(t, "00081030", "", ".*")}, nil},
		{"bulk attribute has no values", filter.And{mustRegex(t, "7FE00010", "", ".*")}, nil},
	}
	for name, idx := range testIndexes(t) {
		seed(t, idx)
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got, err := idx.Find(context.Background(), tt.f)
				if err != nil {
					t.Fatal(err)
				}
				if !equal(sops(got), tt.want) {
					t.Errorf("Find(%s) = %v, want %v", tt.f, sops(got), tt.want)
				}
				for _, ds := range got {
					if !tt.f.Match(ds) {
						t.Errorf("record %v does not satisfy %s", sops([]models.Dataset{ds}), tt.f)
					}
				}
			})
		}
	}
}

func TestIndex_DuplicateInsert(t *testing.T) {
	ctx := context.Background()
	for name, idx := range testIndexes(t) {
		t.Run(name, func(t *testing.T) {
			ds := instance("1", "1.1", "1.1.1", "A^B", "20200101", "CT", 1)
			if err := idx.Insert(ctx, ds); err != nil {
				t.Fatal(err)
			}
			other := instance("9", "9.9", "1.1.1", "Other^Name", "20220101", "MR", 5)
			if err := idx.Insert(ctx, other); !errors.Is(err, ErrDuplicateObject) {
				t.Fatalf("expected ErrDuplicateObject, got %v", err)
			}
			st, err := idx.Stats(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if st.Instances != 1 || st.Studies != 1 || st.Series != 1 {
				t.Errorf("stats = %+v", st)
			}
			got, _ := idx.Find(ctx, filter.And{})
			if s, _ := got[0].String("0020000D"); s != "1" {
				t.Errorf("first record should be kept, study = %q", s)
			}
		})
	}
}

func TestIndex_InsertRequiresSOP(t *testing.T) {
	for name, idx := range testIndexes(t) {
		ds := models.Dataset{"0020000D": {VR: "UI", Value: []any{"1"}}}
		if err := idx.Insert(context.Background(), ds); !errors.Is(err, ErrInvalidUID) {
			t.Errorf("%s: expected ErrInvalidUID, got %v", name, err)
		}
	}
}

func TestIndex_Stats(t *testing.T) {
	for name, idx := range testIndexes(t) {
		seed(t, idx)
		st, err := idx.Stats(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		want := models.IndexStats{Instances: 4, Series: 3, Studies: 2}
		if st != want {
			t.Errorf("%s: stats = %+v, want %+v", name, st, want)
		}
	}
}

func TestSQLiteIndex_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kura.db")
	idx, err := NewSQLiteIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	seed(t, idx)
	_ = idx.Close()

	idx, err = NewSQLiteIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()
	got, err := idx.Find(context.Background(), filter.And{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d records after reopen", len(got))
	}
	pn, ok := got[0]["00100010"].Value[0].(models.PersonName)
	if !ok || pn.Alphabetic != "Doe^John" {
		t.Errorf("person name not restored: %#v", got[0]["00100010"].Value[0])
	}
	if err := idx.Insert(context.Background(), instance("1.1", "1.1.1", "1.1.1.1", "", "", "", 0)); !errors.Is(err, ErrDuplicateObject) {
		t.Errorf("unique index should survive reopen, got %v", err)
	}
}

func TestNewIndex_unknownType(t *testing.T) {
	if _, err := NewIndex("mongo", ""); err == nil {
		t.Error("expected error for unknown index type")
	}
}

func TestRegexpMatch(t *testing.T) {
	tests := []struct {
		pattern string
		value   interface{}
		want    bool
	}{
		{"ct", "CT", true},
		{"^12$", int64(12), true},
		{"^12.5$", 12.5, true},
		{"x", nil, false},
	}
	for _, tt := range tests {
		got, err := regexpMatch(tt.pattern, tt.value)
		if err != nil || got != tt.want {
			t.Errorf("regexpMatch(%q, %v) = %v, %v", tt.pattern, tt.value, got, err)
		}
	}
	if _, err := regexpMatch("[", "x"); !errors.Is(err, filter.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}
