package query

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/storage"
)

func testEngine(t *testing.T) (*Engine, *metrics.Metrics) {
	t.Helper()
	idx := storage.NewMemoryIndex()
	ctx := context.Background()
	for _, ds := range []models.Dataset{
		withName(record("1", "1.1", "1.1.1", "head"), "Doe^John", "20200301"),
		withName(record("1", "1.1", "1.1.2", "head"), "Doe^John", "20200301"),
		withName(record("1", "1.2", "1.2.1", "neck"), "Doe^John", "20200301"),
		withName(record("2", "2.1", "2.1.1", "chest"), "Roe^Richard", "20210704"),
	} {
		if err := idx.Insert(ctx, ds); err != nil {
			t.Fatal(err)
		}
	}
	m := metrics.New()
	return NewEngine(idx, WithMetrics(m)), m
}

func withName(ds models.Dataset, name, date string) models.Dataset {
	ds["00100010"] = models.Attribute{VR: "PN", Value: []any{models.PersonName{Alphabetic: name}}}
	ds["00080020"] = models.Attribute{VR: "DA", Value: []any{date}}
	return ds
}

func TestEngine_FindStudies(t *testing.T) {
	e, m := testEngine(t)
	resp, err := e.Find(context.Background(), &models.FindRequest{
		Level:   "study",
		Filters: map[string]string{"PatientName": "doe*"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Level != models.LevelStudy || resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("response = %+v", resp)
	}
	got := resp.Results[0]
	if s, _ := got.String("0020000D"); s != "1" {
		t.Errorf("study = %q", s)
	}
	if _, ok := got["0008103E"]; ok {
		t.Error("series description is not a study default attribute")
	}
	if _, ok := got["00100010"]; !ok {
		t.Error("patient name should be projected")
	}
	if n := testutil.ToFloat64(m.QueriesTotal.WithLabelValues("STUDY", "ok")); n != 1 {
		t.Errorf("queries_total = %v", n)
	}
}

func TestEngine_FindSeriesWithAttributes(t *testing.T) {
	e, _ := testEngine(t)
	resp, err := e.Find(context.Background(), &models.FindRequest{
		Level:      models.LevelSeries,
		Filters:    map[string]string{"StudyInstanceUID": "^1$"},
		Attributes: []string{"SeriesDescription", "NotAnAttribute"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
	for _, ds := range resp.Results {
		if len(ds) != 3 {
			t.Errorf("projection should hold series UID, study UID and description, got %v", ds)
		}
	}
}

func TestEngine_FindDateRange(t *testing.T) {
	e, _ := testEngine(t)
	resp, err := e.Find(context.Background(), &models.FindRequest{
		Level:   models.LevelImage,
		Filters: map[string]string{"StudyDate": "20210101-20211231"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
}

func TestEngine_FindByRegistryAttribute(t *testing.T) {
	idx := storage.NewMemoryIndex()
	ctx := context.Background()
	for _, side := range []struct{ sop, laterality string }{{"3.1.1", "L"}, {"3.1.2", "R"}, {"3.1.3", ""}} {
		ds := record("3", "3.1", side.sop, "knee")
		if side.laterality != "" {
			ds["00200060"] = models.Attribute{VR: "CS", Value: []any{side.laterality}}
		}
		if err := idx.Insert(ctx, ds); err != nil {
			t.Fatal(err)
		}
	}
	e := NewEngine(idx)
	resp, err := e.Find(ctx, &models.FindRequest{
		Level:      models.LevelImage,
		Filters:    map[string]string{"Laterality": "L"},
		Attributes: []string{"Laterality"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	got := resp.Results[0]
	if s, _ := got.String("00080018"); s != "3.1.1" {
		t.Errorf("sop = %q, want 3.1.1", s)
	}
	if s, _ := got.String("00200060"); s != "L" {
		t.Errorf("laterality = %q, want L", s)
	}
}

func TestEngine_FindErrors(t *testing.T) {
	e, _ := testEngine(t)
	if _, err := e.Find(context.Background(), &models.FindRequest{Level: "PATIENT"}); err == nil {
		t.Error("expected error for unsupported level")
	}
	_, err := e.Find(context.Background(), &models.FindRequest{
		Level:   models.LevelStudy,
		Filters: map[string]string{"AccessionNumber": "("},
	})
	if !errors.Is(err, filter.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}
