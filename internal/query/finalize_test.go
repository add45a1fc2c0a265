package query

import (
	"reflect"
	"testing"

	"github.com/hyperjump/kura/internal/models"
)

func record(study, series, sop, description string) models.Dataset {
	ds := models.Dataset{
		"0008103E": {VR: "LO", Value: []any{description}},
		"00080060": {VR: "CS", Value: []any{"CT"}},
	}
	if study != "" {
		ds["0020000D"] = models.Attribute{VR: "UI", Value: []any{study}}
	}
	if series != "" {
		ds["0020000E"] = models.Attribute{VR: "UI", Value: []any{series}}
	}
	if sop != "" {
		ds["00080018"] = models.Attribute{VR: "UI", Value: []any{sop}}
	}
	return ds
}

func TestFinalize_seriesFirstWins(t *testing.T) {
	raw := []models.Dataset{
		record("1", "1.2.3", "1.2.3.1", "first"),
		record("1", "1.2.3", "1.2.3.2", "second"),
	}
	got := Finalize(models.LevelSeries, raw, NewProjection("0020000E", "0008103E"))
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0]["0008103E"].Value[0] != "first" {
		t.Errorf("kept %v, want the first record", got[0]["0008103E"].Value)
	}
	if _, ok := got[0]["00080060"]; ok {
		t.Error("unprojected tag leaked into the result")
	}
}

func TestFinalize_levels(t *testing.T) {
	raw := []models.Dataset{
		record("1", "1.1", "1.1.1", "a"),
		record("1", "1.1", "1.1.2", "b"),
		record("1", "1.2", "1.2.1", "c"),
		record("2", "2.1", "2.1.1", "d"),
		record("2", "2.1", "2.1.1", "e"),
	}
	proj := NewProjection("0008103E")
	tests := []struct {
		level models.Level
		want  []string
	}{
		{models.LevelStudy, []string{"a", "d"}},
		{models.LevelSeries, []string{"a", "c", "d"}},
		{models.LevelImage, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		got := Finalize(tt.level, raw, proj)
		var descriptions []string
		for _, ds := range got {
			descriptions = append(descriptions, ds["0008103E"].Value[0].(string))
		}
		if !reflect.DeepEqual(descriptions, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.level, descriptions, tt.want)
		}
	}
}

func TestFinalize_dropsRecordsWithoutKey(t *testing.T) {
	raw := []models.Dataset{
		record("", "1.1", "1.1.1", "no study"),
		{"0020000D": {VR: "UI"}},
		{"0020000D": {VR: "UI", Value: []any{nil}}},
		record("3", "3.1", "3.1.1", "ok"),
	}
	got := Finalize(models.LevelStudy, raw, NewProjection("0008103E"))
	if len(got) != 1 || got[0]["0008103E"].Value[0] != "ok" {
		t.Errorf("got %v", got)
	}
}

func TestFinalize_idempotent(t *testing.T) {
	raw := []models.Dataset{
		record("1", "1.1", "1.1.1", "a"),
		record("1", "1.1", "1.1.2", "b"),
		record("1", "1.2", "1.2.1", "c"),
		record("", "1.3", "1.3.1", "d"),
	}
	for _, level := range []models.Level{models.LevelStudy, models.LevelSeries, models.LevelImage} {
		proj := NewProjection(level.KeyTag(), "0008103E")
		once := Finalize(level, raw, proj)
		twice := Finalize(level, once, proj)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("%s: second pass changed output\nonce:  %v\ntwice: %v", level, once, twice)
		}
	}
}

func TestFinalize_doesNotModifyInput(t *testing.T) {
	raw := []models.Dataset{record("1", "1.1", "1.1.1", "a")}
	_ = Finalize(models.LevelStudy, raw, NewProjection("0020000D"))
	if len(raw[0]) != 5 {
		t.Errorf("input record modified: %v", raw[0])
	}
}
