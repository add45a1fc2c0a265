package query

import (
	"errors"
	"testing"

	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

func TestTranslate_personNameWildcard(t *testing.T) {
	f, proj, err := Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"PatientName": "DOE*"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	and := f.(filter.And)
	if len(and) != 1 {
		t.Fatalf("got %d sub-filters", len(and))
	}
	r, ok := and[0].(*filter.Regex)
	if !ok {
		t.Fatalf("sub-filter is %T", and[0])
	}
	if r.Tag != "00100010" || r.Component != filter.ComponentAlphabetic || r.Pattern != "DOE.*" {
		t.Errorf("regex = %+v", r)
	}
	match := models.Dataset{"00100010": {VR: "PN", Value: []any{models.PersonName{Alphabetic: "doe^jane"}}}}
	if !f.Match(match) {
		t.Error("pattern should match case-insensitively")
	}
	if !proj.Has("00100010") || !proj.Has("0020000D") {
		t.Errorf("projection = %v", proj.Tags())
	}
}

func TestTranslate_everyWildcard(t *testing.T) {
	f, _, err := Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"PatientName": "*DOE*"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r := f.(filter.And)[0].(*filter.Regex); r.Pattern != ".*DOE.*" {
		t.Errorf("pattern = %q", r.Pattern)
	}
}

func TestTranslate_dateRange(t *testing.T) {
	f, _, err := Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"StudyDate": "20200101-20201231"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := f.(filter.And)[0].(*filter.Range)
	if !ok {
		t.Fatalf("sub-filter is %T", f.(filter.And)[0])
	}
	if r.Tag != "00080020" || r.Lower != "20200101" || r.Upper != "20201231" {
		t.Errorf("range = %+v", r)
	}
}

func TestTranslate_malformedRange(t *testing.T) {
	tests := []struct {
		pattern      string
		lower, upper string
	}{
		{"20200101", "20200101", ""},
		{"20200101-", "20200101", ""},
		{"-20201231", "", "20201231"},
		{"1000-1200-1400", "1000", "1200"},
	}
	for _, tt := range tests {
		f, _, err := Translate(dictionary.Standard(), models.LevelSeries, map[string]string{"SeriesTime": tt.pattern}, nil)
		if err != nil {
			t.Fatal(err)
		}
		r := f.(filter.And)[0].(*filter.Range)
		if r.Lower != tt.lower || r.Upper != tt.upper {
			t.Errorf("%q: range = [%q, %q], want [%q, %q]", tt.pattern, r.Lower, r.Upper, tt.lower, tt.upper)
		}
	}
}

func TestTranslate_modalitiesInStudy(t *testing.T) {
	f, proj, err := Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"ModalitiesInStudy": "MR"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := f.(filter.And)[0].(*filter.Regex)
	if r.Tag != "00080060" || r.Component != "" || r.Pattern != "MR" {
		t.Errorf("regex = %+v", r)
	}
	if !proj.Has("00080061") {
		t.Error("the requested aggregate tag is still projected")
	}
}

func TestTranslate_textAndTagKeys(t *testing.T) {
	f, proj, err := Translate(dictionary.Standard(), models.LevelImage, map[string]string{
		"0020000E":        "1.2.3",
		"AccessionNumber": "A12",
	}, []string{"00080016"})
	if err != nil {
		t.Fatal(err)
	}
	want := "and(00080050 ~ /A12/i, 0020000E ~ /1.2.3/i)"
	if f.String() != want {
		t.Errorf("filter = %s, want %s", f, want)
	}
	for _, tag := range []string{"00080016", "00080018", "00080050", "0020000E"} {
		if !proj.Has(tag) {
			t.Errorf("projection missing %s: %v", tag, proj.Tags())
		}
	}
}

func TestTranslate_unresolvedKeysIgnored(t *testing.T) {
	dict := dictionary.Standard()
	base := map[string]string{"PatientName": "DOE*", "StudyDate": "20200101-20201231", "Modality": "CT"}
	wantF, wantP, err := Translate(dict, models.LevelStudy, base, StudyAttributes)
	if err != nil {
		t.Fatal(err)
	}
	for _, extra := range []string{"includefield", "limit", "patientname", "offset"} {
		with := map[string]string{extra: "x"}
		for k, v := range base {
			with[k] = v
		}
		gotF, gotP, err := Translate(dict, models.LevelStudy, with, StudyAttributes)
		if err != nil {
			t.Fatal(err)
		}
		if gotF.String() != wantF.String() {
			t.Errorf("with %q: filter %s, want %s", extra, gotF, wantF)
		}
		if len(gotP) != len(wantP) {
			t.Errorf("with %q: projection %v, want %v", extra, gotP.Tags(), wantP.Tags())
		}
	}
}

func TestTranslate_empty(t *testing.T) {
	f, proj, err := Translate(dictionary.Standard(), models.LevelSeries, nil, []string{"0008103E"})
	if err != nil {
		t.Fatal(err)
	}
	if len(f.(filter.And)) != 0 || !f.Match(models.Dataset{}) {
		t.Error("no filters should match everything")
	}
	if len(proj) != 2 {
		t.Errorf("projection = %v", proj.Tags())
	}
}

func TestTranslate_doesNotMutateInputs(t *testing.T) {
	required := []string{"00080016"}
	filters := map[string]string{"PatientName": "A*"}
	for i := 0; i < 3; i++ {
		if _, _, err := Translate(dictionary.Standard(), models.LevelImage, filters, required); err != nil {
			t.Fatal(err)
		}
	}
	if len(required) != 1 || len(filters) != 1 || filters["PatientName"] != "A*" {
		t.Errorf("inputs modified: %v %v", required, filters)
	}
}

func TestTranslate_errors(t *testing.T) {
	_, _, err := Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"00990099": "x"}, nil)
	if !errors.Is(err, dictionary.ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
	_, _, err = Translate(dictionary.Standard(), models.LevelStudy, map[string]string{"AccessionNumber": "A("}, nil)
	if !errors.Is(err, filter.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		vr   dictionary.VR
		want matchKind
	}{
		{dictionary.PN, matchPersonName},
		{dictionary.DA, matchRange},
		{dictionary.TM, matchRange},
		{dictionary.DT, matchRange},
		{dictionary.CS, matchText},
		{dictionary.UI, matchText},
		{dictionary.IS, matchText},
	}
	for _, tt := range tests {
		if got := kindOf(tt.vr); got != tt.want {
			t.Errorf("kindOf(%s) = %v, want %v", tt.vr, got, tt.want)
		}
	}
}
