package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/storage"
)

func sampleResponse() *models.FindResponse {
	return &models.FindResponse{
		Level:     models.LevelStudy,
		Total:     1,
		QueryTime: 7,
		Results: []models.Dataset{
			{
				"0020000D": {VR: "UI", Value: []any{"1.2.3"}},
				"00100010": {VR: "PN", Value: []any{models.PersonName{Alphabetic: "Doe^John"}}},
				"00080061": {VR: "CS", Value: []any{"CT", "MR"}},
				"00201208": {VR: "IS", Value: []any{float64(12)}},
			},
		},
	}
}

func TestWriteFindResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFindResults(&buf, sampleResponse(), nil, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.FindResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Level != models.LevelStudy || decoded.Total != 1 || decoded.QueryTime != 7 {
		t.Errorf("decoded = %+v", decoded)
	}
	name, ok := decoded.Results[0].First("00100010")
	if pn, _ := name.(models.PersonName); !ok || pn.Alphabetic != "Doe^John" {
		t.Errorf("person name = %#v", name)
	}
}

func TestWriteFindResults_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFindResults(&buf, sampleResponse(), nil, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Found 1 study records in 7ms",
		"(0010,0010) PatientName",
		"Doe^John",
		`CT\MR`,
		"NumberOfStudyRelatedInstances",
		"(0020,000D) StudyInstanceUID",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "(0008,0061)") > strings.Index(out, "(0010,0010)") {
		t.Error("attributes should be listed in tag order")
	}
}

func TestWriteFindResults_compact(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFindResults(&buf, sampleResponse(), nil, OutputCompact); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line per record, got %d", len(lines))
	}
	want := "ModalitiesInStudy=CT\\MR\tPatientName=Doe^John\tStudyInstanceUID=1.2.3\tNumberOfStudyRelatedInstances=12"
	if lines[0] != want {
		t.Errorf("compact line = %q, want %q", lines[0], want)
	}
}

func TestWriteFindResults_empty(t *testing.T) {
	var buf bytes.Buffer
	resp := &models.FindResponse{Level: models.LevelSeries}
	if err := WriteFindResults(&buf, resp, nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Found 0 series records") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		attr models.Attribute
		want string
	}{
		{"empty", models.Attribute{VR: "LO"}, ""},
		{"multi", models.Attribute{VR: "CS", Value: []any{"ORIGINAL", "PRIMARY"}}, `ORIGINAL\PRIMARY`},
		{"number", models.Attribute{VR: "DS", Value: []any{0.5, float64(3)}}, `0.5\3`},
		{"person", models.Attribute{VR: "PN", Value: []any{models.PersonName{Alphabetic: "A^B", Ideographic: "x"}}}, "A^B"},
		{"null", models.Attribute{VR: "LO", Value: []any{nil, "x"}}, `\x`},
		{"sequence", models.Attribute{VR: "SQ", Value: []any{models.Dataset{"00081150": {VR: "UI"}}}}, "<item: 1 attributes>"},
		{"bulk", models.Attribute{VR: "OB", InlineBinary: "AAEC"}, "<binary>"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.attr); got != tt.want {
			t.Errorf("%s: FormatValue = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputText, false},
		{"TEXT", OutputText, false},
		{"compact", OutputCompact, false},
		{"json", OutputJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestWriteImportResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteImportResult(&buf, 3); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "import finished, 3 files imported.\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	st := Status{
		IndexType:  "sqlite",
		IndexStats: models.IndexStats{Instances: 10, Studies: 2, Series: 3},
		Objects:    storage.Usage{Bytes: 2048, Files: 10},
		Database:   storage.Usage{Bytes: 512, Files: 1},
	}
	if err := WriteStatus(&buf, st); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Index:     sqlite", "Studies:   2", "Instances: 10", "10 files, 2.0 KiB", "Database:  512 B"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestStatus_decodesStatusEndpoint(t *testing.T) {
	body := `{"instances":3,"studies":2,"series":2,"index_type":"memory","objects_usage":{"bytes":10,"files":3}}`
	var st Status
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		t.Fatal(err)
	}
	if st.Instances != 3 || st.IndexType != "memory" || st.Objects.Files != 3 {
		t.Errorf("status = %+v", st)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
