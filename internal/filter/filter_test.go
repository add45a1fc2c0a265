package filter

import (
	"errors"
	"testing"

	"github.com/hyperjump/kura/internal/models"
)

func sample() models.Dataset {
	return models.Dataset{
		"00100010": {VR: "PN", Value: []any{models.PersonName{Alphabetic: "Doe^John"}}},
		"00080020": {VR: "DA", Value: []any{"20200615"}},
		"00080060": {VR: "CS", Value: []any{"CT", "MR"}},
		"00200011": {VR: "IS", Value: []any{float64(12)}},
	}
}

func mustRegex(t *testing.T, tag, comp, pattern string) *Regex {
	t.Helper()
	r, err := NewRegex(tag, comp, pattern)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRegex_Match(t *testing.T) {
	ds := sample()
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"pn prefix case-insensitive", mustRegex(t, "00100010", ComponentAlphabetic, "DOE.*"), true},
		{"pn no match", mustRegex(t, "00100010", ComponentAlphabetic, "^SMITH"), false},
		{"pn without component ignores names", mustRegex(t, "00100010", "", "Doe"), false},
		{"any value of multi-valued", mustRegex(t, "00080060", "", "mr"), true},
		{"substring", mustRegex(t, "00080020", "", "0615"), true},
		{"numeric text", mustRegex(t, "00200011", "", "^12$"), true},
		{"missing tag", mustRegex(t, "00081030", "", ".*"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Match(ds); got != tt.want {
				t.Errorf("%s.Match = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestRange_Match(t *testing.T) {
	ds := sample()
	tests := []struct {
		r    Range
		want bool
	}{
		{Range{"00080020", "20200101", "20201231"}, true},
		{Range{"00080020", "20200615", "20200615"}, true},
		{Range{"00080020", "20210101", "20211231"}, false},
		{Range{"00080020", "20200101", ""}, false},
		{Range{"00080020", "", "20201231"}, true},
		{Range{"00200011", "0", "9"}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Match(ds); got != tt.want {
			t.Errorf("%s.Match = %v, want %v", tt.r.String(), got, tt.want)
		}
	}
}

func TestAnd(t *testing.T) {
	ds := sample()
	if !(And{}).Match(ds) {
		t.Error("empty And should match everything")
	}
	f := And{
		mustRegex(t, "00100010", ComponentAlphabetic, "doe"),
		&Range{Tag: "00080020", Lower: "20200101", Upper: "20201231"},
	}
	if !f.Match(ds) {
		t.Error("expected match")
	}
	f = append(f, mustRegex(t, "00080060", "", "^US$"))
	if f.Match(ds) {
		t.Error("expected no match once a sub-filter fails")
	}
}

func TestString_canonical(t *testing.T) {
	a := And{mustRegex(t, "00100010", ComponentAlphabetic, "DOE.*"), &Range{Tag: "00080020", Lower: "1", Upper: "2"}}
	b := And{mustRegex(t, "00100010", ComponentAlphabetic, "DOE.*"), &Range{Tag: "00080020", Lower: "1", Upper: "2"}}
	if a.String() != b.String() {
		t.Errorf("%s != %s", a, b)
	}
	want := `and(00100010.Alphabetic ~ /DOE.*/i, 00080020 in ["1", "2"])`
	if a.String() != want {
		t.Errorf("String() = %s, want %s", a, want)
	}
}

func TestNewRegex_invalid(t *testing.T) {
	_, err := NewRegex("00100010", "", "DOE[")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}
