package dictionary

import (
	"errors"
	"testing"
)

func TestResolve_names(t *testing.T) {
	d := Standard()
	tests := []struct {
		name string
		want string
	}{
		{"PatientName", "00100010"},
		{"StudyDate", "00080020"},
		{"StudyInstanceUID", "0020000D"},
		{"ModalitiesInStudy", "00080061"},
		{"SeriesDescription", "0008103E"},
		{"Laterality", "00200060"},
		{"ImageLaterality", "00200062"},
		{"BodyPartExamined", "00180015"},
		{"FrameOfReferenceUID", "00200052"},
	}
	for _, tt := range tests {
		got, ok := d.Resolve(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.name, got, ok, tt.want)
		}
	}
}

func TestResolve_everyEntryName(t *testing.T) {
	d := Standard()
	seen := map[string]bool{}
	for _, e := range standardEntries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		got, ok := d.Resolve(e.Name)
		if !ok || got != e.Tag {
			t.Errorf("Resolve(%q) = %q, %v; want %q", e.Name, got, ok, e.Tag)
		}
	}
}

func TestResolve_tagFastPath(t *testing.T) {
	// An empty dictionary proves no scan happens for canonical tags.
	d := New(nil)
	for _, tag := range []string{"00100010", "DEADBEEF", "7FE00010"} {
		got, ok := d.Resolve(tag)
		if !ok || got != tag {
			t.Errorf("Resolve(%q) = %q, %v; want unchanged", tag, got, ok)
		}
	}
}

func TestResolve_unresolved(t *testing.T) {
	d := Standard()
	for _, name := range []string{"patientname", "PatientsName", "", "0010001", "0010001g", "includefield"} {
		if tag, ok := d.Resolve(name); ok {
			t.Errorf("Resolve(%q) = %q, want unresolved", name, tag)
		}
	}
}

func TestIsTag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00100010", true},
		{"7FE00010", true},
		{"7fe00010", false},
		{"0010001", false},
		{"001000100", false},
		{"(0010,0010)", false},
	}
	for _, tt := range tests {
		if got := IsTag(tt.in); got != tt.want {
			t.Errorf("IsTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValueRepresentation(t *testing.T) {
	d := Standard()
	vr, err := d.ValueRepresentation("00100010")
	if err != nil || vr != PN {
		t.Errorf("VR(PatientName) = %q, %v", vr, err)
	}
	vr, err = d.ValueRepresentation("00080020")
	if err != nil || vr != DA {
		t.Errorf("VR(StudyDate) = %q, %v", vr, err)
	}
	_, err = d.ValueRepresentation("00990099")
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
}

func TestValueRepresentation_registry(t *testing.T) {
	d := Standard()
	tests := []struct {
		tag  string
		want VR
	}{
		{"00200060", CS},
		{"00200032", DS},
		{"00280008", IS},
		{"00081140", SQ},
		{"00189087", FD},
		{"7FE00010", OW},
		{"FFFCFFFC", OB},
	}
	for _, tt := range tests {
		vr, err := d.ValueRepresentation(tt.tag)
		if err != nil || vr != tt.want {
			t.Errorf("VR(%s) = %q, %v; want %q", tt.tag, vr, err, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	d := Standard()
	if got := d.Name("00080060"); got != "Modality" {
		t.Errorf("Name = %q", got)
	}
	if got := d.Name("00990099"); got != "00990099" {
		t.Errorf("unknown tag name = %q, want tag", got)
	}
}

func TestStandardEntriesAreCanonical(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for _, e := range standardEntries {
		if seen[e.Tag] {
			t.Errorf("duplicate entry for %s", e.Tag)
		}
		seen[e.Tag] = true
		if e.Tag <= prev {
			t.Errorf("entry %s out of order after %s", e.Tag, prev)
		}
		prev = e.Tag
		if !IsTag(e.Tag) {
			t.Errorf("entry %s has non-canonical tag %q", e.Name, e.Tag)
		}
		if e.VR == "" {
			t.Errorf("entry %s has empty VR", e.Name)
		}
	}
}
