package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

const registryFixture = `<?xml version="1.0" encoding="utf-8"?>
<book xmlns="http://docbook.org/ns/docbook" xmlns:xml="http://www.w3.org/XML/1998/namespace">
<chapter>
<table xml:id="table_6-1">
<thead><tr><th><para>Tag</para></th><th><para>Name</para></th><th><para>Keyword</para></th><th><para>VR</para></th><th><para>VM</para></th><th><para/></th></tr></thead>
<tbody>
<tr><td><para>(0020,0060)</para></td><td><para>Laterality</para></td><td><para>Laterality</para></td><td><para>CS</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para>(0010,0010)</para></td><td><para>Patient's Name</para></td><td><para>Patient` + "\u200b" + `Name</para></td><td><para>PN</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para><emphasis role="italic">(0008,0001)</emphasis></para></td><td><para><emphasis role="italic">Length to End</emphasis></para></td><td><para><emphasis role="italic">Length` + "\u200b" + `To` + "\u200b" + `End</emphasis></para></td><td><para><emphasis role="italic">UL</emphasis></para></td><td><para><emphasis role="italic">1</emphasis></para></td><td><para><emphasis role="italic">RET</emphasis></para></td></tr>
<tr><td><para>(7FE0,0010)</para></td><td><para>Pixel Data</para></td><td><para>PixelData</para></td><td><para>OB or OW</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para>(0028,0106)</para></td><td><para>Smallest Image Pixel Value</para></td><td><para>SmallestImagePixelValue</para></td><td><para>US or SS</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para>(60xx,3000)</para></td><td><para>Overlay Data</para></td><td><para>OverlayData</para></td><td><para>OB or OW</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para>(FFFE,E000)</para></td><td><para>Item</para></td><td><para>Item</para></td><td><para>See Note</para></td><td><para>1</para></td><td><para/></td></tr>
<tr><td><para>(0018,9445)</para></td><td><para/></td><td><para/></td><td><para/></td><td><para/></td><td><para>RET</para></td></tr>
<tr><td><para>(0040,A132)</para></td><td><para>Referenced Sample Positions</para></td><td><para>ReferencedSamplePositions</para></td><td><para>UL</para></td><td><para>1-n</para></td><td><para/></td></tr>
</tbody>
</table>
<table xml:id="table_7-1">
<tbody>
<tr><td><para>(0002,0010)</para></td><td><para>Transfer Syntax UID</para></td><td><para>TransferSyntaxUID</para></td><td><para>UI</para></td><td><para>1</para></td><td><para/></td></tr>
</tbody>
</table>
<table xml:id="table_A-1">
<tbody>
<tr><td><para>(0099,0099)</para></td><td><para>Not An Element</para></td><td><para>NotAnElement</para></td><td><para>LO</para></td><td><para>1</para></td><td><para/></td></tr>
</tbody>
</table>
</chapter>
</book>
`

func TestParse(t *testing.T) {
	entries, err := parse(strings.NewReader(registryFixture))
	if err != nil {
		t.Fatal(err)
	}
	want := []entry{
		{"00020010", "TransferSyntaxUID", "UI", "1"},
		{"00080001", "LengthToEnd", "UL", "1"},
		{"00100010", "PatientName", "PN", "1"},
		{"00200060", "Laterality", "CS", "1"},
		{"00280106", "SmallestImagePixelValue", "US", "1"},
		{"0040A132", "ReferencedSamplePositions", "UL", "1-n"},
		{"7FE00010", "PixelData", "OW", "1"},
		{"FFFEE000", "Item", "UN", "1"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestVR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CS", "CS"},
		{" DS\n", "DS"},
		{"OB or OW", "OW"},
		{"US or SS", "US"},
		{"US or SS or OW", "US"},
		{"See Note", "UN"},
		{"", "UN"},
	}
	for _, tt := range tests {
		if got := vr(tt.in); got != tt.want {
			t.Errorf("vr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	code, err := render([]entry{
		{"00100010", "PatientName", "PN", "1"},
		{"00200060", "Laterality", "CS", "1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	src := string(code)
	for _, want := range []string{
		"// Code generated by gen from the PS3.6 registry. DO NOT EDIT.",
		"package dictionary",
		"var standardEntries = []Entry{",
		`{"00100010", "PatientName", PN, "1"},`,
		`{"00200060", "Laterality", CS, "1"},`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "part06.xml")
	out := filepath.Join(dir, "standard.go")
	if err := os.WriteFile(in, []byte(registryFixture), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(in, out, zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}
	code, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), `{"00200060", "Laterality", CS, "1"},`) {
		t.Errorf("generated file missing Laterality:\n%s", code)
	}

	if err := run(filepath.Join(dir, "missing.xml"), out, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for missing source")
	}
	empty := filepath.Join(dir, "empty.xml")
	if err := os.WriteFile(empty, []byte("<book/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(empty, out, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for a source without registry rows")
	}
}
