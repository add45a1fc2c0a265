// Package dictionary resolves DICOM attribute names to tags and tags to their value representation.
package dictionary

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUnknownTag is returned when a tag has no dictionary entry.
var ErrUnknownTag = errors.New("unknown tag")

// VR is a DICOM value representation code.
type VR string

// Value representations from PS3.5 section 6.2.
const (
	AE VR = "AE"
	AS VR = "AS"
	AT VR = "AT"
	CS VR = "CS"
	DA VR = "DA"
	DS VR = "DS"
	DT VR = "DT"
	FD VR = "FD"
	FL VR = "FL"
	IS VR = "IS"
	LO VR = "LO"
	LT VR = "LT"
	OB VR = "OB"
	OD VR = "OD"
	OF VR = "OF"
	OL VR = "OL"
	OV VR = "OV"
	OW VR = "OW"
	PN VR = "PN"
	SH VR = "SH"
	SL VR = "SL"
	SQ VR = "SQ"
	SS VR = "SS"
	ST VR = "ST"
	SV VR = "SV"
	TM VR = "TM"
	UC VR = "UC"
	UI VR = "UI"
	UL VR = "UL"
	UN VR = "UN"
	UR VR = "UR"
	US VR = "US"
	UT VR = "UT"
	UV VR = "UV"
)

// Well-known tags used across the archive.
const (
	TransferSyntaxUID = "00020010"
	SOPClassUID       = "00080016"
	SOPInstanceUID    = "00080018"
	StudyDate         = "00080020"
	Modality          = "00080060"
	ModalitiesInStudy = "00080061"
	PatientName       = "00100010"
	PatientID         = "00100020"
	StudyInstanceUID  = "0020000D"
	SeriesInstanceUID = "0020000E"
	PixelData         = "7FE00010"
)

// Entry is one row of the data dictionary.
type Entry struct {
	Tag  string
	Name string
	VR   VR
	VM   string
}

//go:generate go run ./gen -out standard.go

// Dictionary is a read-only tag dictionary. It is safe for concurrent use.
type Dictionary struct {
	entries []Entry
	byTag   map[string]int
	byName  map[string]int
}

var tagPattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

// IsTag reports whether s is a canonical tag: exactly eight uppercase hex digits.
func IsTag(s string) bool {
	return tagPattern.MatchString(s)
}

// New builds a dictionary from entries. Later entries with the same tag replace earlier ones
// for tag lookups; a name resolves to its first entry.
func New(entries []Entry) *Dictionary {
	d := &Dictionary{
		entries: append([]Entry(nil), entries...),
		byTag:   make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range d.entries {
		d.byTag[e.Tag] = i
		if _, ok := d.byName[e.Name]; !ok {
			d.byName[e.Name] = i
		}
	}
	return d
}

var standard = New(standardEntries)

// Standard returns the built-in standard data dictionary.
func Standard() *Dictionary {
	return standard
}

// Resolve returns the tag for an attribute name. A name that already is a canonical tag is
// returned unchanged without consulting the dictionary. Otherwise name must equal an entry's
// keyword exactly (case-sensitive). ok is false if nothing matches.
func (d *Dictionary) Resolve(name string) (tag string, ok bool) {
	if IsTag(name) {
		return name, true
	}
	i, ok := d.byName[name]
	if !ok {
		return "", false
	}
	return d.entries[i].Tag, true
}

// Lookup returns the entry for tag.
func (d *Dictionary) Lookup(tag string) (Entry, error) {
	i, ok := d.byTag[tag]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return d.entries[i], nil
}

// ValueRepresentation returns the VR for tag, or ErrUnknownTag.
func (d *Dictionary) ValueRepresentation(tag string) (VR, error) {
	e, err := d.Lookup(tag)
	if err != nil {
		return "", err
	}
	return e.VR, nil
}

// Name returns the attribute name for tag, or the tag itself when unknown.
func (d *Dictionary) Name(tag string) string {
	if e, err := d.Lookup(tag); err == nil {
		return e.Name
	}
	return tag
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
