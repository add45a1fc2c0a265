// Package models defines the DICOM JSON data model and the request and response types shared by the archive.
package models

import (
	"encoding/json"
	"fmt"
)

// PersonName is a PN value split into its component groups.
type PersonName struct {
	Alphabetic  string `json:"Alphabetic,omitempty"`
	Ideographic string `json:"Ideographic,omitempty"`
	Phonetic    string `json:"Phonetic,omitempty"`
}

// Attribute is one element of a dataset in the DICOM JSON model.
// Value elements are string, float64, PersonName or Dataset (sequence items).
type Attribute struct {
	VR           string `json:"vr"`
	Value        []any  `json:"Value,omitempty"`
	InlineBinary string `json:"InlineBinary,omitempty"`
	BulkDataURI  string `json:"BulkDataURI,omitempty"`
}

// Dataset maps canonical tags to attributes.
type Dataset map[string]Attribute

// String returns the first value of tag when it is a non-empty string.
func (d Dataset) String(tag string) (string, bool) {
	a, ok := d[tag]
	if !ok || len(a.Value) == 0 {
		return "", false
	}
	s, ok := a.Value[0].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// First returns the first value of tag.
func (d Dataset) First(tag string) (any, bool) {
	a, ok := d[tag]
	if !ok || len(a.Value) == 0 || a.Value[0] == nil {
		return nil, false
	}
	return a.Value[0], true
}

// Project returns a new dataset holding only the tags in keep that are present in d.
func (d Dataset) Project(keep map[string]struct{}) Dataset {
	out := make(Dataset, len(keep))
	for tag, a := range d {
		if _, ok := keep[tag]; ok {
			out[tag] = a
		}
	}
	return out
}

// UnmarshalJSON decodes the Value array according to the VR so that person names and
// sequence items come back typed rather than as generic maps.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var raw struct {
		VR           string            `json:"vr"`
		Value        []json.RawMessage `json:"Value"`
		InlineBinary string            `json:"InlineBinary"`
		BulkDataURI  string            `json:"BulkDataURI"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.VR = raw.VR
	a.InlineBinary = raw.InlineBinary
	a.BulkDataURI = raw.BulkDataURI
	a.Value = nil
	if len(raw.Value) == 0 {
		return nil
	}
	a.Value = make([]any, 0, len(raw.Value))
	for i, r := range raw.Value {
		v, err := decodeValue(raw.VR, r)
		if err != nil {
			return fmt.Errorf("value %d of %s attribute: %w", i, raw.VR, err)
		}
		a.Value = append(a.Value, v)
	}
	return nil
}

func decodeValue(vr string, r json.RawMessage) (any, error) {
	if string(r) == "null" {
		return nil, nil
	}
	switch vr {
	case "PN":
		var pn PersonName
		if err := json.Unmarshal(r, &pn); err != nil {
			return nil, err
		}
		return pn, nil
	case "SQ":
		var item Dataset
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, err
		}
		return item, nil
	}
	var v any
	if err := json.Unmarshal(r, &v); err != nil {
		return nil, err
	}
	return v, nil
}
