// Package dcm decodes DICOM Part-10 files into the DICOM JSON data model.
//
// Decoding is a synchronous pull: the whole file is held in memory, the dataset is fully
// materialized, and pixel data is reported as a byte range of the input instead of a copy.
package dcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/models"
)

// ErrNotDICOM is returned for input without a Part-10 preamble and magic.
var ErrNotDICOM = errors.New("not a DICOM Part-10 file")

const (
	preambleSize = 128
	magic        = "DICM"
)

// ByteRange locates a value within the decoded buffer.
type ByteRange struct {
	Offset int
	Length int
}

// Object is a decoded Part-10 file.
type Object struct {
	Meta           models.Dataset
	Dataset        models.Dataset
	TransferSyntax string
	// PixelData is nil when the object carries no pixel data element.
	PixelData *ByteRange
	// Encapsulated is true when pixel data is stored as a fragment sequence.
	Encapsulated bool
}

// Decoder turns raw file bytes into an Object.
type Decoder interface {
	Decode(data []byte) (*Object, error)
}

// Parser is the built-in Decoder. It needs a dictionary to type implicit VR elements.
type Parser struct {
	dict *dictionary.Dictionary
}

// NewParser returns a Parser using dict for implicit VR lookups. A nil dict means the standard dictionary.
func NewParser(dict *dictionary.Dictionary) *Parser {
	if dict == nil {
		dict = dictionary.Standard()
	}
	return &Parser{dict: dict}
}

// Decode parses data with the standard dictionary.
func Decode(data []byte) (*Object, error) {
	return NewParser(nil).Decode(data)
}

// Decode parses a Part-10 file.
func (p *Parser) Decode(data []byte) (*Object, error) {
	if len(data) < preambleSize+len(magic) || string(data[preambleSize:preambleSize+len(magic)]) != magic {
		return nil, ErrNotDICOM
	}
	r := &reader{data: data, pos: preambleSize + len(magic)}
	obj := &Object{Meta: models.Dataset{}, Dataset: models.Dataset{}}

	// The meta group is always explicit VR little endian.
	for {
		group, ok := r.peekGroup(binary.LittleEndian)
		if !ok || group != 0x0002 {
			break
		}
		if err := p.readElement(r, explicitLE, obj.Meta, obj); err != nil {
			return nil, fmt.Errorf("file meta: %w", err)
		}
	}

	ts, _ := obj.Meta.String(dictionary.TransferSyntaxUID)
	obj.TransferSyntax = ts
	if ts == "" {
		obj.TransferSyntax = ExplicitVRLittleEndian
	}
	s, err := lookupSyntax(obj.TransferSyntax)
	if err != nil {
		return nil, err
	}

	for r.remaining() > 0 {
		if err := p.readElement(r, s, obj.Dataset, obj); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// readElement reads one element into ds. Pixel data positions are recorded on obj.
func (p *Parser) readElement(r *reader, s syntax, ds models.Dataset, obj *Object) error {
	tag, err := r.tag(s.order)
	if err != nil {
		return err
	}
	vr, length, err := p.header(r, s, tag)
	if err != nil {
		return fmt.Errorf("element %s: %w", tagString(tag), err)
	}

	if tag == tagPixelData && obj != nil {
		start := r.pos
		if length == undefinedLength {
			end, err := skipFragments(r, s)
			if err != nil {
				return fmt.Errorf("encapsulated pixel data: %w", err)
			}
			obj.PixelData = &ByteRange{Offset: start, Length: end - start}
			obj.Encapsulated = true
		} else {
			if err := r.skip(int(length)); err != nil {
				return fmt.Errorf("pixel data: %w", err)
			}
			obj.PixelData = &ByteRange{Offset: start, Length: int(length)}
		}
		ds[tagString(tag)] = models.Attribute{VR: string(vr)}
		return nil
	}

	if vr == dictionary.SQ || (length == undefinedLength && vr == dictionary.UN) {
		items, err := p.readSequence(r, s, vr, length)
		if err != nil {
			return fmt.Errorf("sequence %s: %w", tagString(tag), err)
		}
		a := models.Attribute{VR: string(dictionary.SQ)}
		if len(items) > 0 {
			a.Value = items
		}
		ds[tagString(tag)] = a
		return nil
	}

	if length == undefinedLength {
		return fmt.Errorf("element %s: undefined length on %s", tagString(tag), vr)
	}
	b, err := r.bytes(int(length))
	if err != nil {
		return fmt.Errorf("element %s: %w", tagString(tag), err)
	}
	ds[tagString(tag)] = attribute(vr, b, s.order)
	return nil
}

// header reads the VR and value length that follow a tag.
func (p *Parser) header(r *reader, s syntax, tag uint32) (dictionary.VR, uint32, error) {
	if !s.explicit || tag == tagItem || tag == tagItemDelimitation || tag == tagSequenceDelimiter {
		length, err := r.uint32(s.order)
		if err != nil {
			return "", 0, err
		}
		return p.implicitVR(tag), length, nil
	}
	code, err := r.bytes(2)
	if err != nil {
		return "", 0, err
	}
	vr := dictionary.VR(code)
	if hasLongLength(vr) {
		if err := r.skip(2); err != nil {
			return "", 0, err
		}
		length, err := r.uint32(s.order)
		return vr, length, err
	}
	length, err := r.uint16(s.order)
	return vr, uint32(length), err
}

func (p *Parser) implicitVR(tag uint32) dictionary.VR {
	if tag&0xFFFF == 0 {
		return dictionary.UL
	}
	vr, err := p.dict.ValueRepresentation(tagString(tag))
	if err != nil {
		return dictionary.UN
	}
	return vr
}

// readSequence reads the items of a sequence with defined or undefined length.
func (p *Parser) readSequence(r *reader, s syntax, vr dictionary.VR, length uint32) ([]any, error) {
	if vr == dictionary.UN {
		s = implicitLE
	}
	end := len(r.data)
	if length != undefinedLength {
		end = r.pos + int(length)
		if end > len(r.data) {
			return nil, fmt.Errorf("sequence length %d exceeds buffer", length)
		}
	}
	var items []any
	for r.pos < end {
		tag, err := r.tag(s.order)
		if err != nil {
			return nil, err
		}
		itemLength, err := r.uint32(s.order)
		if err != nil {
			return nil, err
		}
		if tag == tagSequenceDelimiter {
			break
		}
		if tag != tagItem {
			return nil, fmt.Errorf("unexpected tag %s in sequence", tagString(tag))
		}
		item, err := p.readItem(r, s, itemLength)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (p *Parser) readItem(r *reader, s syntax, length uint32) (models.Dataset, error) {
	item := models.Dataset{}
	if length != undefinedLength {
		end := r.pos + int(length)
		if end > len(r.data) {
			return nil, fmt.Errorf("item length %d exceeds buffer", length)
		}
		for r.pos < end {
			if err := p.readElement(r, s, item, nil); err != nil {
				return nil, err
			}
		}
		return item, nil
	}
	for {
		if r.remaining() >= 8 {
			next := uint32(s.order.Uint16(r.data[r.pos:]))<<16 | uint32(s.order.Uint16(r.data[r.pos+2:]))
			if next == tagItemDelimitation {
				return item, r.skip(8)
			}
		}
		if r.remaining() == 0 {
			return nil, fmt.Errorf("item without delimiter")
		}
		if err := p.readElement(r, s, item, nil); err != nil {
			return nil, err
		}
	}
}

// skipFragments advances past an encapsulated fragment sequence and returns the offset of
// its sequence delimiter, which bounds the pixel data payload.
func skipFragments(r *reader, s syntax) (int, error) {
	for {
		at := r.pos
		tag, err := r.tag(s.order)
		if err != nil {
			return 0, err
		}
		length, err := r.uint32(s.order)
		if err != nil {
			return 0, err
		}
		switch tag {
		case tagSequenceDelimiter:
			return at, nil
		case tagItem:
			if err := r.skip(int(length)); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("unexpected tag %s in fragment sequence", tagString(tag))
		}
	}
}

// attribute converts a raw value into its DICOM JSON form.
func attribute(vr dictionary.VR, b []byte, order binary.ByteOrder) models.Attribute {
	a := models.Attribute{VR: string(vr)}
	if len(b) == 0 || isBulk(vr) {
		return a
	}
	switch vr {
	case dictionary.AT:
		for i := 0; i+4 <= len(b); i += 4 {
			a.Value = append(a.Value, tagString(uint32(order.Uint16(b[i:]))<<16|uint32(order.Uint16(b[i+2:]))))
		}
	case dictionary.US:
		for i := 0; i+2 <= len(b); i += 2 {
			a.Value = append(a.Value, float64(order.Uint16(b[i:])))
		}
	case dictionary.SS:
		for i := 0; i+2 <= len(b); i += 2 {
			a.Value = append(a.Value, float64(int16(order.Uint16(b[i:]))))
		}
	case dictionary.UL:
		for i := 0; i+4 <= len(b); i += 4 {
			a.Value = append(a.Value, float64(order.Uint32(b[i:])))
		}
	case dictionary.SL:
		for i := 0; i+4 <= len(b); i += 4 {
			a.Value = append(a.Value, float64(int32(order.Uint32(b[i:]))))
		}
	case dictionary.UV:
		for i := 0; i+8 <= len(b); i += 8 {
			a.Value = append(a.Value, float64(order.Uint64(b[i:])))
		}
	case dictionary.SV:
		for i := 0; i+8 <= len(b); i += 8 {
			a.Value = append(a.Value, float64(int64(order.Uint64(b[i:]))))
		}
	case dictionary.FL:
		for i := 0; i+4 <= len(b); i += 4 {
			a.Value = append(a.Value, number(float64(math.Float32frombits(order.Uint32(b[i:])))))
		}
	case dictionary.FD:
		for i := 0; i+8 <= len(b); i += 8 {
			a.Value = append(a.Value, number(math.Float64frombits(order.Uint64(b[i:]))))
		}
	case dictionary.IS, dictionary.DS:
		for _, s := range splitText(b) {
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
				a.Value = append(a.Value, f)
			} else {
				a.Value = append(a.Value, s)
			}
		}
	case dictionary.PN:
		for _, s := range splitText(b) {
			a.Value = append(a.Value, personName(s))
		}
	case dictionary.LT, dictionary.ST, dictionary.UT, dictionary.UR:
		if s := trimText(b); s != "" {
			a.Value = []any{s}
		}
	default:
		for _, s := range splitText(b) {
			a.Value = append(a.Value, s)
		}
	}
	return a
}

// number keeps finite values numeric. NaN and infinities have no JSON number form, so they
// are kept as text.
func number(f float64) any {
	if isFinite(f) {
		return f
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func trimText(b []byte) string {
	return strings.TrimRight(string(bytes.TrimRight(b, "\x00")), " ")
}

func splitText(b []byte) []string {
	s := trimText(b)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, `\`)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func personName(s string) models.PersonName {
	groups := strings.SplitN(s, "=", 3)
	pn := models.PersonName{Alphabetic: groups[0]}
	if len(groups) > 1 {
		pn.Ideographic = groups[1]
	}
	if len(groups) > 2 {
		pn.Phonetic = groups[2]
	}
	return pn
}
