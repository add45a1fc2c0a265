package dcm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hyperjump/kura/internal/dictionary"
)

// Element is an element to be written by Write.
type Element struct {
	Tag string
	VR  dictionary.VR
	// Exactly one of the following carries the value.
	Strings   []string
	Uint16s   []uint16
	Raw       []byte
	Items     [][]Element
	Fragments [][]byte
}

// Text builds a string-valued element. Multiple values are joined with a backslash.
func Text(tag string, vr dictionary.VR, values ...string) Element {
	return Element{Tag: tag, VR: vr, Strings: values}
}

// Uint16 builds a US element.
func Uint16(tag string, values ...uint16) Element {
	return Element{Tag: tag, VR: dictionary.US, Uint16s: values}
}

// Pixels builds a native pixel data element.
func Pixels(data []byte) Element {
	return Element{Tag: dictionary.PixelData, VR: dictionary.OW, Raw: data}
}

// EncapsulatedPixels builds an encapsulated pixel data element with an empty basic offset table.
func EncapsulatedPixels(fragments ...[]byte) Element {
	return Element{Tag: dictionary.PixelData, VR: dictionary.OB, Fragments: fragments}
}

// Sequence builds an SQ element written with undefined lengths.
func Sequence(tag string, items ...[]Element) Element {
	return Element{Tag: tag, VR: dictionary.SQ, Items: items}
}

// Write encodes elements as a Part-10 file in the given transfer syntax. The file meta
// group is derived from the SOP class and instance UIDs found among elements.
// Elements are written in the order given.
func Write(w io.Writer, transferSyntax string, elements []Element) error {
	s, err := lookupSyntax(transferSyntax)
	if err != nil {
		return err
	}

	var sopClass, sopInstance string
	for _, e := range elements {
		switch e.Tag {
		case dictionary.SOPClassUID:
			sopClass = strings.Join(e.Strings, `\`)
		case dictionary.SOPInstanceUID:
			sopInstance = strings.Join(e.Strings, `\`)
		}
	}

	var meta bytes.Buffer
	metaElements := []Element{
		{Tag: "00020001", VR: dictionary.OB, Raw: []byte{0, 1}},
		Text("00020002", dictionary.UI, sopClass),
		Text("00020003", dictionary.UI, sopInstance),
		Text(dictionary.TransferSyntaxUID, dictionary.UI, transferSyntax),
	}
	for _, e := range metaElements {
		if err := writeElement(&meta, explicitLE, e); err != nil {
			return err
		}
	}

	var out bytes.Buffer
	out.Write(make([]byte, preambleSize))
	out.WriteString(magic)
	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(meta.Len()))
	if err := writeElement(&out, explicitLE, Element{Tag: "00020000", VR: dictionary.UL, Raw: groupLength}); err != nil {
		return err
	}
	out.Write(meta.Bytes())

	for _, e := range elements {
		if err := writeElement(&out, s, e); err != nil {
			return err
		}
	}
	_, err = w.Write(out.Bytes())
	return err
}

func writeElement(buf *bytes.Buffer, s syntax, e Element) error {
	t, err := strconv.ParseUint(e.Tag, 16, 32)
	if err != nil {
		return fmt.Errorf("bad tag %q: %w", e.Tag, err)
	}
	tag := uint32(t)

	if e.Items != nil || e.Fragments != nil {
		writeHeader(buf, s, tag, e.VR, undefinedLength)
		if e.Fragments != nil {
			writeItem(buf, s.order, tagItem, nil)
			for _, f := range e.Fragments {
				writeItem(buf, s.order, tagItem, f)
			}
		} else {
			for _, item := range e.Items {
				writeItemHeader(buf, s.order, tagItem, undefinedLength)
				for _, child := range item {
					if err := writeElement(buf, s, child); err != nil {
						return err
					}
				}
				writeItem(buf, s.order, tagItemDelimitation, nil)
			}
		}
		writeItem(buf, s.order, tagSequenceDelimiter, nil)
		return nil
	}

	value := encodeValue(s.order, e)
	writeHeader(buf, s, tag, e.VR, uint32(len(value)))
	buf.Write(value)
	return nil
}

func encodeValue(order binary.ByteOrder, e Element) []byte {
	switch {
	case e.Raw != nil:
		v := e.Raw
		if len(v)%2 == 1 {
			v = append(append([]byte(nil), v...), 0)
		}
		return v
	case e.Uint16s != nil:
		v := make([]byte, 2*len(e.Uint16s))
		for i, n := range e.Uint16s {
			order.PutUint16(v[2*i:], n)
		}
		return v
	}
	v := []byte(strings.Join(e.Strings, `\`))
	if len(v)%2 == 1 {
		pad := byte(' ')
		if e.VR == dictionary.UI {
			pad = 0
		}
		v = append(v, pad)
	}
	return v
}

func writeHeader(buf *bytes.Buffer, s syntax, tag uint32, vr dictionary.VR, length uint32) {
	writeUint16(buf, s.order, uint16(tag>>16))
	writeUint16(buf, s.order, uint16(tag))
	if !s.explicit {
		writeUint32(buf, s.order, length)
		return
	}
	buf.WriteString(string(vr))
	if hasLongLength(vr) {
		buf.Write([]byte{0, 0})
		writeUint32(buf, s.order, length)
		return
	}
	writeUint16(buf, s.order, uint16(length))
}

func writeItem(buf *bytes.Buffer, order binary.ByteOrder, tag uint32, value []byte) {
	writeItemHeader(buf, order, tag, uint32(len(value)))
	buf.Write(value)
}

func writeItemHeader(buf *bytes.Buffer, order binary.ByteOrder, tag, length uint32) {
	writeUint16(buf, order, uint16(tag>>16))
	writeUint16(buf, order, uint16(tag))
	writeUint32(buf, order, length)
}

func writeUint16(buf *bytes.Buffer, order binary.ByteOrder, v uint16) {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	buf.Write(b)
}

func writeUint32(buf *bytes.Buffer, order binary.ByteOrder, v uint32) {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	buf.Write(b)
}
