package dcm

import (
	"encoding/binary"
	"fmt"

	"github.com/hyperjump/kura/internal/dictionary"
)

// Transfer syntax UIDs with distinct dataset encodings.
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	ExplicitVRBigEndian            = "1.2.840.10008.1.2.2"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
	JPEGBaseline                   = "1.2.840.10008.1.2.4.50"
)

const (
	undefinedLength uint32 = 0xFFFFFFFF

	tagItem              uint32 = 0xFFFEE000
	tagItemDelimitation  uint32 = 0xFFFEE00D
	tagSequenceDelimiter uint32 = 0xFFFEE0DD
	tagPixelData         uint32 = 0x7FE00010
)

// syntax describes how elements are laid out in the dataset.
type syntax struct {
	order    binary.ByteOrder
	explicit bool
}

var (
	implicitLE = syntax{order: binary.LittleEndian}
	explicitLE = syntax{order: binary.LittleEndian, explicit: true}
	explicitBE = syntax{order: binary.BigEndian, explicit: true}
)

// lookupSyntax maps a transfer syntax UID to its encoding. Compressed syntaxes share the
// explicit little endian encoding and only differ in how pixel data is encapsulated.
func lookupSyntax(uid string) (syntax, error) {
	switch uid {
	case ImplicitVRLittleEndian:
		return implicitLE, nil
	case ExplicitVRBigEndian:
		return explicitBE, nil
	case DeflatedExplicitVRLittleEndian:
		return syntax{}, fmt.Errorf("unsupported transfer syntax %s", uid)
	}
	return explicitLE, nil
}

// hasLongLength reports whether an explicit VR uses the 2 reserved bytes + 32-bit length form.
func hasLongLength(vr dictionary.VR) bool {
	switch vr {
	case dictionary.OB, dictionary.OD, dictionary.OF, dictionary.OL, dictionary.OV, dictionary.OW,
		dictionary.SQ, dictionary.UC, dictionary.UN, dictionary.UR, dictionary.UT, dictionary.SV, dictionary.UV:
		return true
	}
	return false
}

func isBulk(vr dictionary.VR) bool {
	switch vr {
	case dictionary.OB, dictionary.OD, dictionary.OF, dictionary.OL, dictionary.OV, dictionary.OW, dictionary.UN:
		return true
	}
	return false
}

func tagString(tag uint32) string {
	return fmt.Sprintf("%08X", tag)
}
