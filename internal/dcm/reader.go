package dcm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// reader walks an in-memory buffer and tracks the absolute offset, which is what
// lets pixel data be reported as a byte range of the original file.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.pos, io.ErrUnexpectedEOF)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) skip(n int) error {
	_, err := r.bytes(n)
	return err
}

func (r *reader) uint16(order binary.ByteOrder) (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (r *reader) uint32(order binary.ByteOrder) (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (r *reader) tag(order binary.ByteOrder) (uint32, error) {
	group, err := r.uint16(order)
	if err != nil {
		return 0, err
	}
	element, err := r.uint16(order)
	if err != nil {
		return 0, err
	}
	return uint32(group)<<16 | uint32(element), nil
}

// peekGroup returns the group number of the next element without consuming it.
func (r *reader) peekGroup(order binary.ByteOrder) (uint16, bool) {
	if r.remaining() < 2 {
		return 0, false
	}
	return order.Uint16(r.data[r.pos:]), true
}
