package retrieve

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const crlf = "\r\n"

// Envelope is a single-part multipart/related body carrying one binary payload.
type Envelope struct {
	Boundary  string
	ContentID string
	Location  string
	Payload   []byte
}

// NewEnvelope wraps payload with a fresh random boundary and content id.
func NewEnvelope(payload []byte, location string) (*Envelope, error) {
	boundary, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate boundary: %w", err)
	}
	contentID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate content id: %w", err)
	}
	return &Envelope{
		Boundary:  strings.ReplaceAll(boundary.String(), "-", ""),
		ContentID: contentID.String(),
		Location:  location,
		Payload:   payload,
	}, nil
}

// ContentType returns the Content-Type header value for the envelope.
func (e *Envelope) ContentType() string {
	return fmt.Sprintf("multipart/related;start=%s;type='application/octet-stream';boundary='%s'", e.ContentID, e.Boundary)
}

func (e *Envelope) header() string {
	var b strings.Builder
	b.WriteString(crlf + "--" + e.Boundary + crlf)
	b.WriteString("Content-Location:" + e.Location + crlf)
	b.WriteString("Content-ID:" + e.ContentID + crlf)
	b.WriteString("Content-Type:application/octet-stream" + crlf)
	b.WriteString(crlf)
	return b.String()
}

func (e *Envelope) trailer() string {
	return crlf + "--" + e.Boundary + "--" + crlf
}

// Len returns the encoded size in bytes.
func (e *Envelope) Len() int {
	return len(e.header()) + len(e.Payload) + len(e.trailer())
}

// WriteTo writes the encoded envelope to w.
func (e *Envelope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range [][]byte{[]byte(e.header()), e.Payload, []byte(e.trailer())} {
		n, err := w.Write(part)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the encoded envelope.
func (e *Envelope) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(e.Len())
	_, _ = e.WriteTo(&buf)
	return buf.Bytes()
}
