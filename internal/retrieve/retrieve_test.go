package retrieve

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/hyperjump/kura/internal/dcm"
	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/storage"
)

func encode(t *testing.T, ts string, extra ...dcm.Element) []byte {
	t.Helper()
	elems := append([]dcm.Element{
		dcm.Text("00080016", dictionary.UI, "1.2.840.10008.5.1.4.1.1.7"),
		dcm.Text("00080018", dictionary.UI, "1.2.3.1"),
		dcm.Text("0020000D", dictionary.UI, "1.2"),
		dcm.Text("0020000E", dictionary.UI, "1.2.3"),
	}, extra...)
	var buf bytes.Buffer
	if err := dcm.Write(&buf, ts, elems); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractFrame_native(t *testing.T) {
	pixels := []byte{10, 20, 30, 40, 50, 60}
	data := encode(t, dcm.ExplicitVRLittleEndian, dcm.Pixels(pixels))
	got, err := ExtractFrame(dcm.NewParser(nil), data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, pixels) {
		t.Errorf("payload = %v, want %v", got, pixels)
	}
}

func TestExtractFrame_encapsulatedIsNotReencoded(t *testing.T) {
	data := encode(t, dcm.JPEGBaseline, dcm.EncapsulatedPixels([]byte{0xFF, 0xD8, 0xFF, 0xD9}))
	got, err := ExtractFrame(dcm.NewParser(nil), data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(got, []byte{0xFF, 0xD8, 0xFF, 0xD9}) || !bytes.Contains(data, got) {
		t.Errorf("payload should be a slice of the stored fragments, got %x", got)
	}
}

func TestExtractFrame_errors(t *testing.T) {
	if _, err := ExtractFrame(dcm.NewParser(nil), []byte("garbage")); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("garbage: expected ErrDecodeFailure, got %v", err)
	}
	noPixels := encode(t, dcm.ExplicitVRLittleEndian)
	if _, err := ExtractFrame(dcm.NewParser(nil), noPixels); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("no pixels: expected ErrDecodeFailure, got %v", err)
	}
}

func TestEnvelope(t *testing.T) {
	payload := []byte{0, 1, 2, 3, '\r', '\n'}
	env, err := NewEnvelope(payload, "localhost")
	if err != nil {
		t.Fatal(err)
	}
	ct := env.ContentType()
	if !strings.HasPrefix(ct, "multipart/related;start="+env.ContentID+";") {
		t.Errorf("content type = %s", ct)
	}
	if !strings.Contains(ct, "type='application/octet-stream'") || !strings.Contains(ct, "boundary='"+env.Boundary+"'") {
		t.Errorf("content type = %s", ct)
	}

	body := env.Bytes()
	if len(body) != env.Len() {
		t.Errorf("Len = %d, encoded %d bytes", env.Len(), len(body))
	}
	wantHead := "\r\n--" + env.Boundary + "\r\nContent-Location:localhost\r\nContent-ID:" + env.ContentID +
		"\r\nContent-Type:application/octet-stream\r\n\r\n"
	if !bytes.HasPrefix(body, []byte(wantHead)) {
		t.Errorf("head = %q", body[:len(wantHead)])
	}
	if !bytes.HasSuffix(body, []byte("\r\n--"+env.Boundary+"--\r\n")) {
		t.Errorf("body does not end with the closing boundary: %q", body)
	}

	// The body parses as multipart with the payload intact.
	_, params, err := mime.ParseMediaType("multipart/related; boundary=" + env.Boundary)
	if err != nil {
		t.Fatal(err)
	}
	part, err := multipart.NewReader(bytes.NewReader(body), params["boundary"]).NextPart()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := io.ReadAll(part)
	if !bytes.Equal(got, payload) {
		t.Errorf("part payload = %v, want %v", got, payload)
	}
}

func TestEnvelope_freshTokens(t *testing.T) {
	a, _ := NewEnvelope(nil, "x")
	b, _ := NewEnvelope(nil, "x")
	if a.Boundary == b.Boundary || a.ContentID == b.ContentID {
		t.Error("each envelope must get new random tokens")
	}
	if len(a.Boundary) != 32 {
		t.Errorf("boundary %q should be 32 hex characters", a.Boundary)
	}
}

func TestRetriever_Frame(t *testing.T) {
	objects, err := storage.NewObjectStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	pixels := []byte{7, 7, 7, 7}
	if err := objects.Put("1.2", "1.2.3.1", bytes.NewReader(encode(t, dcm.ExplicitVRLittleEndian, dcm.Pixels(pixels)))); err != nil {
		t.Fatal(err)
	}
	if err := objects.Put("1.2", "broken", strings.NewReader("broken")); err != nil {
		t.Fatal(err)
	}
	r := NewRetriever(objects)
	ctx := context.Background()

	env, err := r.Frame(ctx, "1.2", "1.2.3.1", 1, "host")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.Payload, pixels) || env.Location != "host" {
		t.Errorf("envelope = %+v", env)
	}

	tests := []struct {
		name  string
		sop   string
		frame int
		want  error
	}{
		{"missing object", "9.9.9", 1, storage.ErrNotFound},
		{"corrupt object", "broken", 1, ErrDecodeFailure},
		{"frame zero", "1.2.3.1", 0, ErrFrameOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Frame(ctx, "1.2", tt.sop, tt.frame, "host"); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRetriever_framesBeyondCountReturnWholePayload(t *testing.T) {
	objects, err := storage.NewObjectStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	pixels := []byte{1, 2, 3, 4}
	multi := encode(t, dcm.ExplicitVRLittleEndian, dcm.Text("00280008", dictionary.IS, "3"), dcm.Pixels([]byte{1, 2, 3, 4, 5, 6}))
	single := encode(t, dcm.ExplicitVRLittleEndian, dcm.Pixels(pixels))
	if err := objects.Put("1.2", "1.2.3.1", bytes.NewReader(multi)); err != nil {
		t.Fatal(err)
	}
	if err := objects.Put("1.2", "1.2.3.2", bytes.NewReader(single)); err != nil {
		t.Fatal(err)
	}
	r := NewRetriever(objects)
	tests := []struct {
		sop   string
		frame int
		want  []byte
	}{
		{"1.2.3.1", 1, []byte{1, 2, 3, 4, 5, 6}},
		{"1.2.3.1", 3, []byte{1, 2, 3, 4, 5, 6}},
		{"1.2.3.1", 4, []byte{1, 2, 3, 4, 5, 6}},
		{"1.2.3.2", 1, pixels},
		{"1.2.3.2", 2, pixels},
		{"1.2.3.2", 7, pixels},
	}
	for _, tt := range tests {
		env, err := r.Frame(context.Background(), "1.2", tt.sop, tt.frame, "")
		if err != nil {
			t.Errorf("%s frame %d: %v", tt.sop, tt.frame, err)
			continue
		}
		if !bytes.Equal(env.Payload, tt.want) {
			t.Errorf("%s frame %d: payload = %v, want %v", tt.sop, tt.frame, env.Payload, tt.want)
		}
	}
	if _, err := r.Frame(context.Background(), "1.2", "1.2.3.2", 0, ""); !errors.Is(err, ErrFrameOutOfRange) {
		t.Errorf("frame 0: %v", err)
	}
}
