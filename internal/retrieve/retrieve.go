// Package retrieve serves stored objects and extracts their pixel data for frame requests.
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/dcm"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/storage"
)

var (
	// ErrDecodeFailure is returned when a stored object cannot be decoded or has no pixel data.
	ErrDecodeFailure = errors.New("decode failure")
	// ErrFrameOutOfRange is returned for frame numbers below 1.
	ErrFrameOutOfRange = errors.New("frame out of range")
)

// ExtractFrame decodes data and returns its pixel data bytes. The result aliases data.
func ExtractFrame(decoder dcm.Decoder, data []byte) ([]byte, error) {
	obj, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return pixelData(obj, data)
}

func pixelData(obj *dcm.Object, data []byte) ([]byte, error) {
	if obj.PixelData == nil {
		return nil, fmt.Errorf("%w: no pixel data element", ErrDecodeFailure)
	}
	r := obj.PixelData
	if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > len(data) {
		return nil, fmt.Errorf("%w: pixel data range %d+%d outside object", ErrDecodeFailure, r.Offset, r.Length)
	}
	return data[r.Offset : r.Offset+r.Length : r.Offset+r.Length], nil
}

// Retriever reads objects from the object store.
type Retriever struct {
	objects *storage.ObjectStore
	decoder dcm.Decoder
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Retriever) { r.logger = l }
}

// WithMetrics records frame retrievals.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Retriever) { r.metrics = m }
}

// WithDecoder replaces the built-in Part-10 parser.
func WithDecoder(d dcm.Decoder) Option {
	return func(r *Retriever) { r.decoder = d }
}

// NewRetriever creates a retriever over objects.
func NewRetriever(objects *storage.ObjectStore, opts ...Option) *Retriever {
	r := &Retriever{
		objects: objects,
		decoder: dcm.NewParser(nil),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Frame loads the object (study, sop), extracts its pixel data and wraps it in a fresh envelope.
// Frames are numbered from 1 and not distinguished: every frame's payload is the whole pixel
// data element.
func (r *Retriever) Frame(ctx context.Context, study, sop string, frame int, location string) (*Envelope, error) {
	env, err := r.frame(ctx, study, sop, frame, location)
	switch {
	case err == nil:
		r.metrics.RecordFrame("ok", len(env.Payload))
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, ErrFrameOutOfRange):
		r.metrics.RecordFrame("not_found", 0)
	default:
		r.metrics.RecordFrame("error", 0)
		r.logger.Error("frame retrieval failed",
			zap.String("study_instance_uid", study),
			zap.String("sop_instance_uid", sop),
			zap.Int("frame", frame),
			zap.Error(err))
	}
	return env, err
}

func (r *Retriever) frame(ctx context.Context, study, sop string, frame int, location string) (*Envelope, error) {
	if frame < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFrameOutOfRange, frame)
	}
	data, err := r.objects.ReadFile(study, sop)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	obj, err := r.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrDecodeFailure, study, sop, err)
	}
	payload, err := pixelData(obj, data)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(payload, location)
}

// Open returns the raw stored object for (study, sop).
func (r *Retriever) Open(study, sop string) (*os.File, error) {
	return r.objects.Open(study, sop)
}
