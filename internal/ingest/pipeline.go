// Package ingest imports DICOM files into the object store and the index.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/kura/internal/dcm"
	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/storage"
)

var (
	// ErrMissingIdentifier is returned when a decoded dataset lacks a Study or SOP Instance UID.
	ErrMissingIdentifier = errors.New("missing required identifier")
	// ErrDecodeFailed is returned when a file cannot be decoded.
	ErrDecodeFailed = errors.New("decode failed")
	// ErrNotDirectory is returned when Ingest is given a path that is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// DefaultWorkers is the fan-out used when no worker count is configured.
const DefaultWorkers = 4

// Pipeline decodes files, places them in the object store and indexes their datasets.
type Pipeline struct {
	decoder    dcm.Decoder
	objects    *storage.ObjectStore
	index      storage.Index
	workers    int
	extensions []string
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for per-file events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithWorkers bounds how many files are processed at once. Values below 1 mean DefaultWorkers.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithExtensions restricts directory imports to files with these extensions (case-insensitive).
// Empty means every regular file is tried.
func WithExtensions(exts []string) Option {
	return func(p *Pipeline) { p.extensions = exts }
}

// WithMetrics records per-file outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// NewPipeline creates a pipeline. A nil decoder means the built-in Part-10 parser.
func NewPipeline(decoder dcm.Decoder, objects *storage.ObjectStore, index storage.Index, opts ...Option) *Pipeline {
	if decoder == nil {
		decoder = dcm.NewParser(nil)
	}
	p := &Pipeline{
		decoder: decoder,
		objects: objects,
		index:   index,
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = DefaultWorkers
	}
	return p
}

// Ingest walks dir recursively and ingests every regular file. It returns the number of
// files that were both stored and newly indexed. Per-file failures are logged and skipped;
// only a missing or unreadable dir, or cancellation, is returned as an error.
func (p *Pipeline) Ingest(ctx context.Context, dir string) (int, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return 0, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotDirectory, absDir)
	}

	var count atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	walkErr := filepath.WalkDir(absDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			p.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !p.extensionAllowed(path) {
			return nil
		}
		g.Go(func() error {
			// Failures stay local to the file; siblings keep running.
			if ok, _ := p.IngestFile(gctx, path); ok {
				count.Add(1)
			}
			return nil
		})
		return nil
	})
	_ = g.Wait()

	n := int(count.Load())
	if walkErr != nil {
		return n, walkErr
	}
	if err := ctx.Err(); err != nil {
		return n, err
	}
	p.logger.Info("import finished", zap.String("dir", absDir), zap.Int("imported", n))
	return n, nil
}

// IngestFile ingests one file. indexed is true only when the object was stored and a new
// index record was created. A file whose SOP Instance UID is already indexed is stored
// again and reported as indexed=false with a nil error. Failures are logged here.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (indexed bool, err error) {
	p.logger.Debug("ingesting file", zap.String("path", path))

	info, err := os.Stat(path)
	if err != nil {
		return false, p.fail(metrics.OutcomeStoreFailed, path, fmt.Errorf("stat file: %w", err))
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("not a regular file: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, p.fail(metrics.OutcomeStoreFailed, path, fmt.Errorf("read file: %w", err))
	}

	obj, err := p.decoder.Decode(data)
	if err != nil {
		return false, p.fail(metrics.OutcomeDecodeFailed, path, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, path, err))
	}
	study, ok := obj.Dataset.String(dictionary.StudyInstanceUID)
	if !ok {
		return false, p.fail(metrics.OutcomeMissingIdentifier, path, fmt.Errorf("%w: StudyInstanceUID in %s", ErrMissingIdentifier, path))
	}
	sop, ok := obj.Dataset.String(dictionary.SOPInstanceUID)
	if !ok {
		return false, p.fail(metrics.OutcomeMissingIdentifier, path, fmt.Errorf("%w: SOPInstanceUID in %s", ErrMissingIdentifier, path))
	}

	// Nothing is written once the caller has given up.
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := p.objects.Put(study, sop, bytes.NewReader(data)); err != nil {
		return false, p.fail(metrics.OutcomeStoreFailed, path, fmt.Errorf("store object: %w", err))
	}
	if err := p.index.Insert(ctx, obj.Dataset); err != nil {
		if errors.Is(err, storage.ErrDuplicateObject) {
			p.metrics.RecordIngest(metrics.OutcomeDuplicate)
			p.logger.Debug("object already indexed", zap.String("path", path), zap.String("sop_instance_uid", sop))
			return false, nil
		}
		return false, p.fail(metrics.OutcomeStoreFailed, path, fmt.Errorf("index object: %w", err))
	}

	p.metrics.RecordIngest(metrics.OutcomeIndexed)
	p.logger.Debug("file ingested",
		zap.String("path", path),
		zap.String("study_instance_uid", study),
		zap.String("sop_instance_uid", sop))
	return true, nil
}

func (p *Pipeline) fail(outcome, path string, err error) error {
	p.metrics.RecordIngest(outcome)
	switch outcome {
	case metrics.OutcomeDecodeFailed, metrics.OutcomeMissingIdentifier:
		p.logger.Warn("skipping file", zap.String("path", path), zap.String("reason", outcome), zap.Error(err))
	default:
		p.logger.Error("ingest failed", zap.String("path", path), zap.Error(err))
	}
	return err
}

func (p *Pipeline) extensionAllowed(path string) bool {
	if len(p.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, a := range p.extensions {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == ext {
			return true
		}
	}
	return false
}
