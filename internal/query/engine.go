package query

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/storage"
)

// Engine runs translated queries against an index.
type Engine struct {
	index   storage.Index
	dict    *dictionary.Dictionary
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics records query counts and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithDictionary replaces the standard dictionary.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(e *Engine) { e.dict = d }
}

// NewEngine creates a query engine over index.
func NewEngine(index storage.Index, opts ...Option) *Engine {
	e := &Engine{
		index:  index,
		dict:   dictionary.Standard(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dictionary returns the dictionary used for name resolution.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// Find runs req and returns deduplicated, projected records.
// Attributes may be names or tags; an empty list means the level's defaults.
func (e *Engine) Find(ctx context.Context, req *models.FindRequest) (*models.FindResponse, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	results, err := e.find(ctx, req)
	elapsed := time.Since(start)
	e.metrics.RecordQuery(string(req.Level), len(results), err, elapsed)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("query finished",
		zap.String("level", string(req.Level)),
		zap.Int("filters", len(req.Filters)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", elapsed))
	return &models.FindResponse{
		Level:     req.Level,
		Results:   results,
		Total:     len(results),
		QueryTime: elapsed.Milliseconds(),
	}, nil
}

func (e *Engine) find(ctx context.Context, req *models.FindRequest) ([]models.Dataset, error) {
	attrs := req.Attributes
	if len(attrs) == 0 {
		attrs = DefaultAttributes(req.Level)
	}
	required := make([]string, 0, len(attrs))
	for _, name := range attrs {
		if tag, ok := e.dict.Resolve(name); ok {
			required = append(required, tag)
		}
	}

	f, proj, err := Translate(e.dict, req.Level, req.Filters, required)
	if err != nil {
		return nil, err
	}
	raw, err := e.index.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("index query failed: %w", err)
	}
	return Finalize(req.Level, raw, proj), nil
}
