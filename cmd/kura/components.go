package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/cli"
	"github.com/hyperjump/kura/internal/config"
	"github.com/hyperjump/kura/internal/ingest"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/query"
	"github.com/hyperjump/kura/internal/retrieve"
	"github.com/hyperjump/kura/internal/storage"
)

// defaultConfigPath is overridden by config.yaml in the working directory during development.
const defaultConfigPath = config.DefaultConfigPath

// loadConfig loads config from path. When path is the default, config.yaml in the current
// directory wins if it exists. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, err := os.Getwd(); err == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, err := os.Stat(fallback); err == nil {
				cfg, err := config.Load(fallback)
				if err != nil {
					return nil, "", err
				}
				return cfg, fallback, nil
			}
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Running without any config file is allowed; everything takes its default.
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Components holds initialized services.
type Components struct {
	Index     storage.Index
	Objects   *storage.ObjectStore
	Metrics   *metrics.Metrics
	Engine    *query.Engine
	Retriever *retrieve.Retriever
	Pipeline  *ingest.Pipeline
}

// Close releases the index.
func (c *Components) Close() {
	if c.Index != nil {
		_ = c.Index.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	index, err := storage.NewIndex(cfg.Index.Type, cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize index: %w", err)
	}
	if index.Type() == string(storage.IndexTypeMemory) {
		logger.Warn("memory index selected: records are lost on exit")
	}
	objects, err := storage.NewObjectStore(cfg.Storage.ObjectsPath)
	if err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}
	m := metrics.New()

	engine := query.NewEngine(index,
		query.WithLogger(logger.Named("query")),
		query.WithMetrics(m))
	retriever := retrieve.NewRetriever(objects,
		retrieve.WithLogger(logger.Named("retrieve")),
		retrieve.WithMetrics(m))
	pipeline := ingest.NewPipeline(nil, objects, index,
		ingest.WithLogger(logger.Named("ingest")),
		ingest.WithMetrics(m),
		ingest.WithWorkers(cfg.Ingest.Workers),
		ingest.WithExtensions(cfg.Ingest.Extensions))

	logger.Info("components initialized",
		zap.String("index_type", index.Type()),
		zap.String("database_path", cfg.Storage.DatabasePath),
		zap.String("objects_path", objects.Root()),
		zap.Int("workers", cfg.Ingest.Workers))

	return &Components{
		Index:     index,
		Objects:   objects,
		Metrics:   m,
		Engine:    engine,
		Retriever: retriever,
		Pipeline:  pipeline,
	}, nil
}

// localStatus gathers the status report straight from the index and the filesystem.
func localStatus(ctx context.Context, c *Components, cfg *config.Config) (cli.Status, error) {
	stats, err := c.Index.Stats(ctx)
	if err != nil {
		return cli.Status{}, fmt.Errorf("index stats: %w", err)
	}
	st := cli.Status{IndexType: c.Index.Type(), IndexStats: stats}
	if st.Objects, err = storage.DiskUsage(c.Objects.Root()); err != nil {
		return cli.Status{}, fmt.Errorf("object store usage: %w", err)
	}
	if c.Index.Type() == string(storage.IndexTypeSQLite) {
		if st.Database, err = storage.DatabaseUsage(cfg.Storage.DatabasePath); err != nil {
			return cli.Status{}, fmt.Errorf("database usage: %w", err)
		}
	}
	return st, nil
}
