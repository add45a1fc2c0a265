// Package main is the kura CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/cli"
	"github.com/hyperjump/kura/internal/config"
	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/server"
	"github.com/hyperjump/kura/internal/watcher"
	"github.com/hyperjump/kura/pkg/utils"
)

var version = "dev"

const defaultServerURL = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "import":
		runImport()
	case "find":
		runFind()
	case "status":
		runStatus()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("kura version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// session is the loaded config and logger of one command invocation.
type session struct {
	cfg        *config.Config
	configPath string
	logger     *zap.Logger
	debug      bool
}

// setup loads the config and builds the logger shared by the direct-access commands.
func setup(configPath string, debug bool) (*session, error) {
	cfg, resolved, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	debugMode := cfg.Debug || debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &session{cfg: cfg, configPath: resolved, logger: logger, debug: debugMode}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	s, err := setup(*configPath, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, cfg := s.logger, s.cfg
	defer logger.Sync()
	logger.Info("config loaded", zap.String("config_path", s.configPath), zap.Bool("debug", s.debug))

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if stats, err := components.Index.Stats(ctx); err == nil {
		components.Metrics.SetIndexedInstances(stats.Instances)
	}

	pipeline := components.Pipeline
	watchSvc := watcher.New(
		cfg.Watch.Directories,
		cfg.Ingest.Extensions,
		cfg.Watch.RecursiveOrDefault(),
		func(ctx context.Context, path string) {
			// Failures are logged by the pipeline.
			_, _ = pipeline.IngestFile(ctx, path)
		},
		watcher.WithLogger(logger.Named("watcher")),
	)
	if err := watchSvc.Start(ctx); err != nil {
		logger.Fatal("failed to start watcher", zap.Error(err))
	}
	go watchSvc.SyncExistingFiles()

	srv := server.NewServer(
		components.Engine,
		components.Retriever,
		components.Pipeline,
		components.Index,
		cfg,
		server.WithLogger(logger.Named("http")),
		server.WithMetrics(components.Metrics),
		server.WithWatch(watchSvc, s.configPath),
	)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	cancel()
	watchSvc.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
}

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	serverURL := fs.String("server", "", "server URL (empty = import directly into local storage)")
	workers := fs.Int("workers", 0, "parallel workers (default from config)")
	_ = fs.Parse(flagsFirst(os.Args[2:]))

	s, err := setup(*configPath, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer s.logger.Sync()
	dir := s.cfg.Ingest.ImportDir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	var count int
	if *serverURL != "" {
		// The server resolves the path on its own filesystem.
		abs, _ := filepath.Abs(dir)
		count, err = ingestViaHTTP(*serverURL, abs)
	} else {
		if *workers > 0 {
			s.cfg.Ingest.Workers = *workers
		}
		components, initErr := initializeComponents(s.cfg, s.logger)
		if initErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", initErr)
			os.Exit(1)
		}
		defer components.Close()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		count, err = components.Pipeline.Ingest(ctx, dir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteImportResult(os.Stdout, count)
}

func printFindUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: kura find [flags] [Attribute=pattern ...]\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Attributes are dictionary names (PatientName) or tags (00100010).
  - Person names match case-insensitively; * is a wildcard.
  - Dates, times and date-times accept a range: StudyDate=20200101-20201231.
  - Other values are case-insensitive regular expressions.

Examples:
  kura find PatientName='doe*'
  kura find -level series -attr SeriesDescription,Modality StudyInstanceUID=1.2.3
  kura find -output json StudyDate=20240101-
`)
}

func runFind() {
	fs := flag.NewFlagSet("find", flag.ExitOnError)
	fs.Usage = func() { printFindUsage(fs) }
	configPath := fs.String("config", defaultConfigPath, "config file path (direct index mode)")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = query the local index directly)")
	level := fs.String("level", "study", "query level: study, series or image")
	attrs := fs.String("attr", "", "comma-separated attributes to return (default: the level's defaults)")
	output := fs.String("output", "text", "output format: text, compact or json")
	_ = fs.Parse(flagsFirst(os.Args[2:]))

	format, err := cli.ParseOutputFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	filters, err := parseFilters(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	req := &models.FindRequest{
		Level:      models.Level(*level),
		Filters:    filters,
		Attributes: parseAttributes(*attrs),
	}

	var resp *models.FindResponse
	if *serverURL != "" {
		resp, err = findViaHTTP(*serverURL, req)
	} else {
		s, setupErr := setup(*configPath, false)
		if setupErr != nil {
			fmt.Fprintln(os.Stderr, setupErr)
			os.Exit(1)
		}
		defer s.logger.Sync()
		components, initErr := initializeComponents(s.cfg, s.logger)
		if initErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", initErr)
			os.Exit(1)
		}
		defer components.Close()
		resp, err = components.Engine.Find(context.Background(), req)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Find failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteFindResults(os.Stdout, resp, nil, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (direct mode)")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = read local storage directly)")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status cli.Status
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		s, err := setup(*configPath, false)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.logger.Sync()
		components, err := initializeComponents(s.cfg, s.logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		if status, err = localStatus(context.Background(), components, s.cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
	}

	switch *output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		_ = cli.WriteStatus(os.Stdout, status)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *output)
		os.Exit(1)
	}
}

func runWatch() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: kura watch <add|remove|list> [path]")
		fmt.Println("  kura watch add <path>     Add a drop folder")
		fmt.Println("  kura watch remove <path>  Stop watching a drop folder")
		fmt.Println("  kura watch list           List watched folders")
		os.Exit(1)
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	_ = fs.Parse(flagsFirst(os.Args[3:]))

	switch sub {
	case "add", "remove":
		if fs.NArg() < 1 {
			fmt.Printf("Usage: kura watch %s <path>\n", sub)
			os.Exit(1)
		}
		path, _ := filepath.Abs(fs.Arg(0))
		var err error
		if sub == "add" {
			err = watchAddViaHTTP(*serverURL, path)
		} else {
			err = watchRemoveViaHTTP(*serverURL, path)
		}
		if err != nil {
			fmt.Printf("Watch %s failed: %v\n", sub, err)
			os.Exit(1)
		}
		if sub == "add" {
			fmt.Printf("Added: %s\n", path)
		} else {
			fmt.Printf("Removed: %s\n", path)
		}
	case "list":
		dirs, err := watchListViaHTTP(*serverURL)
		if err != nil {
			fmt.Printf("List failed: %v\n", err)
			os.Exit(1)
		}
		for _, d := range dirs {
			fmt.Println(d)
		}
	default:
		fmt.Printf("Unknown watch subcommand: %s\n", sub)
		os.Exit(1)
	}
}

// flagsFirst moves everything from the first flag onward to the front, so flags may follow
// positional arguments (flag.Parse stops at the first non-flag).
func flagsFirst(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// parseFilters turns Attribute=pattern arguments into a filter map. A repeated attribute
// keeps its last value.
func parseFilters(args []string) (map[string]string, error) {
	filters := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: want Attribute=pattern", arg)
		}
		filters[key] = value
	}
	return filters, nil
}

// parseAttributes splits a comma-separated attribute list, dropping blanks.
func parseAttributes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printUsage() {
	fmt.Println(`kura - DICOM archive with DICOMweb query and frame retrieval

Usage:
  kura server [flags]               Start the HTTP server
  kura import [flags] [dir]         Import a directory tree of DICOM files
  kura find [flags] [Attr=pattern]  Query the archive
  kura status [flags]               Show archive counts and storage usage
  kura watch <add|remove|list>      Manage watched drop folders
  kura version                      Show version
  kura help                         Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/kura/config.yaml)
  --debug            Enable debug logging

Import Flags:
  --config string    Config file path
  --server string    Ask a running server to import instead (path must be visible to it)
  --workers int      Parallel workers (default from config, 4)

Find Flags:
  --server string    Server URL (default: http://localhost:8080). Use --server "" to query the local index.
  --level string     study, series or image (default: study)
  --attr string      Comma-separated attributes to return
  --output string    text, compact or json (default: text)

Status Flags:
  --server string    Server URL (default: http://localhost:8080). Use --server "" for direct storage.
  --output string    text or json (default: text)

Watch Flags:
  --server string    Server URL (default: http://localhost:8080)

Examples:
  kura server
  kura import ~/Downloads/ct-study
  kura find PatientName='doe*'
  kura find -level series StudyInstanceUID=1.2.840.113619.2.5
  kura status --output json
  kura watch add /srv/dicom/incoming`)
}
