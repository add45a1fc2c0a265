package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/config"
	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/ingest"
	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/retrieve"
	"github.com/hyperjump/kura/internal/storage"
)

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	var req models.FindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("find request", zap.String("level", string(req.Level)), zap.Int("filters", len(req.Filters)))
	resp, err := s.engine.Find(r.Context(), &req)
	if err != nil {
		s.respondFailure(w, "find failed", err)
		return
	}
	if resp.Results == nil {
		resp.Results = []models.Dataset{}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req models.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		req.Path = s.cfg.Ingest.ImportDir
	}
	s.logger.Info("ingest request", zap.String("path", req.Path))
	n, err := s.pipeline.Ingest(r.Context(), req.Path)
	if err != nil {
		s.respondFailure(w, "ingest failed", err)
		return
	}
	s.refreshInstanceGauge(r.Context())
	s.respondJSON(w, http.StatusOK, models.IngestResponse{Count: n})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := s.index.Stats(r.Context())
	if err != nil {
		s.respondFailure(w, "status: index stats failed", err)
		return
	}
	s.metrics.SetIndexedInstances(stats.Instances)
	resp := map[string]interface{}{
		"instances":  stats.Instances,
		"studies":    stats.Studies,
		"series":     stats.Series,
		"index_type": s.index.Type(),
	}
	configInfo := map[string]interface{}{
		"objects_path": s.cfg.Storage.ObjectsPath,
		"import_dir":   s.cfg.Ingest.ImportDir,
		"workers":      s.cfg.Ingest.Workers,
	}
	if s.index.Type() == string(storage.IndexTypeSQLite) {
		configInfo["database_path"] = s.cfg.Storage.DatabasePath
		if u, err := storage.DatabaseUsage(s.cfg.Storage.DatabasePath); err == nil {
			resp["database_usage"] = u
		}
	}
	if u, err := storage.DiskUsage(s.cfg.Storage.ObjectsPath); err == nil {
		resp["objects_usage"] = u
	}
	resp["config"] = configInfo
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) refreshInstanceGauge(ctx context.Context) {
	if stats, err := s.index.Stats(ctx); err == nil {
		s.metrics.SetIndexedInstances(stats.Instances)
	}
}

func (s *Server) handleWatchDirectoriesList(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"directories": s.watch.Directories()})
}

type watchAddRequest struct {
	Path string `json:"path"`
	Sync *bool  `json:"sync,omitempty"`
}

func (s *Server) handleWatchDirectoriesAdd(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	var req watchAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	abs, err := filepath.Abs(req.Path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			s.respondError(w, http.StatusNotFound, "directory not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !info.IsDir() {
		s.respondError(w, http.StatusBadRequest, "path is not a directory")
		return
	}
	syncExisting := true
	if req.Sync != nil {
		syncExisting = *req.Sync
	}
	if err := s.watch.AddDirectory(abs, syncExisting); err != nil {
		s.respondFailure(w, "watch add directory failed", err)
		return
	}
	s.persistWatchDirectories()
	s.respondJSON(w, http.StatusCreated, map[string]string{"path": abs, "status": "added"})
}

func (s *Server) handleWatchDirectoriesRemove(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		var body struct {
			Path string `json:"path"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			path = body.Path
		}
	}
	if path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required (query or body)")
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	if err := s.watch.RemoveDirectory(abs); err != nil {
		s.respondFailure(w, "watch remove directory failed", err)
		return
	}
	s.persistWatchDirectories()
	s.respondJSON(w, http.StatusOK, map[string]string{"path": abs, "status": "removed"})
}

func (s *Server) persistWatchDirectories() {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.cfg.Watch.Directories = s.watch.Directories()
	if s.configPath == "" {
		return
	}
	if err := config.Save(s.configPath, s.cfg); err != nil {
		s.logger.Warn("failed to persist watch config", zap.Error(err))
	}
}

// statusFor maps an error from the query, ingest or retrieve layers to an HTTP status.
// A tag missing from the dictionary is a server fault and falls through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, retrieve.ErrFrameOutOfRange),
		errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, filter.ErrInvalidPattern),
		errors.Is(err, models.ErrInvalidLevel),
		errors.Is(err, storage.ErrInvalidUID),
		errors.Is(err, ingest.ErrNotDirectory):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondFailure writes err with its mapped status. Server-side failures are logged.
func (s *Server) respondFailure(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(msg, zap.Error(err))
	} else {
		s.logger.Debug(msg, zap.Int("status", status), zap.Error(err))
	}
	s.respondError(w, status, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
