package server

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/query"
)

func (s *Server) mountDICOMweb(r chi.Router) {
	r.Get("/studies", s.dicomFind(models.LevelStudy, query.StudyAttributes))
	r.Get("/studies/{study}/series", s.dicomFind(models.LevelSeries, query.SeriesAttributes))
	r.Get("/studies/{study}/metadata", s.dicomFind(models.LevelSeries, query.SeriesAttributes))
	r.Get("/studies/{study}/series/{series}/instances", s.dicomFind(models.LevelImage, query.InstanceAttributes))
	r.Get("/studies/{study}/series/{series}/metadata", s.dicomFind(models.LevelImage, query.InstanceMetadataAttributes))
	r.Get("/studies/{study}/series/{series}/instances/{sop}/frames/{frame}", s.handleFrame)
}

// dicomFind answers a query route with a bare JSON array of datasets. Query-string keys
// become filters (first value wins); UIDs from the path are matched exactly and replace
// any same-named query key.
func (s *Server) dicomFind(level models.Level, attributes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				filters[key] = values[0]
			}
		}
		if study := chi.URLParam(r, "study"); study != "" {
			filters["StudyInstanceUID"] = exact(study)
		}
		if series := chi.URLParam(r, "series"); series != "" {
			filters["SeriesInstanceUID"] = exact(series)
		}
		resp, err := s.engine.Find(r.Context(), &models.FindRequest{
			Level:      level,
			Filters:    filters,
			Attributes: attributes,
		})
		if err != nil {
			s.respondFailure(w, "query failed", err)
			return
		}
		results := resp.Results
		if results == nil {
			results = []models.Dataset{}
		}
		s.respondJSON(w, http.StatusOK, results)
	}
}

func exact(uid string) string {
	return "^" + regexp.QuoteMeta(uid) + "$"
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, err := strconv.Atoi(chi.URLParam(r, "frame"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "frame must be an integer")
		return
	}
	study, sop := chi.URLParam(r, "study"), chi.URLParam(r, "sop")
	env, err := s.retriever.Frame(r.Context(), study, sop, frame, r.Host)
	if err != nil {
		s.respondFailure(w, "frame retrieval failed", err)
		return
	}
	w.Header().Set("Content-Type", env.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(env.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := env.WriteTo(w); err != nil {
		s.logger.Warn("frame write interrupted",
			zap.String("study_instance_uid", study),
			zap.String("sop_instance_uid", sop),
			zap.Error(err))
	}
}

// handleWADOURI streams the stored Part-10 file named by studyUID and objectUID.
// seriesUID is required by the protocol but not needed to locate the object.
func (s *Server) handleWADOURI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	study, series, sop := q.Get("studyUID"), q.Get("seriesUID"), q.Get("objectUID")
	if study == "" || series == "" || sop == "" {
		s.respondError(w, http.StatusBadRequest, "missing parameters: studyUID, seriesUID and objectUID are required")
		return
	}
	f, err := s.retriever.Open(study, sop)
	if err != nil {
		s.respondFailure(w, "wado-uri retrieval failed", err)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		s.respondFailure(w, "wado-uri stat failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/dicom")
	http.ServeContent(w, r, "", info.ModTime(), f)
}
