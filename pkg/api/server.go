// pkg/api/server.go

// Package api exposes the importer over HTTP: one endpoint that assembles a
// draft record from a URL, and one that persists a reviewed record. The two
// are deliberately separate operations; an import never writes anything.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ozcomp/compintake/internal/config"
	"github.com/ozcomp/compintake/internal/extract"
	"github.com/ozcomp/compintake/internal/fetch"
	"github.com/ozcomp/compintake/internal/monitoring"
	"github.com/ozcomp/compintake/internal/output"
	"github.com/ozcomp/compintake/internal/utils"
)

// Importer assembles a draft record from a URL. Satisfied by
// *extract.Importer.
type Importer interface {
	Import(ctx context.Context, url string) (*extract.Competition, error)
}

// Persister stores reviewed records. Satisfied by *output.Manager.
type Persister interface {
	Write(records []extract.Competition) error
}

// Server is the HTTP surface of the importer.
type Server struct {
	importer  Importer
	persister Persister
	metrics   *monitoring.Metrics
	logger    utils.Logger
	router    *mux.Router
	format    string
}

// ServerOptions wires the server's collaborators.
type ServerOptions struct {
	Importer  Importer
	Persister Persister
	Metrics   *monitoring.Metrics
	Logger    utils.Logger
	Version   string
	// Format is only used for metrics labelling of persisted records.
	Format string
}

// NewServer assembles the router and handlers.
func NewServer(opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = utils.NewComponentLogger("api")
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics("")
	}

	s := &Server{
		importer:  opts.Importer,
		persister: opts.Persister,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		format:    opts.Format,
	}

	r := mux.NewRouter()
	r.Handle("/healthz", monitoring.NewHealthHandler(opts.Version)).Methods(http.MethodGet)
	r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/import", s.handleImport).Methods(http.MethodPost)
	v1.HandleFunc("/competitions", s.handleCreate).Methods(http.MethodPost)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleImport runs the extraction pipeline for one URL and returns the
// draft record without persisting it.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if !validAbsoluteURL(req.URL) {
		s.writeError(w, http.StatusBadRequest, "url must be a valid absolute URL", nil)
		return
	}

	start := time.Now()
	record, err := s.importer.Import(r.Context(), req.URL)
	if err != nil {
		s.metrics.RecordImport("failure", time.Since(start), 0)
		s.writeImportError(w, req.URL, err)
		return
	}

	s.metrics.RecordImport("success", time.Since(start), len(record.Issues))
	s.recordFieldHits(record)
	s.writeJSON(w, http.StatusOK, ImportResponse{Record: record})
}

// handleCreate persists one reviewed record after checking the fields the
// import pipeline guarantees are still intact.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := validateRecord(&req.Record); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := s.persister.Write([]extract.Competition{req.Record}); err != nil {
		s.logger.Errorf("persist failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "failed to persist record", err)
		return
	}

	s.metrics.RecordWritten(s.format, 1)
	s.writeJSON(w, http.StatusCreated, CreateResponse{Persisted: true, Format: s.format})
}

// writeImportError maps pipeline failures onto HTTP statuses: upstream
// non-2xx responses become 502 with the upstream status attached, everything
// else in the fetch tier is a 502 transport report, and bad URLs are 400.
func (s *Server) writeImportError(w http.ResponseWriter, sourceURL string, err error) {
	if fe, ok := fetch.AsError(err); ok {
		if fe.StatusCode != 0 {
			s.metrics.RecordFetchFailure("status")
			s.writeJSON(w, http.StatusBadGateway, ErrorResponse{
				Error:      "upstream fetch failed",
				StatusCode: fe.StatusCode,
				Cause:      fe.Message,
			})
			return
		}
		if strings.Contains(fe.Message, "malformed") {
			s.metrics.RecordFetchFailure("url")
			s.writeError(w, http.StatusBadRequest, fe.Message, nil)
			return
		}
		s.metrics.RecordFetchFailure("transport")
		s.writeError(w, http.StatusBadGateway, "upstream fetch failed", fe)
		return
	}

	s.logger.Errorf("import of %s failed: %v", sourceURL, err)
	s.writeError(w, http.StatusInternalServerError, "import failed", err)
}

// recordFieldHits counts which optional fields the pipeline managed to fill.
func (s *Server) recordFieldHits(record *extract.Competition) {
	hits := map[string]bool{
		"title":       record.Title != extract.PlaceholderTitle,
		"description": record.Description != "",
		"draw_date":   record.DrawDate != "",
		"total_prize": record.TotalPrize != "",
		"prize_text":  record.PrizeDescription != "",
		"permit":      record.PermitNumber != "",
		"thumbnail":   record.ThumbnailURL != "",
		"organizer":   record.OrganizerName != "",
		"terms_url":   record.TermsConditionsURL != "",
		"entry_rules": record.Rules != "",
		"criteria":    len(record.EntryCriteria) > 0,
	}
	for field, hit := range hits {
		if hit {
			s.metrics.RecordExtractorHit(field)
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, cause error) {
	resp := ErrorResponse{Error: message}
	if cause != nil {
		resp.Cause = cause.Error()
	}
	s.writeJSON(w, status, resp)
}

func validAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// validateRecord enforces the create operation's required fields and enum
// invariants independently of the import pipeline.
func validateRecord(record *extract.Competition) error {
	if strings.TrimSpace(record.Title) == "" {
		return errMissing("title")
	}
	if record.StartDate == "" || record.EndDate == "" {
		return errMissing("start_date and end_date")
	}
	if !validCategory(record.Category) {
		return errInvalid("category")
	}
	if !validGameType(record.TypeOfGame) {
		return errInvalid("type_of_game")
	}
	if record.Status == "" {
		record.Status = extract.StatusDraft
	}
	return nil
}

func validCategory(c extract.Category) bool {
	for _, valid := range extract.ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

func validGameType(g extract.GameType) bool {
	for _, valid := range extract.ValidGameTypes() {
		if g == valid {
			return true
		}
	}
	return false
}

type fieldError struct {
	msg string
}

func (e fieldError) Error() string { return e.msg }

func errMissing(field string) error {
	return fieldError{msg: "missing required field: " + field}
}

func errInvalid(field string) error {
	return fieldError{msg: "invalid value for field: " + field}
}

// NewPersister builds the output-backed persister from configuration.
func NewPersister(cfg *config.OutputConfig) (Persister, error) {
	return output.NewManager(cfg)
}
