// Package http exposes the simulator over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
	"github.com/frhnkemal/camunda-automation-testing/internal/validation"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// API metadata served at GET /api.
const (
	apiName        = "Camunda Design-Time Process Simulator"
	apiVersion     = "1.0.0"
	apiDescription = "Quote-validation process simulation and definition validation"
)

// maxUploadBytes bounds definition uploads.
const maxUploadBytes = 10 << 20

// Engine defines what the HTTP layer needs from the simulator core.
type Engine interface {
	Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error)
	Scenarios() []domain.Scenario
	RejectionCases() []domain.RejectionCase
	RunScenario(ctx context.Context, slug string) (domain.ScenarioResult, error)
	Validate(ctx context.Context) *domain.ValidationReport
	UploadBPMN(ctx context.Context, filename string, content []byte) error
	UploadDMN(ctx context.Context, filename string, content []byte) error
	Files(ctx context.Context) (map[string][]string, error)
	InputFields(ctx context.Context) ([]domain.InputField, error)
}

// Server routes API requests to the engine.
type Server struct {
	engine  Engine
	logger  *slog.Logger
	metrics *metrics
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithLogger sets a custom structured logger for the server.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...ServerOption) http.Handler {
	s := &Server{
		engine:  engine,
		logger:  logging.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/api", s.metrics.observe("meta", s.handleMeta))
	r.Get("/api/", s.metrics.observe("meta", s.handleMeta))
	r.Post("/api/simulate", s.metrics.observe("simulate", s.handleSimulate))
	r.Get("/api/scenarios", s.metrics.observe("scenarios", s.handleScenarios))
	r.Get("/api/scenarios/validation", s.metrics.observe("scenarios_validation", s.handleRejectionCases))
	r.Post("/api/scenarios/{slug}/run", s.metrics.observe("scenario_run", s.handleRunScenario))
	r.Post("/api/upload/bpmn", s.metrics.observe("upload_bpmn", s.handleUploadBPMN))
	r.Post("/api/upload/dmn", s.metrics.observe("upload_dmn", s.handleUploadDMN))
	r.Get("/api/files", s.metrics.observe("files", s.handleFiles))
	r.Get("/api/inputs", s.metrics.observe("inputs", s.handleInputs))
	r.Post("/api/validate", s.metrics.observe("validate", s.handleValidate))
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	return r
}

// corsMiddleware mirrors the permissive policy of the original UI-facing API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Disposition")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleMeta(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":        apiName,
		"version":     apiVersion,
		"description": apiDescription,
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if errs := validation.Validate(body); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid input: "+strings.Join(errs, "; "))
		return
	}

	in, err := validation.DecodeInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result, err := s.engine.Simulate(r.Context(), in)
	if err != nil {
		s.logger.Error("simulation failed", "err", err)
		s.metrics.recordSimulation("error")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.recordSimulation(result.FinalStatus)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Scenarios())
}

func (s *Server) handleRejectionCases(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.RejectionCases())
}

func (s *Server) handleRunScenario(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	result, err := s.engine.RunScenario(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrScenarioNotFound) {
			writeError(w, http.StatusNotFound, "Scenario not found: "+slug)
			return
		}
		s.logger.Error("scenario run failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.recordScenarioRun(result.Passed)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUploadBPMN(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, s.engine.UploadBPMN, "BPMN", "process.bpmn")
}

func (s *Server) handleUploadDMN(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, s.engine.UploadDMN, "DMN", "decision.dmn")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, store func(context.Context, string, []byte) error, label, defaultName string) {
	filename, content, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}
	if filename == "" {
		filename = defaultName
	}

	if err := store(r.Context(), filename, content); err != nil {
		writeError(w, http.StatusBadRequest, "failed to upload "+label+" file: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  label + " file uploaded successfully",
		"filename": filename,
		"size":     len(content),
	})
}

// readUpload accepts either a multipart form (first part with a filename
// wins) or a raw document body. The returned filename is empty when the
// client supplied none.
func readUpload(r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		content, err := io.ReadAll(r.Body)
		if err != nil {
			return "", nil, err
		}
		return "", content, nil
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return "", nil, err
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, err
		}
		if part.FileName() == "" {
			continue
		}
		content, err := io.ReadAll(part)
		if err != nil {
			return "", nil, err
		}
		return part.FileName(), content, nil
	}
	return "", nil, errors.New("multipart form contains no file")
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	files, err := s.engine.Files(r.Context())
	if err != nil {
		s.logger.Error("listing definitions failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	bpmnFiles := files["bpmn"]
	dmnFiles := files["dmn"]
	writeJSON(w, http.StatusOK, map[string]any{
		"bpmnFiles": bpmnFiles,
		"dmnFiles":  dmnFiles,
		"hasBpmn":   len(bpmnFiles) > 0,
		"hasDmn":    len(dmnFiles) > 0,
	})
}

func (s *Server) handleInputs(w http.ResponseWriter, r *http.Request) {
	fields, err := s.engine.InputFields(r.Context())
	if err != nil {
		s.logger.Error("input analysis failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	report := s.engine.Validate(r.Context())
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
