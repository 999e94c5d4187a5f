// Package serve exposes the analysis core over HTTP.
package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/analytics"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
	"github.com/dtnitsch/wordcalc/pkg/grammar"
	"github.com/dtnitsch/wordcalc/pkg/transform"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 10 << 20

type ctxKey int

const requestIDKey ctxKey = iota

// Checker is the grammar service used by /v1/grammar/check.
type Checker interface {
	Check(ctx context.Context, req models.CheckRequest) (*models.CheckResponse, error)
}

// Server handles the HTTP API. History is optional.
type Server struct {
	analyzer *analytics.Analyzer
	grammar  Checker
	history  *dbpkg.DB
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a Server. history may be nil to disable recording.
func NewServer(analyzer *analytics.Analyzer, checker Checker, history *dbpkg.DB, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		analyzer: analyzer,
		grammar:  checker,
		history:  history,
		metrics:  NewMetrics(),
		logger:   logger.With("component", "serve"),
	}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/stats", s.route("stats", s.handleStats))
	mux.Handle("POST /v1/keywords", s.route("keywords", s.handleKeywords))
	mux.Handle("POST /v1/transform", s.route("transform", s.handleTransform))
	mux.Handle("POST /v1/replace", s.route("replace", s.handleReplace))
	mux.Handle("POST /v1/grammar/check", s.route("grammar_check", s.handleGrammarCheck))
	mux.HandleFunc("GET /v1/live", s.handleLive)
	mux.Handle("GET /metrics", s.metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// handlerFunc returns the response body or an error to render.
type handlerFunc func(r *http.Request) (interface{}, error)

func (s *Server) route(name string, h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		status := http.StatusOK
		body, err := h(r)
		if err != nil {
			info := common.ErrorInfo(err)
			status = common.HTTPStatus(info)
			body = models.ErrorResponse{Error: info}
			s.logger.Warn("Request failed", "request_id", requestID, "route", name, "status", status, "error", err)
		}
		elapsed := time.Since(start)
		s.metrics.observe(name, status, elapsed)
		writeJSON(w, status, body)
		s.logger.Debug("Request served", "request_id", requestID, "route", name, "status", status, "duration_ms", elapsed.Milliseconds())
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) handleStats(r *http.Request) (interface{}, error) {
	var req models.StatsRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	report := s.analyzer.Analyze(req)
	s.metrics.wordsAnalyzed.Add(float64(report.Stats.Counts.Words))

	if s.history != nil {
		if _, err := s.history.InsertReport(report, requestID(r.Context()), len(req.Text)); err != nil {
			s.logger.Warn("Failed to record report", "request_id", requestID(r.Context()), "error", err)
		}
	}
	return report, nil
}

func (s *Server) handleKeywords(r *http.Request) (interface{}, error) {
	var req models.StatsRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	report := s.analyzer.Analyze(req)
	keywords := report.Keywords
	if keywords == nil {
		keywords = []models.KeywordEntry{}
	}
	return models.KeywordsResponse{TotalWords: report.Stats.Counts.Words, Keywords: keywords}, nil
}

func (s *Server) handleTransform(r *http.Request) (interface{}, error) {
	var req models.TransformRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	out, err := transform.ApplyRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return models.TransformResponse{Text: out}, nil
}

func (s *Server) handleReplace(r *http.Request) (interface{}, error) {
	var req models.ReplaceRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	out, err := transform.ReplaceRequest(req)
	if err != nil {
		return nil, err
	}
	return models.TransformResponse{Text: out}, nil
}

func (s *Server) handleGrammarCheck(r *http.Request) (interface{}, error) {
	var req models.CheckRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	resp, err := s.grammar.Check(r.Context(), req)
	if errors.Is(err, grammar.ErrServiceUnavailable) {
		s.metrics.grammarErrors.Inc()
	}
	return resp, err
}
