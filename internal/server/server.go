// Package server provides the HTTP API of the résumé scoring service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/server/middleware"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "resume-scorer"

// maxBodyBytes caps request bodies; rank batches carry up to 200 résumés.
const maxBodyBytes = 20 << 20

// Store persists analyses and rank batches.
type Store interface {
	SaveAnalysis(ctx context.Context, resumeID string, result any) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*db.StoredAnalysis, error)
	LatestAnalysisForResume(ctx context.Context, resumeID string) (*db.StoredAnalysis, error)
	SaveRankBatch(ctx context.Context, id uuid.UUID, jdHash string, results any) error
	GetRankBatch(ctx context.Context, id uuid.UUID) (*db.RankBatch, error)
}

// Options wires the server's collaborators.
type Options struct {
	Addr            string
	Analyzer        *analysis.Analyzer
	Store           Store // nil disables persistence
	Documents       fetch.DocumentOptions
	CallbackBaseURL string
	CallbackTimeout time.Duration
	JWT             *config.JWTConfig // nil disables auth
	RateLimit       *ratelimit.Config
	Logger          *zap.Logger
	Version         string
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *analysis.Analyzer
	store       Store
	documents   fetch.DocumentOptions
	callbackURL string
	deliverer   *Deliverer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	logger      *zap.Logger
	version     string

	// background analyses outlive their request but not the server
	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

// New creates a new server instance
func New(opts Options) *Server {
	log := logger.OrNop(opts.Logger)
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = analysis.New(nil, nil, log)
	}

	s := &Server{
		analyzer:    analyzer,
		store:       opts.Store,
		documents:   opts.Documents,
		callbackURL: opts.CallbackBaseURL,
		deliverer:   NewDeliverer(opts.CallbackTimeout, log),
		rateLimiter: ratelimit.NewLimiter(opts.RateLimit),
		logger:      log,
		version:     opts.Version,
	}
	if opts.JWT != nil {
		s.jwtService = NewJWTService(opts.JWT)
	}
	s.bgCtx, s.bgCancel = context.WithCancel(context.Background())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /analyze", s.protect(s.handleAnalyze))
	mux.Handle("POST /analyze/sync", s.protect(s.handleAnalyzeSync))
	mux.Handle("POST /match", s.protect(s.handleMatch))
	mux.Handle("POST /rank", s.protect(s.handleRank))
	mux.Handle("GET /analyses/{id}", s.protect(s.handleGetAnalysis))
	mux.Handle("GET /resumes/{resume_id}/analysis", s.protect(s.handleLatestAnalysis))
	mux.Handle("GET /batches/{id}", s.protect(s.handleGetRankBatch))

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully and waits
// for background analyses to finish.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close waits for background analyses and stops the rate limiter.
func (s *Server) Close() {
	s.bg.Wait()
	s.bgCancel()
	s.rateLimiter.Stop()
}

// protect requires a service token when auth is configured.
func (s *Server) protect(h http.HandlerFunc) http.Handler {
	if s.jwtService == nil {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by IP address.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}
	s.logger.Warn("rate limit exceeded", zap.Int("limit", info.Limit))
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps err to a status and writes it.
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return &ErrBadRequest{Message: "invalid JSON body", Cause: err}
	}
	return nil
}
