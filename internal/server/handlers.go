package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Analysis status values.
const (
	StatusProcessing = "processing"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
		"version": s.version,
	})
}

// handleAnalyze starts a background analysis whose result is posted to the
// callback URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = CallbackURL(s.callbackURL, req.ResumeID)
	}

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		defer s.recoverPipeline(s.bgCtx, req, callbackURL)
		s.runPipeline(s.bgCtx, req, callbackURL)
	}()

	s.jsonResponse(w, http.StatusAccepted, types.AnalyzeResponse{
		ResumeID: req.ResumeID,
		Status:   StatusProcessing,
		Message:  "Analysis pipeline started. Results will be posted to callback_url.",
	})
}

// runPipeline analyses one request and delivers the outcome. Failures are
// delivered as an error payload.
func (s *Server) runPipeline(ctx context.Context, req types.AnalyzeRequest, callbackURL string) {
	log := logger.WithResume(s.logger, req.ResumeID)

	result, err := s.analyzeRequest(ctx, req)
	if err == nil {
		if verr := schemas.ValidateAnalysisResult(result); verr != nil {
			log.Error("analysis result failed schema validation", zap.Error(verr))
			err = verr
		}
	}
	if err != nil {
		log.Error("analysis pipeline failed", zap.Error(err))
		if derr := s.deliverer.DeliverError(ctx, callbackURL, err); derr != nil {
			log.Error("failed to deliver error callback", zap.String("url", callbackURL), zap.Error(derr))
		}
		return
	}

	s.persistAnalysis(ctx, log, result)
	if derr := s.deliverer.Deliver(ctx, callbackURL, result); derr != nil {
		log.Error("failed to deliver analysis callback", zap.String("url", callbackURL), zap.Error(derr))
		return
	}
	log.Info("analysis delivered", zap.String("url", callbackURL))
}

// recoverPipeline reports a panic in a background analysis as a failed
// analysis. It must be deferred directly.
func (s *Server) recoverPipeline(ctx context.Context, req types.AnalyzeRequest, callbackURL string) {
	r := recover()
	if r == nil {
		return
	}
	log := logger.WithResume(s.logger, req.ResumeID)
	log.Error("analysis pipeline panicked", zap.Any("panic", r), zap.Stack("stack"))
	if derr := s.deliverer.DeliverError(ctx, callbackURL, errors.New("analysis failed: internal error")); derr != nil {
		log.Error("failed to deliver error callback", zap.String("url", callbackURL), zap.Error(derr))
	}
}

// analyzeRequest resolves the request's text, fetching and extracting the
// uploaded document when no text was supplied.
func (s *Server) analyzeRequest(ctx context.Context, req types.AnalyzeRequest) (*types.AnalysisResult, error) {
	text := req.Text
	if text == "" {
		if req.S3Key == "" {
			return nil, &analysis.InputError{Message: "no text or s3_key provided"}
		}
		data, err := fetch.Document(ctx, req.S3Key, s.documents)
		if err != nil {
			return nil, err
		}
		format := req.FileType
		if format == "" {
			format = ingestion.FormatPDF
		}
		text, err = ingestion.Extract(data, format)
		if errors.Is(err, ingestion.ErrNoText) {
			return nil, &analysis.InputError{Field: "s3_key", Message: "extracted text is empty, file may be scanned or image-based"}
		}
		if err != nil {
			return nil, err
		}
	}
	return s.analyzer.Analyze(ctx, analysis.Input{ResumeID: req.ResumeID, Text: text})
}

func (s *Server) persistAnalysis(ctx context.Context, log *zap.Logger, result *types.AnalysisResult) {
	if s.store == nil {
		return
	}
	id, err := s.store.SaveAnalysis(ctx, result.ResumeID, result)
	if err != nil {
		log.Error("failed to persist analysis", zap.Error(err))
		return
	}
	log.Debug("analysis persisted", zap.String("analysis_id", id.String()))
}

// handleAnalyzeSync analyses supplied text and returns the result directly.
func (s *Server) handleAnalyzeSync(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required for sync mode")
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), analysis.Input{ResumeID: req.ResumeID, Text: req.Text})
	if err != nil {
		s.failure(w, err)
		return
	}
	s.persistAnalysis(r.Context(), logger.WithResume(s.logger, req.ResumeID), result)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleMatch compares one résumé with one job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	report, err := s.analyzer.Match(r.Context(), analysis.MatchInput{
		ResumeText: req.ResumeText,
		JDText:     req.JDText,
		Skills:     req.Skills,
		Compliance: req.Compliance,
		Quality:    req.Quality,
	})
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleRank ranks a batch of candidates against one job description.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	results, err := s.analyzer.Rank(r.Context(), req.JDText, req.Candidates)
	if err != nil {
		s.failure(w, err)
		return
	}

	batchID := uuid.New()
	log := s.logger.With(zap.String(logger.FieldBatchID, batchID.String()))
	if s.store != nil {
		if err := s.store.SaveRankBatch(r.Context(), batchID, ingestion.Fingerprint(req.JDText), results); err != nil {
			log.Error("failed to persist rank batch", zap.Error(err))
		}
	}
	log.Info("batch ranked", zap.Int("candidates", len(results)))

	s.jsonResponse(w, http.StatusOK, types.RankResponse{BatchID: batchID.String(), Results: results})
}

// handleGetAnalysis returns a persisted analysis.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	stored, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// handleLatestAnalysis returns the most recent persisted analysis of a résumé.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	stored, err := s.store.LatestAnalysisForResume(r.Context(), r.PathValue("resume_id"))
	if err != nil {
		s.failure(w, err)
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

func (s *Server) handleGetRankBatch(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	batch, err := s.store.GetRankBatch(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if batch == nil {
		s.errorResponse(w, http.StatusNotFound, "batch not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, batch)
}
