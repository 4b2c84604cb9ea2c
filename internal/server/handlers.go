package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/extraction"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/pipeline"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/session"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// maxUploadSize bounds the in-memory part of multipart parsing.
const maxUploadSize = 10 << 20

// handleIndex returns the service banner with the endpoint map.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": "resume-gap-analyzer",
		"status":  "running",
		"endpoints": map[string]string{
			"GET /api/health":                    "health probe",
			"POST /api/extract-text":             "upload a resume, get extracted text and links",
			"POST /api/analyze":                  "run the full gap analysis and rewrite for a session",
			"POST /api/analyze-resume":           "run the assessment phase only",
			"POST /api/generate-improved-resume": "run the improvement phase for an analyzed session",
		},
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtractText accepts a multipart resume upload, extracts its text and
// links, and opens a session holding the document.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided", "")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected", "")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload", err.Error())
		return
	}

	doc, err := extraction.Extract(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to extract text", err.Error())
		return
	}

	sess := s.sessions.Create(doc)
	slog.InfoContext(r.Context(), "resume extracted",
		"session_id", sess.ID, "filename", header.Filename, "chars", len(doc.Text), "links", len(doc.Links))

	s.jsonResponse(w, http.StatusOK, types.ExtractResponse{
		SessionID: sess.ID.String(),
		Text:      doc.Text,
		Links:     doc.Links,
	})
}

// handleAnalyze runs the full pipeline for a previously extracted session and
// returns the assembled report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	report, err := pipeline.Run(r.Context(), s.pipelineOptions(sess.Document))
	if err != nil {
		slog.ErrorContext(r.Context(), "analysis failed", "session_id", sess.ID, "error", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to analyze resume", err.Error())
		return
	}

	if err := s.sessions.AttachReport(sess.ID, report); err != nil {
		slog.WarnContext(r.Context(), "session expired before report could be stored", "session_id", sess.ID)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeResume runs only the assessment phase and stores the gap
// analysis on the session for a later improvement call.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	gap, err := pipeline.Analyze(r.Context(), s.pipelineOptions(sess.Document))
	if err != nil {
		slog.ErrorContext(r.Context(), "assessment failed", "session_id", sess.ID, "error", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to analyze resume", err.Error())
		return
	}

	if err := s.sessions.AttachAnalysis(sess.ID, gap); err != nil {
		slog.WarnContext(r.Context(), "session expired before analysis could be stored", "session_id", sess.ID)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id":    sess.ID.String(),
		"full_analysis": gap,
	})
}

// handleGenerateImprovedResume runs the improvement phase against a stored
// gap analysis.
func (s *Server) handleGenerateImprovedResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	if sess.Analysis == nil {
		err := &MissingArtifactError{SessionID: sess.ID, Artifact: "gap analysis"}
		s.errorResponse(w, HTTPStatus(err), "Analysis required before improvement", err.Error())
		return
	}

	report, err := pipeline.Improve(r.Context(), s.pipelineOptions(sess.Document), sess.Analysis)
	if err != nil {
		slog.ErrorContext(r.Context(), "improvement failed", "session_id", sess.ID, "error", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to generate improved resume", err.Error())
		return
	}

	if err := s.sessions.AttachReport(sess.ID, report); err != nil {
		slog.WarnContext(r.Context(), "session expired before report could be stored", "session_id", sess.ID)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// sessionFromRequest decodes the session reference shared by the analyze
// endpoints and resolves it against the store. On failure it writes the
// error response and reports false.
func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := decodeSessionID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Invalid request", err.Error())
		return nil, false
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Session not found", err.Error())
		return nil, false
	}
	return sess, true
}

func decodeSessionID(r *http.Request) (uuid.UUID, error) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return uuid.Nil, &RequestError{Message: "invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return uuid.Nil, &RequestError{Message: "session_id is required and must be a UUID"}
	}

	id, err := uuid.Parse(req.SessionID)
	if err != nil {
		return uuid.Nil, &RequestError{Message: "invalid session_id format"}
	}
	return id, nil
}

// pipelineOptions builds the per-request pipeline wiring from the server's
// long-lived dependencies.
func (s *Server) pipelineOptions(doc *types.ResumeDocument) pipeline.Options {
	return pipeline.Options{
		Client:        s.client,
		Market:        s.market,
		Curriculum:    s.curriculum,
		Document:      doc,
		ReferenceDate: s.referenceDate,
	}
}
