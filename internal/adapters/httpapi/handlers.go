package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
)

type scanRequest struct {
	SessionID string `json:"session_id"`
	Body      string `json:"body"`
	Sender    string `json:"sender"`
}

type feedbackRequest struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionResponse struct {
	Stats   core.SessionStats `json:"stats"`
	History []core.ScanRecord `json:"history"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	// A caller without its own session key shares one keyed by client IP.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = r.RemoteAddr
	}

	report, err := s.service.Scan(r.Context(), sessionID, core.Email{
		Body:   req.Body,
		Sender: req.Sender,
	})
	switch {
	case errors.Is(err, core.ErrEmptyBody):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "please enter text to analyze"})
	case errors.Is(err, core.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded: please wait between scans"})
	case err != nil:
		s.logger.Error("Scan failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "scan failed"})
	default:
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	stats, history := s.sessions.Snapshot(sessionID)
	writeJSON(w, http.StatusOK, sessionResponse{Stats: stats, History: history})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	err := s.service.RecordFeedback(r.Context(), req.Text, req.Label)
	switch {
	case errors.Is(err, core.ErrInvalidLabel):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		s.logger.Error("Failed to record feedback", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to record feedback"})
	default:
		w.WriteHeader(http.StatusAccepted)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		ModelInfo
	}{Status: "ok", ModelInfo: s.modelInfo})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
