package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dshills/stemtutor/pkg/types"
)

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TopicInfo describes one curated knowledge-base entry.
type TopicInfo struct {
	Subject string `json:"subject"`
	TopicID string `json:"topicId"`
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, err, message string) {
	respondJSON(w, statusCode, ErrorResponse{Error: err, Message: message})
}

// handleChat answers one question. Invalid and unanswerable questions are
// normal 200 responses with confidence 0; only warmup maps to an error
// status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	resp, err := s.tutor.Answer(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, types.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, "warming_up", "knowledge base embeddings are still being computed")
			return
		}
		s.logger.Error("answer failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal", "failed to answer question")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleHistory returns the recent conversation, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{
		"history": s.tutor.History(),
	})
}

// handleTopics lists the curated topics in catalog order.
func (s *Server) handleTopics(w http.ResponseWriter, _ *http.Request) {
	entries := s.kb.Entries()
	topics := make([]TopicInfo, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, TopicInfo{
			Subject: e.Subject.String(),
			TopicID: e.TopicID,
		})
	}
	respondJSON(w, http.StatusOK, map[string][]TopicInfo{"topics": topics})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 until knowledge-base embeddings are available.
// A deployment without an embedding provider is degraded but ready.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.tutor.Ready() {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "warming_up"})
		return
	}
	status := "ok"
	if !s.kb.SemanticEnabled() {
		status = "degraded"
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": status})
}
