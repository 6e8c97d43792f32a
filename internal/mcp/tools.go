package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/stemtutor/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNotReady      = -32001 // Knowledge-base embeddings still warming up
)

// handleAskQuestion handles the ask_question tool invocation
func (s *Server) handleAskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	question, ok := args["question"].(string)
	if !ok || question == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "question parameter is required", map[string]interface{}{
			"param":  "question",
			"reason": "missing or empty",
		})
	}

	answer, err := s.tutor.Answer(ctx, question)
	if err != nil {
		if errors.Is(err, types.ErrNotReady) {
			return nil, newMCPError(ErrorCodeNotReady, "knowledge base embeddings are still being computed", nil)
		}
		return nil, newMCPError(ErrorCodeInternalError, "failed to answer question", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"response":   answer.AnswerText,
		"confidence": answer.Confidence,
		"tier":       string(answer.Tier),
	}
	if answer.Source != "" {
		response["source"] = string(answer.Source)
	}
	if answer.Subject != "" {
		response["subject"] = answer.Subject.String()
	}
	if answer.TopicID != "" {
		response["topic_id"] = answer.TopicID
	}
	if answer.MatchedQuestion != "" {
		response["matched_question"] = answer.MatchedQuestion
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListTopics handles the list_topics tool invocation
func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	var filter types.Subject
	if raw, ok := args["subject"].(string); ok && raw != "" {
		filter = types.Subject(raw)
		if !filter.Valid() {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid subject", map[string]interface{}{
				"param":   "subject",
				"value":   raw,
				"allowed": []string{"physics", "chemistry", "biology", "math"},
			})
		}
	}

	topics := make([]map[string]interface{}, 0)
	for _, e := range s.kb.Entries() {
		if filter != "" && e.Subject != filter {
			continue
		}
		topics = append(topics, map[string]interface{}{
			"subject":  e.Subject.String(),
			"topic_id": e.TopicID,
			"keywords": e.Keywords,
		})
	}

	response := map[string]interface{}{
		"count":  len(topics),
		"topics": topics,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"ready":            s.tutor.Ready(),
		"semantic_enabled": s.kb.SemanticEnabled(),
		"topics_count":     len(s.kb.Entries()),
		"history_length":   len(s.tutor.History()),
	}

	if subject, ok := s.tutor.LastSubject(); ok {
		response["last_subject"] = subject.String()
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
