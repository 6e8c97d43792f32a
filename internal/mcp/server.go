package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/internal/tutor"
)

const (
	// ServerName is the MCP server name
	ServerName = "stemtutor-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp   *server.MCPServer
	tutor *tutor.Tutor
	kb    *knowledge.Base
}

// NewServer creates a new MCP server instance over an assembled tutor.
func NewServer(t *tutor.Tutor, kb *knowledge.Base) (*Server, error) {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:   mcpServer,
		tutor: t,
		kb:    kb,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	_ = ctx
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(askQuestionTool(), s.handleAskQuestion)
	s.mcp.AddTool(listTopicsTool(), s.handleListTopics)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)

	return nil
}
