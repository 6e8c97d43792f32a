package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// askQuestionTool returns the tool definition for ask_question
func askQuestionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "ask_question",
		Description: "Ask a STEM question and get an answer with a confidence score",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The question to answer (at least 3 characters)",
				},
			},
			Required: []string{"question"},
		},
	}
}

// listTopicsTool returns the tool definition for list_topics
func listTopicsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_topics",
		Description: "List the curated knowledge-base topics, optionally filtered by subject",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Restrict the listing to one subject",
					"enum":        []string{"physics", "chemistry", "biology", "math"},
				},
			},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report tutor readiness, embedding availability, and conversation state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
