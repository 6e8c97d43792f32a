// Package mcp implements the Model Context Protocol (MCP) server for the
// STEM tutor.
//
// The server exposes three tools to AI assistants:
//   - ask_question: Answer a STEM question with a confidence score
//   - list_topics: List curated knowledge-base topics
//   - get_status: Report readiness and conversation state
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Tool: ask_question
//
//	Request:
//	{
//	  "name": "ask_question",
//	  "arguments": {
//	    "question": "What is Newton's second law?"
//	  }
//	}
//
//	Response:
//	{
//	  "response": "Newton's second law states that...",
//	  "confidence": 0.95,
//	  "tier": "high",
//	  "source": "Local Knowledge Base",
//	  "subject": "physics",
//	  "topic_id": "newtons_second_law"
//	}
//
// # Error Handling
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error
//   - -32001: Knowledge-base embeddings still warming up
//
// # Logging
//
// The MCP server logs to stderr (stdout is reserved for MCP protocol).
package mcp
