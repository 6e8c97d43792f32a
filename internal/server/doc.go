// Package server exposes the tutor over HTTP.
//
// The API is intentionally small: POST /api/chat submits a question and
// returns the answer with its confidence, GET /api/history returns the
// recent conversation, GET /api/topics lists the curated knowledge-base
// topics, and /healthz and /readyz report liveness and embedding warmup
// state.
package server
