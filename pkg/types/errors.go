package types

import "errors"

// Domain errors.
var (
	// ErrNotReady is returned when a question arrives before the knowledge
	// base has finished precomputing embeddings. It is the only error that
	// crosses the core boundary as a hard failure.
	ErrNotReady = errors.New("knowledge base embeddings not ready")

	// Validation errors.
	ErrEmptyAnswer       = errors.New("answer text cannot be empty")
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")
	ErrUnknownSubject    = errors.New("unknown subject")
)
