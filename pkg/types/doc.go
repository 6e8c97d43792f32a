// Package types defines the shared domain types for the STEM tutor:
// subjects, scored answers, answer sources, and the sentinel errors that
// cross package boundaries.
//
// A ScoredAnswer is created fresh for every question and never persisted.
// Confidence values are always in [0, 1]; a raw cosine similarity for exact
// matches, or a discounted similarity for "related" fallback answers.
package types
