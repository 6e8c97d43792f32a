// Package knowledge holds the curated STEM knowledge base and its semantic
// search.
//
// The catalog is a fixed, versioned set of (subject, topicID) entries with
// keywords and answer content. Entry embeddings are precomputed once during
// Warmup; queries then run a linear cosine-similarity scan over the
// precomputed vectors, which keeps repeated questions cheap. Searching
// before Warmup completes returns types.ErrNotReady.
//
// Questions that name a numbered Newton law take a lexical short-circuit
// past similarity search entirely: the three law entries share so much
// phrasing that embeddings confuse them, and the ordinal in the question is
// the more reliable signal.
package knowledge
