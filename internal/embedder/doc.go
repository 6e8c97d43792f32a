// Package embedder generates vector embeddings for questions and knowledge
// entries using pluggable providers.
//
// Providers are selected from the environment: an explicit
// STEMTUTOR_EMBEDDING_PROVIDER wins, then OPENAI_API_KEY enables the OpenAI
// provider, otherwise the Ollama provider is used against a local server.
// The local provider is a deterministic stub for tests and offline runs.
//
// Embeddings are cached in-memory by content hash with LRU eviction, and
// transient provider failures are retried with exponential backoff. The
// Similarity helper computes cosine similarity between two vectors; it is
// the single scoring operator the retrieval cascade uses.
//
// When no provider can be constructed the tutor runs in a degraded mode in
// which semantic search is disabled. That decision belongs to the caller;
// this package only reports the construction error.
package embedder
