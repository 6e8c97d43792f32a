// Package corpus provides the external question corpora searched behind
// the local knowledge base: ScienceQA, MMLU, and SciQ.
//
// Records live in a local SQLite database bootstrapped from JSONL exports.
// Two drivers are supported via build tags, mirroring the storage layout:
// mattn/go-sqlite3 for cgo builds and modernc.org/sqlite for pure Go.
//
// Each corpus is searched through an Adapter that scans a bounded, stable
// subset of records (a fixed cap, or the subject-hint partition for MMLU),
// re-embedding record questions per query. That is a deliberate freshness
// over speed trade-off for the large external corpora; only the curated
// knowledge base gets precomputed embeddings.
//
// Corpora are best effort. Any failure loading or scanning a corpus is
// reported to the caller as an error to log and fold into "no result",
// never a reason to abort the retrieval cascade.
package corpus
