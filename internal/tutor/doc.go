// Package tutor implements the retrieval cascade that answers a student's
// question.
//
// Each question runs the same fixed sequence: validate, record in the
// bounded conversation history, classify the subject, then try the local
// knowledge base followed by each external corpus in priority order
// (ScienceQA, MMLU, SciQ). The first strategy whose candidate clears the
// similarity threshold answers immediately; the local knowledge base is
// authoritative and wins over any corpus score. When nothing clears the
// bar, the best sub-threshold candidate is returned as a "related" answer
// with discounted confidence, and when there is no candidate at all the
// response carries topic suggestions.
//
// Strategies are best effort: a failing or slow strategy is logged and
// folded into "no result" so the cascade always continues. The only hard
// failure a Tutor raises is types.ErrNotReady, for questions that arrive
// before knowledge-base embeddings are precomputed.
package tutor
