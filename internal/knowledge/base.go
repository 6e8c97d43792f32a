package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/stemtutor/internal/classify"
	"github.com/dshills/stemtutor/internal/embedder"
	"github.com/dshills/stemtutor/pkg/types"
)

// ShortCircuitConfidence is the fixed confidence assigned when a numbered
// Newton law is detected lexically, bypassing similarity search.
const ShortCircuitConfidence = 0.95

// warmupWorkers bounds concurrent embedding calls during Warmup.
const warmupWorkers = 4

// Base is the in-memory knowledge base with precomputed entry embeddings.
// It is read-only after Warmup and safe for concurrent queries.
type Base struct {
	entries    []Entry
	embeddings [][]float32
	emb        embedder.Embedder // nil means semantic search is disabled
	ready      atomic.Bool
}

// New creates a knowledge base over the given catalog. A nil embedder puts
// the base in a permanent degraded mode where only the lexical Newton
// short-circuit can answer.
func New(catalog []Entry, emb embedder.Embedder) *Base {
	return &Base{
		entries:    catalog,
		embeddings: make([][]float32, len(catalog)),
		emb:        emb,
	}
}

// NewDefault creates a knowledge base over the built-in catalog.
func NewDefault(emb embedder.Embedder) *Base {
	return New(DefaultCatalog(), emb)
}

// Warmup precomputes an embedding for every entry. It must complete before
// semantic queries are served; until then Search returns types.ErrNotReady.
// With a nil embedder Warmup is a no-op.
func (b *Base) Warmup(ctx context.Context) error {
	if b.emb == nil {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, warmupWorkers)
	var mu sync.Mutex

	for i := range b.entries {
		i := i
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			emb, err := b.emb.GenerateEmbedding(gctx, embedder.EmbeddingRequest{
				Text: b.entries[i].EmbedText(),
			})
			if err != nil {
				return fmt.Errorf("embedding entry %s/%s: %w",
					b.entries[i].Subject, b.entries[i].TopicID, err)
			}

			mu.Lock()
			b.embeddings[i] = emb.Vector
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	b.ready.Store(true)
	return nil
}

// Ready reports whether entry embeddings have been precomputed.
func (b *Base) Ready() bool {
	return b.ready.Load()
}

// SemanticEnabled reports whether an embedding provider is available.
func (b *Base) SemanticEnabled() bool {
	return b.emb != nil
}

// Get returns the entry for (subject, topicID).
func (b *Base) Get(subject types.Subject, topicID string) (Entry, bool) {
	for _, e := range b.entries {
		if e.Subject == subject && e.TopicID == topicID {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns the catalog in canonical order.
func (b *Base) Entries() []Entry {
	return b.entries
}

// Search finds the best knowledge-base candidate for the question.
//
// The Newton law short-circuit runs first and needs no embeddings: a
// detected law number plus the token "newton" maps directly to the named
// law entry at ShortCircuitConfidence.
//
// The generic path embeds the question and scans every precomputed entry
// embedding, keeping the single best score (strict improvement, so the
// first entry in catalog order wins ties). The returned candidate carries
// the raw similarity as its confidence even when below the acceptance
// threshold; thresholding is the orchestrator's decision. A nil result with
// nil error means no candidate at all.
func (b *Base) Search(ctx context.Context, question string) (*types.ScoredAnswer, error) {
	if answer := b.lawShortCircuit(question); answer != nil {
		return answer, nil
	}

	if b.emb == nil {
		// Semantic search disabled: no candidate, not an error.
		return nil, nil
	}

	if !b.ready.Load() {
		return nil, types.ErrNotReady
	}

	emb, err := b.emb.GenerateEmbedding(ctx, embedder.EmbeddingRequest{Text: question})
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	bestIdx := -1
	bestScore := 0.0
	for i := range b.entries {
		score := embedder.Similarity(emb.Vector, b.embeddings[i])
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return nil, nil
	}

	entry := b.entries[bestIdx]
	return &types.ScoredAnswer{
		AnswerText: entry.Content,
		Source:     types.SourceLocalKB,
		Confidence: bestScore,
		Subject:    entry.Subject,
		TopicID:    entry.TopicID,
	}, nil
}

// lawShortCircuit returns the named Newton law entry when the question
// references one by number, else nil.
func (b *Base) lawShortCircuit(question string) *types.ScoredAnswer {
	if !strings.Contains(strings.ToLower(question), "newton") {
		return nil
	}

	num, ok := classify.LawNumber(question)
	if !ok {
		return nil
	}

	topicID, ok := lawTopics[num]
	if !ok {
		return nil
	}

	entry, ok := b.Get(types.SubjectPhysics, topicID)
	if !ok {
		return nil
	}

	return &types.ScoredAnswer{
		AnswerText: entry.Content,
		Source:     types.SourceLocalKB,
		Confidence: ShortCircuitConfidence,
		Subject:    entry.Subject,
		TopicID:    entry.TopicID,
	}
}
