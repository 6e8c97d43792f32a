package tutor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/stemtutor/internal/classify"
	"github.com/dshills/stemtutor/internal/corpus"
	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/pkg/types"
)

// Retrieval constants. The threshold and discount are carried over from the
// source system unchanged; do not re-tune them independently.
const (
	// SimilarityThreshold is the acceptance bar. Comparison is strict:
	// a candidate scoring exactly the threshold is rejected.
	SimilarityThreshold = 0.45

	// RelatedDiscount multiplies the confidence of a sub-threshold
	// candidate returned as a "related" answer.
	RelatedDiscount = 0.7

	// MinQuestionLen is the minimum trimmed question length in runes.
	MinQuestionLen = 3

	// DefaultStrategyTimeout bounds each individual strategy so a slow
	// corpus scan cannot stall the whole cascade.
	DefaultStrategyTimeout = 30 * time.Second
)

// Tutor runs the retrieval cascade for one conversation session. Multiple
// goroutines may call Answer concurrently; the conversation history and
// last-detected subject are the only mutable state and are lock-protected.
type Tutor struct {
	kb              *knowledge.Base
	adapters        []corpus.Adapter
	history         *History
	strategyTimeout time.Duration
	logger          *zap.Logger

	mu          sync.Mutex
	lastSubject types.Subject
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithStrategyTimeout overrides the per-strategy timeout.
func WithStrategyTimeout(d time.Duration) Option {
	return func(t *Tutor) {
		if d > 0 {
			t.strategyTimeout = d
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tutor) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Tutor over a knowledge base and corpus adapters. The
// adapter slice order is the cascade priority order.
func New(kb *knowledge.Base, adapters []corpus.Adapter, opts ...Option) *Tutor {
	t := &Tutor{
		kb:              kb,
		adapters:        adapters,
		history:         NewHistory(),
		strategyTimeout: DefaultStrategyTimeout,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// History returns a snapshot of the conversation history, oldest first.
func (t *Tutor) History() []string {
	return t.history.Items()
}

// LastSubject returns the most recently detected subject, if any.
func (t *Tutor) LastSubject() (types.Subject, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSubject, t.lastSubject != ""
}

// Ready reports whether the tutor can serve semantic queries.
func (t *Tutor) Ready() bool {
	return !t.kb.SemanticEnabled() || t.kb.Ready()
}

// Answer runs the full cascade for one question.
//
// Invalid input and no-match both resolve to normal responses with
// confidence 0; the only error returned is types.ErrNotReady, raised when
// knowledge-base embeddings are still being precomputed.
func (t *Tutor) Answer(ctx context.Context, question string) (*types.Response, error) {
	// Validate before touching any state: invalid questions are not
	// recorded in history and invoke no strategy.
	if utf8.RuneCountInString(strings.TrimSpace(question)) < MinQuestionLen {
		return assembleInvalid(), nil
	}

	if t.kb.SemanticEnabled() && !t.kb.Ready() {
		return nil, types.ErrNotReady
	}

	t.history.Add(question)

	// The subject hint carries over from earlier questions in the session
	// when the current one is ambiguous.
	subject, detected := classify.Subject(question)
	t.mu.Lock()
	if detected {
		t.lastSubject = subject
	}
	hint := t.lastSubject
	t.mu.Unlock()
	if detected {
		t.logger.Debug("subject detected", zap.String("subject", subject.String()))
	}

	// candidates collects every sub-threshold result in priority order for
	// the related-answer fallback.
	var candidates []*types.ScoredAnswer

	// Local knowledge base first. Its matches are curated and
	// authoritative: an accepted KB answer returns immediately no matter
	// what any corpus might have scored.
	if answer := t.tryKB(ctx, question); answer != nil {
		if answer.Confidence > SimilarityThreshold {
			return assembleExact(answer), nil
		}
		candidates = append(candidates, answer)
	}

	// External corpora in fixed priority order.
	for _, adapter := range t.adapters {
		answer := t.tryAdapter(ctx, adapter, question, hint)
		if answer == nil {
			continue
		}
		if answer.Confidence > SimilarityThreshold {
			return assembleExact(answer), nil
		}
		candidates = append(candidates, answer)
	}

	// Nothing cleared the bar. Return the best sub-threshold candidate as
	// a related answer; ties keep the earlier (higher-priority) strategy.
	if best := bestCandidate(candidates); best != nil {
		return assembleRelated(best), nil
	}

	return assembleNoMatch(hint), nil
}

// tryKB runs the knowledge-base strategy. Failures other than ErrNotReady
// are logged and folded into no result.
func (t *Tutor) tryKB(ctx context.Context, question string) *types.ScoredAnswer {
	sctx, cancel := context.WithTimeout(ctx, t.strategyTimeout)
	defer cancel()

	answer, err := t.kb.Search(sctx, question)
	if err != nil {
		if !errors.Is(err, types.ErrNotReady) {
			t.logger.Warn("knowledge base search failed", zap.Error(err))
		}
		return nil
	}
	return answer
}

// tryAdapter runs one corpus strategy. Any failure, including timeout, is
// logged and folded into no result so the cascade continues.
func (t *Tutor) tryAdapter(ctx context.Context, adapter corpus.Adapter, question string, hint types.Subject) *types.ScoredAnswer {
	sctx, cancel := context.WithTimeout(ctx, t.strategyTimeout)
	defer cancel()

	answer, err := adapter.Search(sctx, question, hint)
	if err != nil {
		t.logger.Warn("corpus search failed",
			zap.String("corpus", adapter.Name()),
			zap.Error(err))
		return nil
	}
	return answer
}

// bestCandidate picks the highest-confidence candidate. The slice is in
// strategy priority order and the comparison is strict, so ties go to the
// higher-priority strategy.
func bestCandidate(candidates []*types.ScoredAnswer) *types.ScoredAnswer {
	var best *types.ScoredAnswer
	for _, c := range candidates {
		if c.Confidence <= 0 {
			continue
		}
		if best == nil || c.Confidence > best.Confidence {
			best = c
		}
	}
	return best
}
