package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/stemtutor/internal/embedder"
	"github.com/dshills/stemtutor/pkg/types"
)

// Scan caps per corpus. Bounding the working subset keeps per-query latency
// predictable since record questions are re-embedded on every scan.
const (
	ScienceQAScanCap = 3000
	SciQScanCap      = 2000
)

// Adapter searches one external corpus for the best-matching record.
type Adapter interface {
	// Name returns the corpus name.
	Name() string

	// Source returns the answer source label for this corpus.
	Source() types.AnswerSource

	// Search returns the best candidate for the question, carrying the raw
	// similarity as its confidence even below the acceptance threshold.
	// (nil, nil) means no candidate; errors are best-effort failures the
	// caller logs and folds into "no result".
	Search(ctx context.Context, question string, hint types.Subject) (*types.ScoredAnswer, error)
}

// scanner is the shared scan engine behind every adapter: embed the
// question once, walk a bounded record subset, keep the single best
// similarity. Strict improvement only, so earlier records win ties.
type scanner struct {
	store *Store
	emb   embedder.Embedder
}

func (s scanner) bestMatch(ctx context.Context, corpus, partition string, limit int, question string) (Record, float64, error) {
	if s.emb == nil {
		return Record{}, 0, nil // semantic search disabled
	}

	qEmb, err := s.emb.GenerateEmbedding(ctx, embedder.EmbeddingRequest{Text: question})
	if err != nil {
		return Record{}, 0, fmt.Errorf("embedding question: %w", err)
	}

	var best Record
	bestScore := 0.0

	err = s.store.Scan(ctx, corpus, partition, limit, func(rec Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		recEmb, err := s.emb.GenerateEmbedding(ctx, embedder.EmbeddingRequest{Text: rec.Question})
		if err != nil {
			return fmt.Errorf("embedding record %d: %w", rec.ID, err)
		}

		if score := embedder.Similarity(qEmb.Vector, recEmb.Vector); score > bestScore {
			bestScore = score
			best = rec
		}
		return nil
	})
	if err != nil {
		return Record{}, 0, err
	}

	return best, bestScore, nil
}

// ScienceQAAdapter searches the ScienceQA corpus. Answers combine the
// correct choice with the lecture and solution text when present.
type ScienceQAAdapter struct {
	scan scanner
}

// NewScienceQAAdapter creates a ScienceQA adapter over the store.
func NewScienceQAAdapter(store *Store, emb embedder.Embedder) *ScienceQAAdapter {
	return &ScienceQAAdapter{scan: scanner{store: store, emb: emb}}
}

func (a *ScienceQAAdapter) Name() string { return CorpusScienceQA }

func (a *ScienceQAAdapter) Source() types.AnswerSource { return types.SourceScienceQA }

func (a *ScienceQAAdapter) Search(ctx context.Context, question string, hint types.Subject) (*types.ScoredAnswer, error) {
	rec, score, err := a.scan.bestMatch(ctx, CorpusScienceQA, "", ScienceQAScanCap, question)
	if err != nil {
		return nil, err
	}
	if score <= 0 {
		return nil, nil
	}

	var parts []string
	if choice := rec.AnswerChoice(); choice != "" {
		parts = append(parts, "Answer: "+choice)
	}
	if rec.Lecture != "" {
		parts = append(parts, "Explanation:\n"+rec.Lecture)
	}
	if rec.Solution != "" {
		parts = append(parts, "Solution:\n"+rec.Solution)
	}
	if len(parts) == 0 {
		return nil, nil // record has no answer payload
	}

	return &types.ScoredAnswer{
		AnswerText:      strings.Join(parts, "\n\n"),
		Source:          types.SourceScienceQA,
		Confidence:      score,
		MatchedQuestion: rec.Question,
		Subject:         hint,
	}, nil
}

// mmluPartitions maps a subject hint to the MMLU partition to scan.
var mmluPartitions = map[types.Subject]string{
	types.SubjectPhysics:   "high_school_physics",
	types.SubjectChemistry: "high_school_chemistry",
	types.SubjectBiology:   "high_school_biology",
	types.SubjectMath:      "high_school_mathematics",
}

// MMLUAdapter searches the MMLU high school corpus. The subject hint
// narrows the scan to one partition; without a hint all partitions are
// scanned. Answers replay the full question with lettered choices.
type MMLUAdapter struct {
	scan scanner
}

// NewMMLUAdapter creates an MMLU adapter over the store.
func NewMMLUAdapter(store *Store, emb embedder.Embedder) *MMLUAdapter {
	return &MMLUAdapter{scan: scanner{store: store, emb: emb}}
}

func (a *MMLUAdapter) Name() string { return CorpusMMLU }

func (a *MMLUAdapter) Source() types.AnswerSource { return types.SourceMMLU }

func (a *MMLUAdapter) Search(ctx context.Context, question string, hint types.Subject) (*types.ScoredAnswer, error) {
	partition := mmluPartitions[hint] // "" scans every partition

	rec, score, err := a.scan.bestMatch(ctx, CorpusMMLU, partition, 0, question)
	if err != nil {
		return nil, err
	}
	if score <= 0 {
		return nil, nil
	}

	choice := rec.AnswerChoice()
	if choice == "" {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nChoices:\n", rec.Question)
	for i, c := range rec.Choices {
		fmt.Fprintf(&b, "  %c. %s\n", 'A'+i, c)
	}
	fmt.Fprintf(&b, "\nAnswer: %c. %s", 'A'+rec.CorrectIdx, choice)

	return &types.ScoredAnswer{
		AnswerText:      b.String(),
		Source:          types.SourceMMLU,
		Confidence:      score,
		MatchedQuestion: rec.Question,
		Subject:         hint,
	}, nil
}

// SciQAdapter searches the SciQ corpus, which carries direct free-text
// answers.
type SciQAdapter struct {
	scan scanner
}

// NewSciQAdapter creates a SciQ adapter over the store.
func NewSciQAdapter(store *Store, emb embedder.Embedder) *SciQAdapter {
	return &SciQAdapter{scan: scanner{store: store, emb: emb}}
}

func (a *SciQAdapter) Name() string { return CorpusSciQ }

func (a *SciQAdapter) Source() types.AnswerSource { return types.SourceSciQ }

func (a *SciQAdapter) Search(ctx context.Context, question string, hint types.Subject) (*types.ScoredAnswer, error) {
	rec, score, err := a.scan.bestMatch(ctx, CorpusSciQ, "", SciQScanCap, question)
	if err != nil {
		return nil, err
	}
	if score <= 0 || rec.Answer == "" {
		return nil, nil
	}

	return &types.ScoredAnswer{
		AnswerText:      rec.Answer,
		Source:          types.SourceSciQ,
		Confidence:      score,
		MatchedQuestion: rec.Question,
		Subject:         hint,
	}, nil
}
