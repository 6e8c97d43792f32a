package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stemtutor/internal/embedder"
	"github.com/dshills/stemtutor/pkg/types"
)

// stubEmbedder returns scripted vectors by exact text, falling back to a
// default vector for anything unscripted.
type stubEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	err      error
}

func (s *stubEmbedder) GenerateEmbedding(_ context.Context, req embedder.EmbeddingRequest) (*embedder.Embedding, error) {
	if s.err != nil {
		return nil, s.err
	}
	vec, ok := s.vectors[req.Text]
	if !ok {
		vec = s.fallback
	}
	return &embedder.Embedding{Vector: vec, Dimension: len(vec)}, nil
}

func (s *stubEmbedder) GenerateBatch(ctx context.Context, req embedder.BatchEmbeddingRequest) (*embedder.BatchEmbeddingResponse, error) {
	resp := &embedder.BatchEmbeddingResponse{Provider: s.Provider(), Model: s.Model()}
	for _, text := range req.Texts {
		emb, err := s.GenerateEmbedding(ctx, embedder.EmbeddingRequest{Text: text})
		if err != nil {
			return nil, err
		}
		resp.Embeddings = append(resp.Embeddings, emb)
	}
	return resp, nil
}

func (s *stubEmbedder) Dimension() int   { return len(s.fallback) }
func (s *stubEmbedder) Provider() string { return "stub" }
func (s *stubEmbedder) Model() string    { return "stub" }
func (s *stubEmbedder) Close() error     { return nil }

func testCatalog() []Entry {
	return []Entry{
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "gravity",
			Keywords: []string{"gravity"},
			Content:  "Gravity is the attractive force between masses.",
		},
		{
			Subject:  types.SubjectChemistry,
			TopicID:  "atom",
			Keywords: []string{"atom"},
			Content:  "An atom is the smallest unit of an element.",
		},
	}
}

func TestSearch_BestEntryWins(t *testing.T) {
	catalog := testCatalog()
	emb := &stubEmbedder{
		vectors: map[string][]float32{
			catalog[0].EmbedText():  {1, 0, 0},
			catalog[1].EmbedText():  {0, 1, 0},
			"what is gravity":       {0.9, 0.1, 0},
			"what is an atom about": {0.1, 0.9, 0},
		},
		fallback: []float32{0, 0, 1},
	}

	kb := New(catalog, emb)
	require.NoError(t, kb.Warmup(context.Background()))
	assert.True(t, kb.Ready())

	answer, err := kb.Search(context.Background(), "what is gravity")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Equal(t, "gravity", answer.TopicID)
	assert.Equal(t, types.SubjectPhysics, answer.Subject)
	assert.Equal(t, types.SourceLocalKB, answer.Source)
	assert.Greater(t, answer.Confidence, 0.9)

	answer, err = kb.Search(context.Background(), "what is an atom about")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Equal(t, "atom", answer.TopicID)
}

func TestSearch_ReturnsSubThresholdCandidate(t *testing.T) {
	// A weak match still comes back with its raw score. Acceptance is the
	// caller's decision, not the knowledge base's.
	catalog := testCatalog()
	emb := &stubEmbedder{
		vectors: map[string][]float32{
			catalog[0].EmbedText(): {1, 0, 0},
			catalog[1].EmbedText(): {0, 1, 0},
			"weak match":           {0.2, 0.1, 0.97},
		},
		fallback: []float32{0, 0, 1},
	}

	kb := New(catalog, emb)
	require.NoError(t, kb.Warmup(context.Background()))

	answer, err := kb.Search(context.Background(), "weak match")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Less(t, answer.Confidence, 0.45)
	assert.Greater(t, answer.Confidence, 0.0)
}

func TestSearch_TieKeepsCatalogOrder(t *testing.T) {
	// Two entries with identical embeddings score identically; strict
	// improvement keeps the first in catalog order.
	catalog := testCatalog()
	emb := &stubEmbedder{
		vectors: map[string][]float32{
			catalog[0].EmbedText(): {1, 0, 0},
			catalog[1].EmbedText(): {1, 0, 0},
		},
		fallback: []float32{1, 0, 0},
	}

	kb := New(catalog, emb)
	require.NoError(t, kb.Warmup(context.Background()))

	for i := 0; i < 10; i++ {
		answer, err := kb.Search(context.Background(), "anything")
		require.NoError(t, err)
		require.NotNil(t, answer)
		assert.Equal(t, "gravity", answer.TopicID)
	}
}

func TestSearch_NotReadyBeforeWarmup(t *testing.T) {
	kb := New(testCatalog(), &stubEmbedder{fallback: []float32{1, 0, 0}})
	assert.False(t, kb.Ready())

	_, err := kb.Search(context.Background(), "what is gravity")
	assert.ErrorIs(t, err, types.ErrNotReady)
}

func TestSearch_DegradedModeWithoutEmbedder(t *testing.T) {
	kb := NewDefault(nil)
	assert.False(t, kb.SemanticEnabled())
	require.NoError(t, kb.Warmup(context.Background()))

	// Semantic queries yield no candidate and no error.
	answer, err := kb.Search(context.Background(), "what is gravity")
	assert.NoError(t, err)
	assert.Nil(t, answer)
}

func TestSearch_EmbedderFailureSurfaces(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0, 0}}
	kb := New(testCatalog(), emb)
	require.NoError(t, kb.Warmup(context.Background()))

	emb.err = errors.New("provider down")
	_, err := kb.Search(context.Background(), "what is gravity")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrNotReady)
}

func TestSearch_NewtonShortCircuit(t *testing.T) {
	// The short-circuit needs no embeddings at all: nil embedder, no warmup.
	kb := NewDefault(nil)

	tests := []struct {
		question string
		topicID  string
	}{
		{"What is Newton's first law?", "newtons_first_law"},
		{"explain newton's 2nd law", "newtons_second_law"},
		{"Newton's third law please", "newtons_third_law"},
		{"newton law 3", "newtons_third_law"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			answer, err := kb.Search(context.Background(), tt.question)
			require.NoError(t, err)
			require.NotNil(t, answer)
			assert.Equal(t, tt.topicID, answer.TopicID)
			assert.Equal(t, ShortCircuitConfidence, answer.Confidence)
			assert.Equal(t, types.SourceLocalKB, answer.Source)
			assert.Equal(t, types.SubjectPhysics, answer.Subject)
			assert.NotEmpty(t, answer.AnswerText)
		})
	}
}

func TestSearch_NoShortCircuitWithoutNewton(t *testing.T) {
	kb := NewDefault(nil)

	// A law number without the newton token must not short-circuit.
	answer, err := kb.Search(context.Background(), "what is the first law")
	assert.NoError(t, err)
	assert.Nil(t, answer)

	// The newton token without a law number must not short-circuit either.
	answer, err = kb.Search(context.Background(), "tell me about newton")
	assert.NoError(t, err)
	assert.Nil(t, answer)
}

func TestWarmup_NilEmbedderIsNoop(t *testing.T) {
	kb := NewDefault(nil)
	require.NoError(t, kb.Warmup(context.Background()))
	assert.False(t, kb.Ready())
}

func TestGet(t *testing.T) {
	kb := NewDefault(nil)

	entry, ok := kb.Get(types.SubjectPhysics, "gravity")
	require.True(t, ok)
	assert.Equal(t, "gravity", entry.TopicID)

	_, ok = kb.Get(types.SubjectMath, "gravity")
	assert.False(t, ok)
}
