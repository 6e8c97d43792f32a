package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_InsertAndCount(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	records := []Record{
		{Corpus: CorpusSciQ, Question: "What is an atom?", Answer: "The smallest unit of an element.", CorrectIdx: -1},
		{Corpus: CorpusSciQ, Question: "What is a molecule?", Answer: "Two or more atoms bonded together.", CorrectIdx: -1},
		{Corpus: CorpusMMLU, Subject: "high_school_physics", Question: "A ball is dropped...", Choices: []string{"1 m/s", "9.8 m/s"}, CorrectIdx: 1},
	}
	require.NoError(t, store.InsertRecords(ctx, records))

	n, err := store.Count(ctx, CorpusSciQ)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.Count(ctx, CorpusMMLU)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.Count(ctx, CorpusScienceQA)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_InsertEmptyIsNoop(t *testing.T) {
	store := testStore(t)
	assert.NoError(t, store.InsertRecords(context.Background(), nil))
}

func TestStore_ScanOrderAndRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []Record{
		{Corpus: CorpusSciQ, Question: "q1", Answer: "a1", CorrectIdx: -1},
		{Corpus: CorpusSciQ, Question: "q2", Answer: "a2", CorrectIdx: -1},
		{Corpus: CorpusSciQ, Question: "q3", Answer: "a3", CorrectIdx: -1},
	}))

	var questions []string
	err := store.Scan(ctx, CorpusSciQ, "", 0, func(rec Record) error {
		questions = append(questions, rec.Question)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2", "q3"}, questions)
}

func TestStore_ScanLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	var records []Record
	for i := 0; i < 10; i++ {
		records = append(records, Record{Corpus: CorpusScienceQA, Question: "q", CorrectIdx: -1})
	}
	require.NoError(t, store.InsertRecords(ctx, records))

	seen := 0
	err := store.Scan(ctx, CorpusScienceQA, "", 4, func(Record) error {
		seen++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, seen)
}

func TestStore_ScanSubjectPartition(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []Record{
		{Corpus: CorpusMMLU, Subject: "high_school_physics", Question: "physics q", CorrectIdx: -1},
		{Corpus: CorpusMMLU, Subject: "high_school_biology", Question: "biology q", CorrectIdx: -1},
	}))

	var questions []string
	err := store.Scan(ctx, CorpusMMLU, "high_school_physics", 0, func(rec Record) error {
		questions = append(questions, rec.Question)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"physics q"}, questions)
}

func TestStore_ScanChoicesRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []Record{{
		Corpus:     CorpusMMLU,
		Question:   "pick one",
		Choices:    []string{"a", "b", "c"},
		CorrectIdx: 2,
	}}))

	var got Record
	err := store.Scan(ctx, CorpusMMLU, "", 0, func(rec Record) error {
		got = rec
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Choices)
	assert.Equal(t, "c", got.AnswerChoice())
}

func TestRecord_AnswerChoice(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"valid index", Record{Choices: []string{"a", "b"}, CorrectIdx: 1}, "b"},
		{"negative index", Record{Choices: []string{"a", "b"}, CorrectIdx: -1}, ""},
		{"out of range", Record{Choices: []string{"a"}, CorrectIdx: 3}, ""},
		{"no choices", Record{CorrectIdx: 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.AnswerChoice())
		})
	}
}
