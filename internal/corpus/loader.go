package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Corpus names as stored in the records table.
const (
	CorpusScienceQA = "scienceqa"
	CorpusMMLU      = "mmlu"
	CorpusSciQ      = "sciq"
)

// insertBatchSize bounds transaction size during bootstrap.
const insertBatchSize = 500

// jsonlRecord is the on-disk JSONL shape shared by all corpus exports.
// Fields a corpus does not use are simply absent.
type jsonlRecord struct {
	Subject    string   `json:"subject,omitempty"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer,omitempty"`
	Choices    []string `json:"choices,omitempty"`
	CorrectIdx *int     `json:"correct_idx,omitempty"`
	Lecture    string   `json:"lecture,omitempty"`
	Solution   string   `json:"solution,omitempty"`
}

// LoadJSONL loads a corpus export into the store. Lines that fail to parse
// are skipped and counted rather than aborting the load; corpora are best
// effort by contract. Returns the number of records loaded.
func LoadJSONL(ctx context.Context, store *Store, corpus, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s export: %w", corpus, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	// Some ScienceQA lectures are long; allow up to 1 MiB per line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	loaded := 0
	batch := make([]Record, 0, insertBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.InsertRecords(ctx, batch); err != nil {
			return err
		}
		loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var jr jsonlRecord
		if err := json.Unmarshal(line, &jr); err != nil {
			continue // skip malformed lines
		}
		if jr.Question == "" {
			continue
		}

		rec := Record{
			Corpus:     corpus,
			Subject:    jr.Subject,
			Question:   jr.Question,
			Answer:     jr.Answer,
			Choices:    jr.Choices,
			CorrectIdx: -1,
			Lecture:    jr.Lecture,
			Solution:   jr.Solution,
		}
		if jr.CorrectIdx != nil {
			rec.CorrectIdx = *jr.CorrectIdx
		}

		batch = append(batch, rec)
		if len(batch) >= insertBatchSize {
			if err := flush(); err != nil {
				return loaded, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("read %s export: %w", corpus, err)
	}

	if err := flush(); err != nil {
		return loaded, err
	}

	return loaded, nil
}

// BootstrapPaths names the JSONL exports for each corpus. Empty paths are
// skipped; a missing corpus must not prevent the others from loading.
type BootstrapPaths struct {
	ScienceQA string
	MMLU      string
	SciQ      string
}

// Bootstrap loads every configured corpus export that is not already in
// the store. Per-corpus failures are collected into the returned map so
// the caller can log them; they never abort the remaining loads.
func Bootstrap(ctx context.Context, store *Store, paths BootstrapPaths) (map[string]int, map[string]error) {
	sources := []struct {
		corpus string
		path   string
	}{
		{CorpusScienceQA, paths.ScienceQA},
		{CorpusMMLU, paths.MMLU},
		{CorpusSciQ, paths.SciQ},
	}

	counts := make(map[string]int)
	failures := make(map[string]error)

	for _, src := range sources {
		if src.path == "" {
			continue
		}

		existing, err := store.Count(ctx, src.corpus)
		if err != nil {
			failures[src.corpus] = err
			continue
		}
		if existing > 0 {
			counts[src.corpus] = existing
			continue
		}

		loaded, err := LoadJSONL(ctx, store, src.corpus, src.path)
		if err != nil {
			failures[src.corpus] = err
			continue
		}
		counts[src.corpus] = loaded
	}

	return counts, failures
}
