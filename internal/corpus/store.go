package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")
)

// Record is one question-answer record from an external corpus. Records are
// read-only once loaded.
type Record struct {
	ID         int64
	Corpus     string
	Subject    string // partition key, empty when the corpus is unpartitioned
	Question   string
	Answer     string   // free-text answer, when the corpus has one
	Choices    []string // choice list, when the corpus is multiple choice
	CorrectIdx int      // index into Choices
	Lecture    string   // background explanation, when available
	Solution   string   // worked solution, when available
}

// AnswerChoice returns the correct choice text, or "" when the record has
// no usable choice list.
func (r Record) AnswerChoice() string {
	if r.CorrectIdx >= 0 && r.CorrectIdx < len(r.Choices) {
		return r.Choices[r.CorrectIdx]
	}
	return ""
}

// Store is the SQLite-backed record store shared by all corpus adapters.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    corpus TEXT NOT NULL,
    subject TEXT NOT NULL DEFAULT '',
    question TEXT NOT NULL,
    answer TEXT NOT NULL DEFAULT '',
    choices TEXT NOT NULL DEFAULT '[]',
    correct_idx INTEGER NOT NULL DEFAULT -1,
    lecture TEXT NOT NULL DEFAULT '',
    solution TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_records_corpus ON records(corpus);
CREATE INDEX IF NOT EXISTS idx_records_corpus_subject ON records(corpus, subject);
`

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewStore opens (creating if needed) the corpus database at dbPath.
// Use ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRecords bulk-inserts records inside a single transaction.
func (s *Store) InsertRecords(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (corpus, subject, question, answer, choices, correct_idx, lecture, solution)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, rec := range records {
		choices, err := json.Marshal(rec.Choices)
		if err != nil {
			return fmt.Errorf("marshal choices for record %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx,
			rec.Corpus, rec.Subject, rec.Question, rec.Answer,
			string(choices), rec.CorrectIdx, rec.Lecture, rec.Solution,
		); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of records loaded for a corpus.
func (s *Store) Count(ctx context.Context, corpus string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM records WHERE corpus = ?", corpus).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s records: %w", corpus, err)
	}
	return n, nil
}

// Scan iterates records of a corpus in insertion (rowid) order, which is
// the deterministic scan order for tie-breaking. A non-empty subject limits
// the scan to that partition; limit <= 0 means unbounded. fn may stop the
// scan early by returning an error.
func (s *Store) Scan(ctx context.Context, corpus, subject string, limit int, fn func(Record) error) error {
	query := "SELECT id, corpus, subject, question, answer, choices, correct_idx, lecture, solution FROM records WHERE corpus = ?"
	args := []interface{}{corpus}

	if subject != "" {
		query += " AND subject = ?"
		args = append(args, subject)
	}

	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("scan %s records: %w", corpus, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rec Record
		var choicesJSON string
		if err := rows.Scan(&rec.ID, &rec.Corpus, &rec.Subject, &rec.Question,
			&rec.Answer, &choicesJSON, &rec.CorrectIdx, &rec.Lecture, &rec.Solution); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(choicesJSON), &rec.Choices); err != nil {
			return fmt.Errorf("unmarshal choices for record %d: %w", rec.ID, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	return rows.Err()
}
