// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/codeclub/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width and always UTC, so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ErrRunNotFound is returned when a crack run id is unknown.
var ErrRunNotFound = errors.New("crack run not found")

// Store wraps SQLite access for puzzle and crack history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS puzzle_sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			cipher TEXT NOT NULL,
			key TEXT NOT NULL,
			plaintext TEXT NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			hint_used INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS crack_runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			cipher TEXT NOT NULL,
			ciphertext TEXT NOT NULL,
			candidates INTEGER NOT NULL,
			verdict TEXT NOT NULL,
			best_key TEXT NOT NULL,
			best_score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS crack_attempts (
			run_id TEXT NOT NULL,
			rank INTEGER NOT NULL,
			keyword TEXT NOT NULL,
			result TEXT NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY (run_id, rank)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_puzzle_sessions_ended_at ON puzzle_sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_crack_runs_created_at ON crack_runs(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertPuzzleSession stores a completed puzzle attempt.
func (s *Store) InsertPuzzleSession(ctx context.Context, session model.PuzzleSession) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO puzzle_sessions (started_at, ended_at, cipher, key, plaintext, correct, incorrect, hint_used, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		formatTime(session.StartedAt),
		formatTime(session.EndedAt),
		session.Cipher,
		session.Key,
		session.Plaintext,
		session.Correct,
		session.Incorrect,
		session.HintUsed,
		session.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListPuzzleSessions returns sessions matching filter, oldest first. Last
// keeps only the most recent sessions.
func (s *Store) ListPuzzleSessions(ctx context.Context, filter model.HistoryFilter) ([]model.PuzzleSession, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Cipher != "" {
		clauses = append(clauses, "cipher = ?")
		args = append(args, filter.Cipher)
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	limit := -1
	if filter.Last > 0 {
		limit = filter.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT * FROM (
			SELECT id, started_at, ended_at, cipher, key, plaintext, correct, incorrect, hint_used, duration_ms
			FROM puzzle_sessions
			WHERE %s
			ORDER BY ended_at DESC, id DESC
			LIMIT ?
		) ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.PuzzleSession
	for rows.Next() {
		var ps model.PuzzleSession
		var startedAt, endedAt string
		if err := rows.Scan(&ps.ID, &startedAt, &endedAt, &ps.Cipher, &ps.Key, &ps.Plaintext,
			&ps.Correct, &ps.Incorrect, &ps.HintUsed, &ps.DurationMs); err != nil {
			return nil, err
		}
		if ps.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if ps.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// InsertCrackRun stores a crack run and its ranked attempts. The run id is
// generated when run.ID is empty and returned either way.
func (s *Store) InsertCrackRun(ctx context.Context, run model.CrackRun, attempts []model.CrackAttempt) (id string, err error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO crack_runs (id, created_at, cipher, ciphertext, candidates, verdict, best_key, best_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		formatTime(run.CreatedAt),
		run.Cipher,
		run.Ciphertext,
		run.Candidates,
		run.Verdict,
		run.BestKey,
		run.BestScore,
		run.DurationMs,
	); err != nil {
		return "", err
	}

	if len(attempts) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO crack_attempts (run_id, rank, keyword, result, score) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return "", err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, at := range attempts {
			rank := at.Rank
			if rank == 0 {
				rank = i + 1
			}
			if _, err = stmt.ExecContext(ctx, run.ID, rank, at.Keyword, at.Result, at.Score); err != nil {
				return "", err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// ListCrackRuns returns the most recent crack runs, newest first.
func (s *Store) ListCrackRuns(ctx context.Context, limit int) ([]model.CrackRun, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, cipher, ciphertext, candidates, verdict, best_key, best_score, duration_ms
		 FROM crack_runs
		 ORDER BY created_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.CrackRun
	for rows.Next() {
		var run model.CrackRun
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.Cipher, &run.Ciphertext, &run.Candidates,
			&run.Verdict, &run.BestKey, &run.BestScore, &run.DurationMs); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListCrackAttempts returns the stored attempts of one run by rank.
func (s *Store) ListCrackAttempts(ctx context.Context, runID string) ([]model.CrackAttempt, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM crack_runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT rank, keyword, result, score FROM crack_attempts WHERE run_id = ? ORDER BY rank ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.CrackAttempt
	for rows.Next() {
		var at model.CrackAttempt
		if err := rows.Scan(&at.Rank, &at.Keyword, &at.Result, &at.Score); err != nil {
			return nil, err
		}
		attempts = append(attempts, at)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}
