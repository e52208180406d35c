package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/fieldgate/gridiron/internal/domain/model"
	"github.com/fieldgate/gridiron/pkg/metrics"
)

const schema = `
CREATE TABLE IF NOT EXISTS artifact_runs (
	run_id       TEXT PRIMARY KEY,
	season       INTEGER NOT NULL,
	generated_at TEXT NOT NULL,
	rows_read    INTEGER NOT NULL,
	rows_dropped INTEGER NOT NULL,
	artifact     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_artifact_runs_generated_at
	ON artifact_runs (generated_at DESC);
`

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithPath sets the database file path.
func WithPath(path string) Option {
	return func(s *SQLiteStore) {
		if path != "" {
			s.path = path
		}
	}
}

// SQLiteStore implements Store on an embedded sqlite database. Whole
// artifacts are stored as JSON rows; the store never mutates a
// published artifact, it only appends new runs.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore opens (or creates) the database and ensures the
// schema exists.
func NewSQLiteStore(ctx context.Context, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{path: "gridiron.db"}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ensure schema: %v", ErrOpenStore, err)
	}
	s.db = db
	return s, nil
}

// SaveArtifact persists a complete artifact as a new run row.
func (s *SQLiteStore) SaveArtifact(ctx context.Context, a model.Artifact) error {
	start := time.Now()
	blob, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO artifact_runs (run_id, season, generated_at, rows_read, rows_dropped, artifact)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.RunID,
		a.Season,
		a.GeneratedAt.UTC().Format(time.RFC3339Nano),
		a.Diagnostics.RowsRead,
		a.Diagnostics.RowsDropped,
		string(blob),
	)
	if err != nil {
		return fmt.Errorf("insert artifact run %s: %w", a.RunID, err)
	}
	metrics.RecordArtifactSave(time.Since(start).Milliseconds())
	return nil
}

// LatestArtifact returns the most recently published artifact.
func (s *SQLiteStore) LatestArtifact(ctx context.Context) (model.Artifact, error) {
	start := time.Now()
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT artifact FROM artifact_runs ORDER BY generated_at DESC LIMIT 1`,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Artifact{}, ErrNoArtifact
	}
	if err != nil {
		return model.Artifact{}, fmt.Errorf("query latest artifact: %w", err)
	}

	var a model.Artifact
	if err := json.Unmarshal([]byte(blob), &a); err != nil {
		return model.Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}
	metrics.RecordArtifactLoad(time.Since(start).Milliseconds())
	return a, nil
}

// Runs returns the number of published artifacts.
func (s *SQLiteStore) Runs(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artifact_runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count artifact runs: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close artifact store: %w", err)
	}
	return nil
}
