// Package store persists enhancement runs so priority decisions stay
// auditable after the fact.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Store handles enhancement run persistence
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and returns a store
func Open(databaseURL string) (*Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Run is one bulk enhancement invocation
type Run struct {
	ID          uuid.UUID
	Requirement string
	TestType    string
	CaseCount   int
	CreatedAt   time.Time
}

// Result is one enhanced test case within a run
type Result struct {
	ID         uuid.UUID
	RunID      uuid.UUID
	Position   int
	CaseID     string
	Title      string
	Priority   model.Priority
	Confidence float64
	Score      float64
	Reasoning  string
}

const schema = `
CREATE TABLE IF NOT EXISTS enhancement_runs (
	id UUID PRIMARY KEY,
	requirement TEXT NOT NULL,
	test_type TEXT NOT NULL,
	case_count INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS enhancement_results (
	id UUID PRIMARY KEY,
	run_id UUID NOT NULL REFERENCES enhancement_runs(id) ON DELETE CASCADE,
	position INT NOT NULL,
	case_id TEXT NOT NULL,
	title TEXT NOT NULL,
	priority TEXT NOT NULL,
	confidence DOUBLE PRECISION NOT NULL,
	score DOUBLE PRECISION NOT NULL,
	reasoning TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_enhancement_results_run ON enhancement_results(run_id);
`

// EnsureSchema creates the tables when they do not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveRun persists a run and its per-case results in one transaction.
func (s *Store) SaveRun(ctx context.Context, requirement, testType string, cases []model.TestCase) (*Run, error) {
	run := &Run{
		ID:          uuid.New(),
		Requirement: requirement,
		TestType:    testType,
		CaseCount:   len(cases),
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO enhancement_runs (id, requirement, test_type, case_count, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.Requirement, run.TestType, run.CaseCount, run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	for i, tc := range cases {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO enhancement_results (id, run_id, position, case_id, title, priority, confidence, score, reasoning)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, uuid.New(), run.ID, i, tc.ID, tc.Title, tc.Priority,
			tc.PriorityConfidence, tc.PriorityScore, tc.PriorityReasoning)
		if err != nil {
			return nil, fmt.Errorf("failed to insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return run, nil
}

// GetRun retrieves a run by ID
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	run := &Run{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, requirement, test_type, case_count, created_at
		FROM enhancement_runs WHERE id = $1
	`, id).Scan(&run.ID, &run.Requirement, &run.TestType, &run.CaseCount, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetResults retrieves the results of a run ordered by input position
func (s *Store) GetResults(ctx context.Context, runID uuid.UUID) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, position, case_id, title, priority, confidence, score, reasoning
		FROM enhancement_results WHERE run_id = $1 ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.RunID, &r.Position, &r.CaseID, &r.Title,
			&r.Priority, &r.Confidence, &r.Score, &r.Reasoning); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
