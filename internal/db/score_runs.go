package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fit-scorer/internal/types"
)

// ScoreRun is one persisted scoring result. Inputs are stored as hashes only.
type ScoreRun struct {
	ID             uuid.UUID               `json:"id"`
	CVHash         string                  `json:"cv_hash"`
	JDHash         string                  `json:"jd_hash"`
	FinalScore     float64                 `json:"final_score"`
	CategoryStatus string                  `json:"category_status"`
	Degraded       []string                `json:"degraded"`
	Breakdown      types.ATSScoreBreakdown `json:"breakdown"`
	CreatedAt      time.Time               `json:"created_at"`
}

// NewScoreRun builds the record for a breakdown. The breakdown's RunID becomes the record ID
// when it is a valid UUID; otherwise a new one is generated.
func NewScoreRun(b types.ATSScoreBreakdown, cvHash, jdHash string) *ScoreRun {
	id, err := uuid.Parse(b.RunID)
	if err != nil {
		id = uuid.New()
	}
	degraded := b.Degraded
	if degraded == nil {
		degraded = []string{}
	}
	return &ScoreRun{
		ID:             id,
		CVHash:         cvHash,
		JDHash:         jdHash,
		FinalScore:     b.FinalScore,
		CategoryStatus: b.CategoryStatus,
		Degraded:       degraded,
		Breakdown:      b,
	}
}

// SaveScoreRun inserts a run, replacing any run with the same ID
func (db *DB) SaveScoreRun(ctx context.Context, run *ScoreRun) error {
	breakdown, err := json.Marshal(run.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO score_runs (id, cv_hash, jd_hash, final_score, category_status, degraded, breakdown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		     final_score = $4, category_status = $5, degraded = $6, breakdown = $7
		 RETURNING created_at`,
		run.ID, run.CVHash, run.JDHash, run.FinalScore, run.CategoryStatus, run.Degraded, breakdown,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save score run: %w", err)
	}
	return nil
}

// GetScoreRun retrieves a run by ID. It returns nil, nil when no such run exists.
func (db *DB) GetScoreRun(ctx context.Context, id uuid.UUID) (*ScoreRun, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, cv_hash, jd_hash, final_score, category_status, degraded, breakdown, created_at
		 FROM score_runs WHERE id = $1`,
		id,
	)
	run, err := scanScoreRun(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score run: %w", err)
	}
	return run, nil
}

// ListScoreRunsByInputs returns the most recent runs for the same CV and job description
func (db *DB) ListScoreRunsByInputs(ctx context.Context, cvHash, jdHash string, limit int) ([]ScoreRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, cv_hash, jd_hash, final_score, category_status, degraded, breakdown, created_at
		 FROM score_runs WHERE cv_hash = $1 AND jd_hash = $2
		 ORDER BY created_at DESC LIMIT $3`,
		cvHash, jdHash, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list score runs: %w", err)
	}
	defer rows.Close()

	var runs []ScoreRun
	for rows.Next() {
		run, err := scanScoreRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate score runs: %w", err)
	}
	return runs, nil
}

func scanScoreRun(row pgx.Row) (*ScoreRun, error) {
	var (
		run       ScoreRun
		breakdown []byte
	)
	if err := row.Scan(&run.ID, &run.CVHash, &run.JDHash, &run.FinalScore, &run.CategoryStatus,
		&run.Degraded, &breakdown, &run.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdown, &run.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
	}
	return &run, nil
}
