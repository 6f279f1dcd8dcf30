package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
)

const experimentColumns = `id::text, user_id::text, name, description, created_at, ph, tds, turbidity, summary, solution`

// ExperimentRepository provides persistence operations for experiments
type ExperimentRepository struct {
	db *sql.DB
}

// NewExperimentRepository creates a new experiment repository
func NewExperimentRepository(db *sql.DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

// Create inserts a new experiment with only identity, owner, name and description set.
func (r *ExperimentRepository) Create(ctx context.Context, req domain.CreateExperimentRequest) (*domain.Experiment, error) {
	const q = `
INSERT INTO experiments (id, user_id, name, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + experimentColumns + `;
`
	e, err := scanExperiment(r.db.QueryRowContext(ctx, q, uuid.New().String(), req.UserID, req.Name, req.Description))
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create experiment: %w", err)
	}
	return e, nil
}

// FindByID returns the experiment with the given id.
func (r *ExperimentRepository) FindByID(ctx context.Context, id string) (*domain.Experiment, error) {
	const q = `
SELECT ` + experimentColumns + `
FROM experiments
WHERE id = $1;
`
	e, err := scanExperiment(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperimentNotFound
		}
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}
	return e, nil
}

// ListByUser returns all experiments owned by a user, newest first.
func (r *ExperimentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Experiment, error) {
	const q = `
SELECT ` + experimentColumns + `
FROM experiments
WHERE user_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Experiment, 0, 16)
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experiment: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial update in a single statement. Nil patch fields
// keep their stored value.
func (r *ExperimentRepository) Update(ctx context.Context, id string, patch domain.ExperimentPatch) (*domain.Experiment, error) {
	const q = `
UPDATE experiments
SET ph = COALESCE($2, ph),
    tds = COALESCE($3, tds),
    turbidity = COALESCE($4, turbidity),
    summary = COALESCE($5, summary),
    solution = COALESCE($6, solution)
WHERE id = $1
RETURNING ` + experimentColumns + `;
`
	e, err := scanExperiment(r.db.QueryRowContext(ctx, q,
		id,
		patch.PH,
		patch.TDS,
		patch.Turbidity,
		patch.Summary,
		patch.Solution,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperimentNotFound
		}
		return nil, fmt.Errorf("failed to update experiment: %w", err)
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperiment(row rowScanner) (*domain.Experiment, error) {
	var e domain.Experiment
	var userID, name, description, summary, solution sql.NullString
	var ph, tds, turbidity sql.NullFloat64
	var createdAt sql.NullTime

	if err := row.Scan(
		&e.ID,
		&userID,
		&name,
		&description,
		&createdAt,
		&ph,
		&tds,
		&turbidity,
		&summary,
		&solution,
	); err != nil {
		return nil, err
	}

	// Handle nullable fields
	e.UserID = userID.String
	e.Name = name.String
	if createdAt.Valid {
		e.CreatedAt = createdAt.Time
	}
	e.Description = nullString(description)
	e.Summary = nullString(summary)
	e.Solution = nullString(solution)
	e.PH = nullFloat(ph)
	e.TDS = nullFloat(tds)
	e.Turbidity = nullFloat(turbidity)

	return &e, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
