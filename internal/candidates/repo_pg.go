package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NehalVarma/smart-resume-screener/internal/profile"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new candidate.
func (r *PGRepo) Create(ctx context.Context, c Candidate) error {
	const query = `
INSERT INTO candidates (id, filename, resume_text, profile, created_at)
VALUES ($1, $2, $3, $4, $5)`
	payload, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, c.ID, c.Filename, c.ResumeText, payload, c.CreatedAt)
	return err
}

// GetByID returns a candidate by ID.
func (r *PGRepo) GetByID(ctx context.Context, candidateID string) (Candidate, error) {
	const query = `
SELECT id, filename, resume_text, profile, created_at
FROM candidates
WHERE id = $1
LIMIT 1`
	var c Candidate
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, candidateID).Scan(
		&c.ID,
		&c.Filename,
		&c.ResumeText,
		&payload,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	if err := json.Unmarshal(payload, &c.Profile); err != nil {
		return Candidate{}, fmt.Errorf("unmarshal profile id=%s: %w", candidateID, err)
	}
	return c, nil
}

// ListAll returns all candidates ordered newest-first.
func (r *PGRepo) ListAll(ctx context.Context) ([]Candidate, error) {
	const query = `
SELECT id, filename, resume_text, profile, created_at
FROM candidates
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		var payload []byte
		if err := rows.Scan(&c.ID, &c.Filename, &c.ResumeText, &payload, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &c.Profile); err != nil {
			// A corrupt row should not hide the rest of the pool.
			c.Profile = profile.Fallback()
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
