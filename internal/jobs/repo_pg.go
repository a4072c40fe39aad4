package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the job posting and one match row per shortlist entry
// inside a single transaction.
func (r *PGRepo) Create(ctx context.Context, job Job, results []shortlist.Entry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertJob = `
INSERT INTO job_postings (id, job_title, job_description, created_at)
VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertJob, job.ID, job.Title, job.Description, job.CreatedAt); err != nil {
		return err
	}

	const insertMatch = `
INSERT INTO match_results (id, job_id, candidate_id, score, justification, match_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, entry := range results {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal match entry candidate=%s: %w", entry.CandidateID, err)
		}
		if _, err := tx.ExecContext(ctx, insertMatch,
			uuid.NewString(),
			job.ID,
			entry.CandidateID,
			entry.Score,
			entry.Justification,
			payload,
			job.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// History returns job postings newest-first with match counts and average
// scores.
func (r *PGRepo) History(ctx context.Context) ([]Summary, error) {
	const query = `
SELECT jp.id, jp.job_title, jp.job_description, jp.created_at,
       COUNT(mr.id) AS match_count,
       COALESCE(AVG(mr.score), 0) AS avg_score
FROM job_postings jp
LEFT JOIN match_results mr ON jp.id = mr.job_id
GROUP BY jp.id, jp.job_title, jp.job_description, jp.created_at
ORDER BY jp.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedAt, &s.MatchCount, &s.AvgScore); err != nil {
			return nil, err
		}
		s.AvgScore = math.Round(s.AvgScore*100) / 100
		out = append(out, s)
	}
	return out, rows.Err()
}

// Matches returns the stored matches for a job ordered by score descending.
func (r *PGRepo) Matches(ctx context.Context, jobID string) ([]StoredMatch, error) {
	const query = `
SELECT mr.id, mr.candidate_id, c.filename, COALESCE(c.profile->>'name', 'Unknown'),
       mr.score, mr.justification, mr.match_data, mr.created_at
FROM match_results mr
JOIN candidates c ON mr.candidate_id = c.id
WHERE mr.job_id = $1
ORDER BY mr.score DESC`
	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredMatch
	for rows.Next() {
		var m StoredMatch
		var payload []byte
		if err := rows.Scan(&m.ID, &m.CandidateID, &m.Filename, &m.CandidateName, &m.Score, &m.Justification, &payload, &m.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &m.Details); err != nil {
			return nil, fmt.Errorf("unmarshal match data id=%s: %w", m.ID, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
