package jobs

import (
	"errors"
	"time"

	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

// Job is one stored matching run's posting context.
type Job struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Summary is a job posting with aggregates over its stored matches.
type Summary struct {
	ID          string    `json:"id"`
	Title       string    `json:"job_title"`
	Description string    `json:"job_description"`
	CreatedAt   time.Time `json:"created_at"`
	MatchCount  int       `json:"match_count"`
	AvgScore    float64   `json:"avg_score"`
}

// StoredMatch is one persisted shortlist entry for a job, joined with the
// candidate it references.
type StoredMatch struct {
	ID            string          `json:"id"`
	CandidateID   string          `json:"candidate_id"`
	Filename      string          `json:"filename"`
	CandidateName string          `json:"candidate_name"`
	Score         float64         `json:"score"`
	Justification string          `json:"justification"`
	Details       shortlist.Entry `json:"match_details"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ErrNoCandidates signals an empty candidate pool, reported distinctly from
// a run where no candidate cleared the threshold.
var ErrNoCandidates = errors.New("no candidates found")
