package jobs

import (
	"context"
	"math"
	"sync"

	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	jobs    []Job
	matches map[string][]shortlist.Entry // jobID -> ordered entries
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{matches: make(map[string][]shortlist.Entry)}
}

// Create stores the job and its shortlist.
func (r *MemoryRepo) Create(ctx context.Context, job Job, results []shortlist.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	r.matches[job.ID] = append([]shortlist.Entry(nil), results...)
	return nil
}

// History returns jobs newest-first with aggregates.
func (r *MemoryRepo) History(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Summary, 0, len(r.jobs))
	for i := len(r.jobs) - 1; i >= 0; i-- {
		job := r.jobs[i]
		entries := r.matches[job.ID]
		avg := 0.0
		if len(entries) > 0 {
			sum := 0.0
			for _, e := range entries {
				sum += e.Score
			}
			avg = math.Round(sum/float64(len(entries))*100) / 100
		}
		out = append(out, Summary{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			CreatedAt:   job.CreatedAt,
			MatchCount:  len(entries),
			AvgScore:    avg,
		})
	}
	return out, nil
}

// Matches returns stored matches for a job in their persisted order, which
// is already score-descending.
func (r *MemoryRepo) Matches(ctx context.Context, jobID string) ([]StoredMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var job *Job
	for i := range r.jobs {
		if r.jobs[i].ID == jobID {
			job = &r.jobs[i]
			break
		}
	}
	if job == nil {
		return nil, nil
	}
	entries := r.matches[jobID]
	out := make([]StoredMatch, 0, len(entries))
	for _, e := range entries {
		out = append(out, StoredMatch{
			ID:            jobID + ":" + e.CandidateID,
			CandidateID:   e.CandidateID,
			Filename:      e.Filename,
			CandidateName: e.Name,
			Score:         e.Score,
			Justification: e.Justification,
			Details:       e,
			CreatedAt:     job.CreatedAt,
		})
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
