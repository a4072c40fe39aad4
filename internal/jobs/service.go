package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NehalVarma/smart-resume-screener/internal/candidates"
	"github.com/NehalVarma/smart-resume-screener/internal/match"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/telemetry"
	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

// Service runs job matching over the stored candidate pool.
type Service struct {
	Repo             Repo
	Candidates       candidates.Repo
	Scorer           match.Scorer
	DefaultThreshold float64
}

// MatchRequest is one matching run's parameters. A nil Threshold means the
// caller did not send one; an explicit zero is honored as-is.
type MatchRequest struct {
	JobDescription string
	JobTitle       string
	Threshold      *float64
}

// MatchOutcome is the result of one matching run.
type MatchOutcome struct {
	JobID       string
	JobTitle    string
	Threshold   float64
	Total       int
	Shortlisted int
	Entries     []shortlist.Entry
}

// MatchJob scores every stored candidate against the job, shortlists the
// survivors, and persists the run. Candidates are scored one at a time in
// the order persistence returns them; a failed score degrades to the
// scorer's fallback and never aborts the batch. An empty candidate pool
// returns ErrNoCandidates before any scoring happens.
func (s *Service) MatchJob(ctx context.Context, req MatchRequest) (MatchOutcome, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return MatchOutcome{}, errors.New("job description is required")
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		req.JobTitle = "Position"
	}
	threshold := shortlist.DefaultThreshold
	if s.DefaultThreshold != 0 {
		threshold = s.DefaultThreshold
	}
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	pool, err := s.Candidates.ListAll(ctx)
	if err != nil {
		return MatchOutcome{}, err
	}
	if len(pool) == 0 {
		return MatchOutcome{}, ErrNoCandidates
	}

	scored := make([]shortlist.Candidate, 0, len(pool))
	for _, candidate := range pool {
		result := s.Scorer.Match(ctx, match.Input{
			Profile:        candidate.Profile,
			ResumeText:     candidate.ResumeText,
			JobDescription: req.JobDescription,
			JobTitle:       req.JobTitle,
		})
		scored = append(scored, shortlist.Candidate{
			CandidateID: candidate.ID,
			Filename:    candidate.Filename,
			Name:        candidate.Profile.Name,
			Result:      result,
		})
	}

	outcome := shortlist.Build(scored, threshold)

	job := Job{
		ID:          uuid.NewString(),
		Title:       req.JobTitle,
		Description: req.JobDescription,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, job, outcome.Entries); err != nil {
		return MatchOutcome{}, err
	}

	telemetry.Info("job.matched", map[string]any{
		"job_id":      job.ID,
		"job_title":   job.Title,
		"threshold":   threshold,
		"total":       outcome.Total,
		"shortlisted": outcome.Shortlisted,
	})

	return MatchOutcome{
		JobID:       job.ID,
		JobTitle:    job.Title,
		Threshold:   threshold,
		Total:       outcome.Total,
		Shortlisted: outcome.Shortlisted,
		Entries:     outcome.Entries,
	}, nil
}

// History returns stored matching runs newest-first.
func (s *Service) History(ctx context.Context) ([]Summary, error) {
	return s.Repo.History(ctx)
}

// Matches returns the stored matches for one run, ordered by score.
func (s *Service) Matches(ctx context.Context, jobID string) ([]StoredMatch, error) {
	if jobID == "" {
		return nil, errors.New("jobID is required")
	}
	return s.Repo.Matches(ctx, jobID)
}
