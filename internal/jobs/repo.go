package jobs

import (
	"context"

	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

// Repo defines persistence operations for job matching runs.
type Repo interface {
	// Create stores the job posting together with its ordered shortlist in
	// one atomic write.
	Create(ctx context.Context, job Job, results []shortlist.Entry) error
	History(ctx context.Context) ([]Summary, error)
	Matches(ctx context.Context, jobID string) ([]StoredMatch, error)
}
