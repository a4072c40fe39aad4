package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, candidateID string) (Candidate, error)
	ListAll(ctx context.Context) ([]Candidate, error)
}
