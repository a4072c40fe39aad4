package profile

import "context"

// Extractor turns raw resume text into a structured candidate profile.
// Implementations are total: they absorb every internal failure and return
// the fallback profile instead of an error.
type Extractor interface {
	Extract(ctx context.Context, resumeText string) CandidateProfile
}
