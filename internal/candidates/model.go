package candidates

import (
	"errors"
	"time"

	"github.com/NehalVarma/smart-resume-screener/internal/profile"
)

// Candidate is a stored resume with its extracted profile.
type Candidate struct {
	ID         string
	Filename   string
	ResumeText string
	Profile    profile.CandidateProfile
	CreatedAt  time.Time
}

// ErrNotFound is returned when a candidate does not exist.
var ErrNotFound = errors.New("candidate not found")
