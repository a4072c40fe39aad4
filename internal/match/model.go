package match

import (
	"context"

	"github.com/NehalVarma/smart-resume-screener/internal/profile"
)

// Recommendation buckets a match score into a hiring signal.
type Recommendation string

const (
	StrongFit   Recommendation = "STRONG_FIT"
	GoodFit     Recommendation = "GOOD_FIT"
	ModerateFit Recommendation = "MODERATE_FIT"
	WeakFit     Recommendation = "WEAK_FIT"
	Unknown     Recommendation = "UNKNOWN"
)

// Result is the scored outcome of comparing one candidate against one job.
// Score is always within [0, 10] after validation; the sequence fields are
// always non-nil.
type Result struct {
	Score          float64        `json:"score"`
	Justification  string         `json:"justification"`
	KeyMatches     []string       `json:"key_matches"`
	Gaps           []string       `json:"gaps"`
	Strengths      []string       `json:"strengths"`
	Recommendation Recommendation `json:"recommendation"`
}

// Fallback returns the fixed result used when matching fails.
func Fallback() Result {
	return Result{
		Score:          0.0,
		Justification:  "Unable to perform matching analysis",
		KeyMatches:     []string{},
		Gaps:           []string{},
		Strengths:      []string{},
		Recommendation: Unknown,
	}
}

// DeriveRecommendation maps a clamped score onto a recommendation.
// The thresholds intentionally differ from the rubric bands shown to the
// backend; both are preserved as-is.
func DeriveRecommendation(score float64) Recommendation {
	switch {
	case score >= 8:
		return StrongFit
	case score >= 6:
		return GoodFit
	case score >= 4:
		return ModerateFit
	default:
		return WeakFit
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// Input carries everything a scorer needs for one (candidate, job) pair.
type Input struct {
	Profile        profile.CandidateProfile
	ResumeText     string
	JobDescription string
	JobTitle       string
}

// Scorer compares a structured candidate profile against a job description.
// Implementations are total: any internal failure yields the fallback result.
type Scorer interface {
	Match(ctx context.Context, in Input) Result
}
