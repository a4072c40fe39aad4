package shortlist

import (
	"sort"

	"github.com/NehalVarma/smart-resume-screener/internal/match"
)

// DefaultThreshold is the minimum score for shortlisting when the caller
// does not override it.
const DefaultThreshold = 6.0

// Candidate pairs a scored match with the identity of the candidate it
// belongs to.
type Candidate struct {
	CandidateID string
	Filename    string
	Name        string
	Result      match.Result
}

// Entry is a read-only projection of a candidate that cleared the threshold.
type Entry struct {
	CandidateID   string   `json:"candidate_id"`
	Filename      string   `json:"filename"`
	Name          string   `json:"name"`
	Score         float64  `json:"score"`
	Justification string   `json:"justification"`
	KeyMatches    []string `json:"key_matches"`
	Gaps          []string `json:"gaps"`
}

// Outcome is the ordered shortlist plus aggregate counts.
type Outcome struct {
	Entries     []Entry
	Total       int
	Shortlisted int
}

// Build filters scored candidates by threshold and orders the survivors by
// score descending. The sort is stable: ties keep the input order. Inputs
// are not recomputed or mutated.
func Build(scored []Candidate, threshold float64) Outcome {
	entries := make([]Entry, 0, len(scored))
	for _, c := range scored {
		if c.Result.Score < threshold {
			continue
		}
		entries = append(entries, Entry{
			CandidateID:   c.CandidateID,
			Filename:      c.Filename,
			Name:          c.Name,
			Score:         c.Result.Score,
			Justification: c.Result.Justification,
			KeyMatches:    c.Result.KeyMatches,
			Gaps:          c.Result.Gaps,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return Outcome{
		Entries:     entries,
		Total:       len(scored),
		Shortlisted: len(entries),
	}
}
