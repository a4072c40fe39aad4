package match

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/NehalVarma/smart-resume-screener/internal/llm"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/telemetry"
)

const matchingSystemPrompt = `You are an expert HR recruiter and talent matcher.
Your task is to objectively evaluate how well a candidate matches a job description.
Provide honest assessments with specific evidence from the resume.
Always respond with valid JSON only.`

// resumeExcerptLimit bounds prompt size; text past it is not considered.
const resumeExcerptLimit = 3000

// LLMScorer scores a candidate against a job description using a generative
// backend.
type LLMScorer struct {
	client llm.Client
}

// NewLLMScorer constructs an LLMScorer over the given client.
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client}
}

// Match asks the backend for a match analysis. Any backend or parse failure
// yields the fallback result.
func (s *LLMScorer) Match(ctx context.Context, in Input) Result {
	raw, err := s.client.Complete(ctx, llm.Request{
		SystemPrompt: matchingSystemPrompt,
		UserPrompt:   buildMatchingPrompt(in),
		Temperature:  0.5,
		JSONOnly:     true,
	})
	if err != nil {
		telemetry.Error("match.score.failed", map[string]any{"job_title": in.JobTitle, "err": err.Error()})
		return Fallback()
	}

	result, err := decodeResult([]byte(raw))
	if err != nil {
		telemetry.Error("match.score.failed", map[string]any{"job_title": in.JobTitle, "err": err.Error()})
		return Fallback()
	}
	return result
}

func buildMatchingPrompt(in Input) string {
	excerpt := truncateExcerpt(in.ResumeText, resumeExcerptLimit)
	return fmt.Sprintf(`
Compare the following candidate with the job description and provide a comprehensive match analysis.

JOB TITLE: %s

JOB DESCRIPTION:
%s

CANDIDATE PROFILE:
Name: %s
Skills: %s
Experience: %g years
Summary: %s

FULL RESUME TEXT:
%s

YOUR TASK:
Analyze the candidate's fit for this role and return a JSON object with this exact structure:

{
  "score": 7.5,
  "justification": "A detailed 2-3 paragraph explanation of why this score was given, covering strengths and weaknesses",
  "key_matches": [
    "Specific skill/experience match 1",
    "Specific skill/experience match 2",
    "Specific skill/experience match 3"
  ],
  "gaps": [
    "Missing skill or experience 1",
    "Missing skill or experience 2"
  ],
  "strengths": [
    "Key strength 1",
    "Key strength 2",
    "Key strength 3"
  ],
  "recommendation": "STRONG_FIT | GOOD_FIT | MODERATE_FIT | WEAK_FIT"
}

SCORING CRITERIA (1-10 scale):
- 9-10: Exceptional fit - All key requirements met, strong relevant experience
- 7-8: Strong fit - Most requirements met, good relevant experience
- 5-6: Moderate fit - Some requirements met, partial relevant experience
- 3-4: Weak fit - Few requirements met, limited relevant experience
- 1-2: Poor fit - Very few or no requirements met

Be specific and reference actual skills, experiences, and qualifications from the resume.
Consider: technical skills, years of experience, relevant domain knowledge, education, and cultural indicators.
Return ONLY valid JSON, no additional text.
`,
		in.JobTitle,
		in.JobDescription,
		in.Profile.Name,
		strings.Join(in.Profile.Skills, ", "),
		in.Profile.TotalExperienceYears,
		in.Profile.Summary,
		excerpt,
	)
}

// truncateExcerpt cuts text to at most limit bytes without splitting a
// multi-byte rune at the boundary.
func truncateExcerpt(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// decodeResult parses a backend response and repairs it field by field:
// score is coerced and clamped to [0, 10] (0 on coercion failure), empty
// justification gets a default, sequence fields become empty sequences when
// missing, and an absent recommendation is derived from the clamped score.
func decodeResult(raw []byte) (Result, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Result{}, fmt.Errorf("match parse: %w", err)
	}

	r := Result{
		Score:         coerceScore(fields["score"]),
		Justification: stringOr(fields["justification"], "No justification provided"),
		KeyMatches:    stringList(fields["key_matches"]),
		Gaps:          stringList(fields["gaps"]),
		Strengths:     stringList(fields["strengths"]),
	}

	if rec, ok := fields["recommendation"].(string); ok && rec != "" {
		r.Recommendation = Recommendation(rec)
	} else {
		r.Recommendation = DeriveRecommendation(r.Score)
	}
	return r, nil
}

func coerceScore(v any) float64 {
	switch val := v.(type) {
	case float64:
		return clampScore(val)
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0.0
		}
		return clampScore(parsed)
	default:
		return 0.0
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func stringList(v any) []string {
	out := []string{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var _ Scorer = (*LLMScorer)(nil)
