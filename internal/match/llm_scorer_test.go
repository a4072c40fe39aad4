package match

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/NehalVarma/smart-resume-screener/internal/llm"
	"github.com/NehalVarma/smart-resume-screener/internal/profile"
)

type stubClient struct {
	response string
	err      error
	lastReq  llm.Request
}

func (c *stubClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.lastReq = req
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func TestLLMScorerParsesResponse(t *testing.T) {
	client := &stubClient{response: `{
		"score": 8.5,
		"justification": "Great overlap with the stack.",
		"key_matches": ["Go services"],
		"gaps": ["No Kafka"],
		"strengths": ["Ownership"],
		"recommendation": "STRONG_FIT"
	}`}

	got := NewLLMScorer(client).Match(context.Background(), Input{
		Profile:        profile.CandidateProfile{Name: "Jane"},
		ResumeText:     "resume",
		JobDescription: "job",
		JobTitle:       "Backend Engineer",
	})

	if got.Score != 8.5 {
		t.Fatalf("Score = %v", got.Score)
	}
	if got.Recommendation != StrongFit {
		t.Fatalf("Recommendation = %v", got.Recommendation)
	}
	if client.lastReq.Temperature != 0.5 || !client.lastReq.JSONOnly {
		t.Fatalf("request = %+v", client.lastReq)
	}
}

func TestLLMScorerFallsBackOnClientError(t *testing.T) {
	client := &stubClient{err: errors.New("backend down")}

	got := NewLLMScorer(client).Match(context.Background(), Input{JobTitle: "X"})

	if !reflect.DeepEqual(got, Fallback()) {
		t.Fatalf("expected fallback, got %+v", got)
	}
	if got.Recommendation != Unknown {
		t.Fatalf("Recommendation = %v", got.Recommendation)
	}
}

func TestLLMScorerTruncatesResumeExcerpt(t *testing.T) {
	client := &stubClient{response: `{"score": 5}`}
	long := strings.Repeat("a", resumeExcerptLimit+500)

	NewLLMScorer(client).Match(context.Background(), Input{ResumeText: long})

	if strings.Contains(client.lastReq.UserPrompt, long) {
		t.Fatalf("prompt contains untruncated resume text")
	}
	if !strings.Contains(client.lastReq.UserPrompt, long[:resumeExcerptLimit]) {
		t.Fatalf("prompt missing truncated excerpt")
	}
}

func TestTruncateExcerptKeepsRunesWhole(t *testing.T) {
	// "a" shifts every 2-byte é off the even byte offsets, so a cut at the
	// limit would land mid-rune.
	text := "a" + strings.Repeat("é", resumeExcerptLimit)

	got := truncateExcerpt(text, resumeExcerptLimit)

	if len(got) > resumeExcerptLimit {
		t.Fatalf("len = %d, want <= %d", len(got), resumeExcerptLimit)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8")
	}
	if len(got) != resumeExcerptLimit-1 {
		t.Fatalf("len = %d, want %d (backed off one split byte)", len(got), resumeExcerptLimit-1)
	}
	if short := "short resume"; truncateExcerpt(short, resumeExcerptLimit) != short {
		t.Fatalf("short text must pass through unchanged")
	}
}

func TestMatchPromptIsValidUTF8AfterTruncation(t *testing.T) {
	client := &stubClient{response: `{"score": 5}`}
	long := "a" + strings.Repeat("é", resumeExcerptLimit)

	NewLLMScorer(client).Match(context.Background(), Input{ResumeText: long})

	if !utf8.ValidString(client.lastReq.UserPrompt) {
		t.Fatalf("prompt contains invalid UTF-8")
	}
}

func TestDecodeResultClampsAndCoercesScore(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`{"score": 15}`, 10},
		{`{"score": -2}`, 0},
		{`{"score": "7.5"}`, 7.5},
		{`{"score": "high"}`, 0},
		{`{}`, 0},
	}
	for _, tc := range cases {
		got, err := decodeResult([]byte(tc.raw))
		if err != nil {
			t.Fatalf("decodeResult(%q): %v", tc.raw, err)
		}
		if got.Score != tc.want {
			t.Fatalf("decodeResult(%q).Score = %v, want %v", tc.raw, got.Score, tc.want)
		}
	}
}

func TestDecodeResultDerivesMissingRecommendation(t *testing.T) {
	got, err := decodeResult([]byte(`{"score": 6.5, "justification": "ok"}`))
	if err != nil {
		t.Fatalf("decodeResult: %v", err)
	}
	if got.Recommendation != GoodFit {
		t.Fatalf("Recommendation = %v, want %v", got.Recommendation, GoodFit)
	}
}

func TestDecodeResultKeepsProvidedRecommendation(t *testing.T) {
	got, err := decodeResult([]byte(`{"score": 2, "recommendation": "STRONG_FIT"}`))
	if err != nil {
		t.Fatalf("decodeResult: %v", err)
	}
	if got.Recommendation != StrongFit {
		t.Fatalf("Recommendation = %v, want %v", got.Recommendation, StrongFit)
	}
}

func TestDecodeResultRepairsSequencesAndJustification(t *testing.T) {
	got, err := decodeResult([]byte(`{"score": 4, "key_matches": "none", "gaps": [1, "real gap"]}`))
	if err != nil {
		t.Fatalf("decodeResult: %v", err)
	}
	if got.Justification != "No justification provided" {
		t.Fatalf("Justification = %q", got.Justification)
	}
	if got.KeyMatches == nil || len(got.KeyMatches) != 0 {
		t.Fatalf("KeyMatches = %v", got.KeyMatches)
	}
	if !reflect.DeepEqual(got.Gaps, []string{"real gap"}) {
		t.Fatalf("Gaps = %v", got.Gaps)
	}
	if got.Strengths == nil {
		t.Fatalf("Strengths must be non-nil")
	}
}

func TestDecodeResultMalformedJSON(t *testing.T) {
	if _, err := decodeResult([]byte("nope")); err == nil {
		t.Fatalf("expected error")
	}
}
