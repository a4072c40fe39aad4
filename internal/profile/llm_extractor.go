package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NehalVarma/smart-resume-screener/internal/llm"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/telemetry"
)

const extractionSystemPrompt = "You are an expert HR assistant that extracts structured information from resumes. Always respond with valid JSON only."

// LLMExtractor extracts structured candidate information using a generative
// backend.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor constructs an LLMExtractor over the given client.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract asks the backend to structure the resume text. Any backend or
// parse failure yields the fallback profile.
func (e *LLMExtractor) Extract(ctx context.Context, resumeText string) CandidateProfile {
	raw, err := e.client.Complete(ctx, llm.Request{
		SystemPrompt: extractionSystemPrompt,
		UserPrompt:   buildExtractionPrompt(resumeText),
		Temperature:  0.3,
		JSONOnly:     true,
	})
	if err != nil {
		telemetry.Error("profile.extract.failed", map[string]any{"err": err.Error()})
		return Fallback()
	}

	parsed, err := decodeProfile([]byte(raw))
	if err != nil {
		telemetry.Error("profile.extract.failed", map[string]any{"err": err.Error()})
		return Fallback()
	}
	return parsed
}

func buildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`
Extract structured information from the following resume and return it as a JSON object with this exact structure:

{
  "name": "Full name of the candidate",
  "email": "Email address",
  "phone": "Phone number",
  "location": "Location/City",
  "summary": "Brief professional summary (2-3 sentences)",
  "skills": [
    "List of technical and professional skills"
  ],
  "experience": [
    {
      "title": "Job title",
      "company": "Company name",
      "duration": "Time period (e.g., Jan 2020 - Present)",
      "description": "Brief description of role and achievements"
    }
  ],
  "education": [
    {
      "degree": "Degree name",
      "institution": "University/School name",
      "year": "Graduation year or period",
      "field": "Field of study"
    }
  ],
  "certifications": [
    "List of certifications, if any"
  ],
  "languages": [
    "List of languages spoken"
  ],
  "total_experience_years": "Estimated total years of experience as a number"
}

IMPORTANT:
- Extract only information that is explicitly present in the resume
- Use "Not specified" for missing information
- Keep descriptions concise
- For skills, include both technical skills (programming languages, tools) and soft skills
- Return ONLY valid JSON, no additional text

Resume Text:
%s
`, resumeText)
}

// decodeProfile parses a backend response and repairs it field by field.
// Sequence fields are replaced with empty sequences when missing or not
// sequences; a missing name gets the schema default. Other scalar values are
// accepted as provided since extraction is best-effort.
func decodeProfile(raw []byte) (CandidateProfile, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return CandidateProfile{}, fmt.Errorf("profile parse: %w", err)
	}

	p := CandidateProfile{
		Name:                 asString(fields["name"], NotSpecified),
		Email:                asString(fields["email"], ""),
		Phone:                asString(fields["phone"], ""),
		Location:             asString(fields["location"], ""),
		Summary:              asString(fields["summary"], ""),
		Skills:               asStringList(fields["skills"]),
		Certifications:       asStringList(fields["certifications"]),
		Languages:            asStringList(fields["languages"]),
		TotalExperienceYears: asYears(fields["total_experience_years"]),
	}

	p.Experience = []Experience{}
	if entries, ok := fields["experience"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			p.Experience = append(p.Experience, Experience{
				Title:       asString(m["title"], ""),
				Company:     asString(m["company"], ""),
				Duration:    asString(m["duration"], ""),
				Description: asString(m["description"], ""),
			})
		}
	}

	p.Education = []Education{}
	if entries, ok := fields["education"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			p.Education = append(p.Education, Education{
				Degree:      asString(m["degree"], ""),
				Institution: asString(m["institution"], ""),
				Year:        asString(m["year"], ""),
				Field:       asString(m["field"], ""),
			})
		}
	}

	return p, nil
}
