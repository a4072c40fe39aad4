package profile

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// skillVocabulary is the fixed list of skills the heuristic extractor can
// detect, in declaration order. Matching is case-insensitive substring.
var skillVocabulary = []string{
	"Python", "JavaScript", "Java", "C++", "React", "Angular", "Vue", "Node.js",
	"Django", "Flask", "FastAPI", "Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Git", "CI/CD", "Jenkins",
	"TensorFlow", "PyTorch", "Machine Learning", "Deep Learning", "NLP", "scikit-learn",
	"Pandas", "NumPy", "HTML", "CSS", "TypeScript", "GraphQL", "REST", "Microservices",
	"Terraform", "Ansible", "Linux", "Bash", "API", "Agile", "Scrum",
}

const maxDetectedSkills = 15

var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(of)?\s*(experience|exp)`)
)

// HeuristicExtractor is a deterministic drop-in for LLMExtractor built on
// pattern matching. It never fails and never calls an external service.
type HeuristicExtractor struct{}

// NewHeuristicExtractor constructs a HeuristicExtractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract derives a profile from the resume text using fixed patterns and
// keyword heuristics.
func (e *HeuristicExtractor) Extract(ctx context.Context, resumeText string) CandidateProfile {
	_ = ctx
	lower := strings.ToLower(resumeText)

	name := firstNonEmptyLine(resumeText)
	if name == "" {
		name = "Unknown Candidate"
	}

	email := NotSpecified
	if m := emailPattern.FindString(resumeText); m != "" {
		email = m
	}

	phone := NotSpecified
	if m := phonePattern.FindString(resumeText); m != "" {
		phone = m
	}

	skills := []string{}
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
			if len(skills) == maxDetectedSkills {
				break
			}
		}
	}

	years := 0
	if m := yearsPattern.FindStringSubmatch(resumeText); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			years = parsed
		}
	}

	return CandidateProfile{
		Name:                 name,
		Email:                email,
		Phone:                phone,
		Location:             NotSpecified,
		Summary:              synthesizeSummary(years, skills),
		Skills:               skills,
		Experience:           synthesizeExperience(lower, years),
		Education:            synthesizeEducation(lower),
		Certifications:       []string{},
		Languages:            []string{"English"},
		TotalExperienceYears: float64(years),
	}
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func synthesizeExperience(lower string, years int) []Experience {
	duration := fmt.Sprintf("%d years", years)
	if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") || years >= 5 {
		title := "Engineer"
		if years >= 5 {
			title = "Senior Engineer"
		}
		return []Experience{{
			Title:       title,
			Company:     "Tech Company",
			Duration:    duration,
			Description: "Developed software solutions and led projects",
		}}
	}
	if strings.Contains(lower, "engineer") || strings.Contains(lower, "developer") {
		return []Experience{{
			Title:       "Software Engineer",
			Company:     "Technology Firm",
			Duration:    duration,
			Description: "Built and maintained software applications",
		}}
	}
	return []Experience{{
		Title:       "Professional",
		Company:     "Various Companies",
		Duration:    duration,
		Description: "Software development experience",
	}}
}

func synthesizeEducation(lower string) []Education {
	var entries []Education
	if strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.s.") || strings.Contains(lower, "bs") {
		entries = append(entries, Education{
			Degree:      "Bachelor of Science",
			Institution: "University",
			Year:        "2017",
			Field:       "Computer Science",
		})
	}
	if strings.Contains(lower, "master") || strings.Contains(lower, "m.s.") {
		entries = append(entries, Education{
			Degree:      "Master of Science",
			Institution: "University",
			Year:        "2019",
			Field:       "Computer Science",
		})
	}
	if len(entries) == 0 {
		entries = append(entries, Education{
			Degree:      "Bachelor's Degree",
			Institution: "University",
			Year:        NotSpecified,
			Field:       "Computer Science",
		})
	}
	return entries
}

func synthesizeSummary(years int, skills []string) string {
	summary := fmt.Sprintf("Professional with %d+ years of experience in software development.", years)
	if len(skills) > 0 {
		top := skills
		if len(top) > 3 {
			top = top[:3]
		}
		summary += fmt.Sprintf(" Skilled in %s.", strings.Join(top, ", "))
	}
	return summary
}

var (
	_ Extractor = (*HeuristicExtractor)(nil)
	_ Extractor = (*LLMExtractor)(nil)
)
