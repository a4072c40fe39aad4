package match

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// archetype is a fixed job category with its skill vocabularies.
type archetype struct {
	name      string
	keywords  []string
	required  []string
	preferred []string
}

// Archetypes are checked in order; the first whose keywords appear in the
// job description wins, with a generic catch-all last.
var archetypes = []archetype{
	{
		name:      "full-stack",
		keywords:  []string{"full stack", "fullstack", "full-stack"},
		required:  []string{"python", "javascript", "react", "node", "api", "database"},
		preferred: []string{"docker", "aws", "typescript", "mongodb"},
	},
	{
		name:      "devops",
		keywords:  []string{"devops", "sre", "site reliability"},
		required:  []string{"aws", "docker", "kubernetes", "terraform", "ci/cd", "linux"},
		preferred: []string{"ansible", "prometheus", "jenkins", "python"},
	},
	{
		name:      "data-science",
		keywords:  []string{"data scient", "machine learning", "ml engineer"},
		required:  []string{"python", "machine learning", "tensorflow", "pytorch", "pandas", "numpy"},
		preferred: []string{"nlp", "deep learning", "spark", "sql"},
	},
	{
		name:      "generic",
		keywords:  nil,
		required:  []string{"programming", "software", "development", "git"},
		preferred: []string{"cloud", "database", "api"},
	},
}

// RuleScorer is a deterministic drop-in for LLMScorer built on keyword
// analysis. It never fails and never calls an external service.
type RuleScorer struct{}

// NewRuleScorer constructs a RuleScorer.
func NewRuleScorer() *RuleScorer {
	return &RuleScorer{}
}

// Match scores the candidate by comparing archetype skill vocabularies
// against the resume text.
func (s *RuleScorer) Match(ctx context.Context, in Input) Result {
	_ = ctx
	jobLower := strings.ToLower(in.JobDescription)
	resumeLower := strings.ToLower(in.ResumeText)

	arch := classifyJob(jobLower)

	requiredMatches := countMatches(arch.required, resumeLower)
	preferredMatches := countMatches(arch.preferred, resumeLower)

	requiredFraction := 0.0
	if len(arch.required) > 0 {
		requiredFraction = float64(requiredMatches) / float64(len(arch.required))
	}
	preferredFraction := 0.0
	if len(arch.preferred) > 0 {
		preferredFraction = float64(preferredMatches) / float64(len(arch.preferred))
	}

	// Score is weighted heavily toward required skills.
	baseScore := requiredFraction*6.5 + preferredFraction*2.0

	expYears := int(in.Profile.TotalExperienceYears)
	if strings.Contains(jobLower, "5+") || strings.Contains(jobLower, "senior") {
		switch {
		case expYears >= 5:
			baseScore += 0.8
		case expYears >= 3:
			baseScore += 0.3
		default:
			baseScore -= 1.5
		}
	}

	if requiredFraction < 0.4 {
		baseScore *= 0.7
	}

	finalScore := math.Min(9.5, math.Max(1.0, baseScore))
	finalScore = math.Round(finalScore*10) / 10

	keyMatches := []string{}
	for _, skill := range in.Profile.Skills {
		if strings.Contains(jobLower, strings.ToLower(skill)) {
			keyMatches = append(keyMatches, fmt.Sprintf("Has %s experience", skill))
		}
	}

	gaps := []string{}
	for _, skill := range arch.required {
		if !strings.Contains(resumeLower, skill) {
			gaps = append(gaps, fmt.Sprintf("Limited %s experience mentioned", capitalize(skill)))
		}
	}

	justification := buildJustification(in, finalScore, expYears, keyMatches, gaps)

	strengths := []string{}
	if expYears >= 5 {
		strengths = append(strengths, fmt.Sprintf("Extensive experience (%d+ years)", expYears))
	}
	if len(in.Profile.Skills) > 10 {
		strengths = append(strengths, "Diverse technical skill set")
	}
	if float64(requiredMatches) > float64(len(arch.required))*0.6 {
		strengths = append(strengths, "Strong match with core requirements")
	}
	if len(strengths) == 0 {
		strengths = []string{"Has relevant industry experience"}
	}

	if len(keyMatches) > 5 {
		keyMatches = keyMatches[:5]
	}
	if len(keyMatches) == 0 {
		keyMatches = []string{"Some transferable skills"}
	}
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}

	return Result{
		Score:          finalScore,
		Justification:  justification,
		KeyMatches:     keyMatches,
		Gaps:           gaps,
		Strengths:      strengths,
		Recommendation: DeriveRecommendation(finalScore),
	}
}

func classifyJob(jobLower string) archetype {
	for _, arch := range archetypes {
		if arch.keywords == nil {
			return arch
		}
		for _, kw := range arch.keywords {
			if strings.Contains(jobLower, kw) {
				return arch
			}
		}
	}
	return archetypes[len(archetypes)-1]
}

func countMatches(skills []string, resumeLower string) int {
	count := 0
	for _, skill := range skills {
		if strings.Contains(resumeLower, skill) {
			count++
		}
	}
	return count
}

func buildJustification(in Input, score float64, expYears int, keyMatches, gaps []string) string {
	name := in.Profile.Name
	if name == "" {
		name = "The candidate"
	}
	topSkills := in.Profile.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}

	var b strings.Builder
	switch {
	case score >= 8:
		fmt.Fprintf(&b, "%s is a strong match for the %s position. ", name, in.JobTitle)
		fmt.Fprintf(&b, "With %d+ years of experience, they demonstrate proficiency in key required technologies. ", expYears)
		fmt.Fprintf(&b, "Their background in %s aligns well with the job requirements. ", strings.Join(topSkills, ", "))
		if len(keyMatches) > 0 {
			b.WriteString("The candidate's expertise in the core technologies mentioned in the job description makes them a highly qualified candidate. ")
		}
		b.WriteString("This candidate should be prioritized for interviews.")
	case score >= 6:
		fmt.Fprintf(&b, "%s shows good potential for the %s role. ", name, in.JobTitle)
		fmt.Fprintf(&b, "They have %d years of relevant experience and possess several of the required skills. ", expYears)
		if len(keyMatches) > 0 {
			fmt.Fprintf(&b, "Notably, they have experience with %d key technologies mentioned in the job posting. ", len(keyMatches))
		}
		if len(gaps) > 0 {
			fmt.Fprintf(&b, "However, some skills like %s could be developed further. ", strings.TrimPrefix(gaps[0], "Limited "))
		}
		b.WriteString("Overall, this is a solid candidate worth considering.")
	case score >= 4:
		fmt.Fprintf(&b, "%s has moderate alignment with the %s position. ", name, in.JobTitle)
		fmt.Fprintf(&b, "While they bring %d years of experience, there are notable gaps in the required skill set. ", expYears)
		if len(keyMatches) > 0 {
			fmt.Fprintf(&b, "They do have some relevant experience, particularly in %d areas. ", len(keyMatches))
		}
		b.WriteString("Additional training or mentoring might be needed. Consider as a backup candidate.")
	default:
		fmt.Fprintf(&b, "%s's profile shows limited alignment with the %s requirements. ", name, in.JobTitle)
		b.WriteString("Their background and skill set appear to be focused in a different technical domain. ")
		if len(gaps) > 0 {
			fmt.Fprintf(&b, "Key gaps include %d critical skills mentioned in the job description. ", len(gaps))
		}
		b.WriteString("This candidate may not be the best fit for this particular role.")
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

var _ Scorer = (*RuleScorer)(nil)
