package profile

// NotSpecified is the placeholder for scalar fields absent from a resume.
const NotSpecified = "Not specified"

// CandidateProfile is the structured record produced by extraction.
// Skills, Experience, Education, and Certifications are always non-nil
// after validation, even when empty.
type CandidateProfile struct {
	Name                 string       `json:"name"`
	Email                string       `json:"email"`
	Phone                string       `json:"phone"`
	Location             string       `json:"location"`
	Summary              string       `json:"summary"`
	Skills               []string     `json:"skills"`
	Experience           []Experience `json:"experience"`
	Education            []Education  `json:"education"`
	Certifications       []string     `json:"certifications"`
	Languages            []string     `json:"languages"`
	TotalExperienceYears float64      `json:"total_experience_years"`
}

// Experience is one role held by the candidate.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one degree or program completed by the candidate.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Field       string `json:"field"`
}

// Fallback returns the fixed profile used when extraction fails. It is a
// documented output of the extractor, not an error state.
func Fallback() CandidateProfile {
	return CandidateProfile{
		Name:                 "Unknown",
		Email:                NotSpecified,
		Phone:                NotSpecified,
		Location:             NotSpecified,
		Summary:              "Could not extract information",
		Skills:               []string{},
		Experience:           []Experience{},
		Education:            []Education{},
		Certifications:       []string{},
		Languages:            []string{},
		TotalExperienceYears: 0,
	}
}
